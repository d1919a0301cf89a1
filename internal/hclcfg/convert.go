package hclcfg

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// fromCtyValue converts an evaluated cty.Value into its native Go
// representation: strings, bools, int/float64 numbers, []any for lists,
// sets and tuples, and map[string]any for maps and objects.
func fromCtyValue(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil

	case ty == cty.Bool:
		return val.True(), nil

	case ty == cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == 0 {
				return int(i), nil
			}
		}
		f, _ := bf.Float64()
		return f, nil

	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		items := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			goElem, err := fromCtyValue(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, goElem)
		}
		return items, nil

	case ty.IsMapType() || ty.IsObjectType():
		entries := make(map[string]any, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			goElem, err := fromCtyValue(elem)
			if err != nil {
				return nil, err
			}
			entries[key.AsString()] = goElem
		}
		return entries, nil
	}

	return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}

package worker

import (
	"fmt"
	"strings"

	"github.com/vk/workgridgo/internal/component"
	"github.com/vk/workgridgo/internal/role"
)

// Entry is the lightweight per-component summary produced by Overview.
type Entry struct {
	// Name is the component's own name.
	Name string
	// Path is the slash-joined chain of enclosing worker names.
	Path string
	// Nested reports whether the component wraps another worker.
	Nested bool
	// Role is the nested worker's role kind; empty for plain components.
	Role role.Kind
	// Resolved reports whether the payload is available without
	// consulting a resolution backend.
	Resolved bool
}

// Overview is an ordered flattening of a worker: one entry per
// component across every nesting level, in traversal order.
type Overview []Entry

// Names returns the component names in traversal order.
func (o Overview) Names() []string {
	names := make([]string, len(o))
	for i, e := range o {
		names[i] = e.Name
	}
	return names
}

// String renders the overview one component per line, indented by
// nesting depth.
func (o Overview) String() string {
	var b strings.Builder
	for _, e := range o {
		depth := strings.Count(e.Path, "/")
		fmt.Fprintf(&b, "%s%s", strings.Repeat("  ", depth), e.Name)
		if e.Nested {
			fmt.Fprintf(&b, " (%s)", e.Role)
		}
		if !e.Resolved {
			b.WriteString(" [deferred]")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Overview walks the entire structure once and returns the flattened
// summary. Cost is linear in the total component count, nested workers
// included.
func (w *Worker) Overview() (Overview, error) {
	var entries Overview
	err := w.walk(func(path string, c *component.Component) (bool, error) {
		entry := Entry{
			Name:     c.Name,
			Path:     path,
			Resolved: c.Resolved(),
		}
		if nested, ok := nestedWorker(c); ok {
			entry.Nested = true
			entry.Role = nested.Role().Kind()
		}
		entries = append(entries, entry)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

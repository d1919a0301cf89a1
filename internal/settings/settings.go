package settings

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/vk/workgridgo/internal/ctxlog"
	"github.com/vk/workgridgo/internal/fsutil"
)

// envPrefix marks the environment variables this package owns.
const envPrefix = "WORKGRID_"

// Settings is a read-only view over merged configuration sources. Later
// files override earlier ones; environment variables override everything.
type Settings struct {
	k *koanf.Koanf
}

// Load reads every .yaml, .yml and .json file under the given paths in
// order, then applies WORKGRID_-prefixed environment variables on top.
// WORKGRID_ROLES_REVIEW=tree becomes the key "roles.review".
func Load(ctx context.Context, paths ...string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	k := koanf.New(".")

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".yaml", ".yml", ".json")
		if err != nil {
			return nil, fmt.Errorf("error accessing settings path %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered settings files.", "count", len(files))

	for _, f := range files {
		parser, err := parserFor(f)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(f), parser); err != nil {
			return nil, fmt.Errorf("failed to load settings file %s: %w", f, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			key = strings.ReplaceAll(strings.ToLower(key), "_", ".")
			return key, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment settings: %w", err)
	}

	logger.Debug("Settings loaded.", "keys", len(k.Keys()))
	return &Settings{k: k}, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	}
	return nil, fmt.Errorf("unsupported settings format: %s", path)
}

// Section returns the nested map stored under the given key, or an empty
// map when the section is absent.
func (s *Settings) Section(name string) map[string]any {
	return s.k.Cut(name).Raw()
}

// Decode binds the section under name onto target using mapstructure
// field tags. Weakly typed input is allowed, so "3" binds to an int field.
func (s *Settings) Decode(name string, target any) error {
	raw := s.k.Cut(name).Raw()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
		TagName:          "koanf",
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder for section %q: %w", name, err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode section %q: %w", name, err)
	}
	return nil
}

// Has reports whether any value exists under the given key.
func (s *Settings) Has(key string) bool {
	return s.k.Exists(key)
}

// String returns the string stored under key, or "" when absent.
func (s *Settings) String(key string) string {
	return s.k.String(key)
}

// Int returns the integer stored under key, or 0 when absent.
func (s *Settings) Int(key string) int {
	return s.k.Int(key)
}

// Bool returns the boolean stored under key, or false when absent.
func (s *Settings) Bool(key string) bool {
	return s.k.Bool(key)
}

// Strings returns the string slice stored under key.
func (s *Settings) Strings(key string) []string {
	return s.k.Strings(key)
}

// Keys returns every flattened key in sorted order.
func (s *Settings) Keys() []string {
	return s.k.Keys()
}

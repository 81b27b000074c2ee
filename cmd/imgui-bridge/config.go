package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/imgui-bridge/capability"
	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/value"
)

// fileConfig is the -config file. Context settings sit at the top level;
// style and io hold field overrides applied after the theme:
//
//	display_size: {x: 800, y: 600}
//	font_size: 16
//	theme: light
//	style:
//	  WindowRounding: 4
//	  WindowPadding: [6, 6]
//	io:
//	  FontGlobalScale: 1.5
type fileConfig struct {
	imgui.Config `yaml:",inline"`

	// Theme is dark, light or classic. Empty keeps the palette DarkTheme picks.
	Theme string `yaml:"theme"`

	Style map[string]any `yaml:"style"`
	IO    map[string]any `yaml:"io"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{Config: imgui.DefaultConfig()}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (fc fileConfig) apply(c *imgui.Context) error {
	var err error
	switch fc.Theme {
	case "":
	case "dark":
		err = c.StyleColorsDark()
	case "light":
		err = c.StyleColorsLight()
	case "classic":
		err = c.StyleColorsClassic()
	default:
		return fmt.Errorf("unknown theme %q", fc.Theme)
	}
	if err != nil {
		return err
	}

	style, err := c.GetStyle()
	if err != nil {
		return err
	}
	if err := setFields(style, fc.Style); err != nil {
		return err
	}
	io, err := c.GetIO()
	if err != nil {
		return err
	}
	return setFields(io, fc.IO)
}

func setFields(w *capability.Wrapper, fields map[string]any) error {
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		v, err := yamlValue(fields[name])
		if err != nil {
			return fmt.Errorf("%s.%s: %w", w.TypeName(), name, err)
		}
		if err := w.Set(name, v); err != nil {
			return err
		}
	}
	return nil
}

// yamlValue converts a decoded YAML scalar or sequence to a host value.
func yamlValue(x any) (value.Value, error) {
	switch x := x.(type) {
	case nil:
		return value.None(), nil
	case bool:
		return value.Bool(x), nil
	case int:
		return value.Int(int64(x)), nil
	case int64:
		return value.Int(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return value.Value{}, fmt.Errorf("integer %d out of range", x)
		}
		return value.Int(int64(x)), nil
	case float64:
		return value.Float(x), nil
	case string:
		return value.String(x), nil
	case []any:
		items := make([]value.Value, len(x))
		for i, item := range x {
			v, err := yamlValue(item)
			if err != nil {
				return value.Value{}, err
			}
			items[i] = v
		}
		return value.List(items...), nil
	}
	return value.Value{}, fmt.Errorf("unsupported YAML value %T, use a scalar or a list", x)
}

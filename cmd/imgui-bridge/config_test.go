package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/marshal"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/value"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bridge.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Config != imgui.DefaultConfig() || cfg.Theme != "" || cfg.Style != nil {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
display_size: {x: 800, y: 600}
font_size: 16
theme: light
style:
  Alpha: 0.5
  WindowRounding: 3
  WindowPadding: [4, 6]
io:
  FontGlobalScale: 2
  MouseDrawCursor: true
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DisplaySize != (native.Vec2{X: 800, Y: 600}) || cfg.FontSize != 16 {
		t.Errorf("context settings = %+v", cfg.Config)
	}
	if !cfg.DarkTheme {
		t.Errorf("unset keys should keep their defaults, DarkTheme = %v", cfg.DarkTheme)
	}

	ctx, err := imgui.NewContext(cfg.Config)
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Destroy()
	if err := cfg.apply(ctx); err != nil {
		t.Fatalf("apply: %v", err)
	}

	style, _ := ctx.GetStyle()
	io, _ := ctx.GetIO()
	checks := []struct {
		name string
		get  func() (value.Value, error)
		want value.Value
	}{
		{"Alpha", func() (value.Value, error) { return style.Get("Alpha") }, value.Float(0.5)},
		{"WindowRounding", func() (value.Value, error) { return style.Get("WindowRounding") }, value.Float(3)},
		{"WindowPadding", func() (value.Value, error) { return style.Get("WindowPadding") }, marshal.Vec2Value(native.Vec2{X: 4, Y: 6})},
		{"FontGlobalScale", func() (value.Value, error) { return io.Get("FontGlobalScale") }, value.Float(2)},
		{"MouseDrawCursor", func() (value.Value, error) { return io.Get("MouseDrawCursor") }, value.Bool(true)},
		{"DisplaySize", func() (value.Value, error) { return io.Get("DisplaySize") }, marshal.Vec2Value(native.Vec2{X: 800, Y: 600})},
	}
	for _, c := range checks {
		got, err := c.get()
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("%s = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown theme", "theme: neon", "unknown theme"},
		{"mapping value", "style:\n  WindowPadding: {x: 1, y: 2}", "unsupported YAML value"},
		{"unknown field", "style:\n  NoSuchField: 1", "NoSuchField"},
		{"read-only field", "io:\n  BackendPlatformName: x", "read-only"},
		{"wrong kind", "style:\n  Alpha: fast", "Alpha"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(writeConfig(t, tt.body))
			if err != nil {
				t.Fatal(err)
			}
			ctx, err := imgui.NewContext(cfg.Config)
			if err != nil {
				t.Fatal(err)
			}
			defer ctx.Destroy()
			err = cfg.apply(ctx)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want an error mentioning %q", err, tt.want)
			}
		})
	}

	if _, err := loadConfig(writeConfig(t, "font_size: [1")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pikin-cock/xdeco/deco"
	"github.com/pikin-cock/xdeco/x11"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pointer.Mode != PointerModeNearest {
		t.Fatalf("default pointer mode = %q, want %q", cfg.Pointer.Mode, PointerModeNearest)
	}
	if cfg.Highlight.Font != deco.DefaultFontName {
		t.Fatalf("default font = %q, want %q", cfg.Highlight.Font, deco.DefaultFontName)
	}
	if cfg.Highlight.Duration != 800*time.Millisecond {
		t.Fatalf("default duration = %v, want 800ms", cfg.Highlight.Duration)
	}
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
pointer:
  mode: relative
  horizontal: 0.25
  vertical: 0.75
highlight:
  align: right
  duration: 2s
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pointer.Mode != PointerModeRelative {
		t.Fatalf("mode = %q, want relative", cfg.Pointer.Mode)
	}
	if cfg.Pointer.Horizontal != 0.25 || cfg.Pointer.Vertical != 0.75 {
		t.Fatalf("fractions = (%v, %v), want (0.25, 0.75)", cfg.Pointer.Horizontal, cfg.Pointer.Vertical)
	}
	if cfg.Highlight.Duration != 2*time.Second {
		t.Fatalf("duration = %v, want 2s", cfg.Highlight.Duration)
	}
	// Unset keys keep their defaults.
	if cfg.Highlight.Border != "steelblue" {
		t.Fatalf("border = %q, want default steelblue", cfg.Highlight.Border)
	}

	align, err := cfg.AlignValue()
	if err != nil {
		t.Fatalf("unexpected align error: %v", err)
	}
	if align != deco.AlignRight {
		t.Fatalf("align = %v, want AlignRight", align)
	}
}

func TestLoadFileRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown pointer mode",
			content: `
pointer:
  mode: teleport
`,
		},
		{
			name: "horizontal out of range",
			content: `
pointer:
  mode: relative
  horizontal: 1.5
`,
		},
		{
			name: "unknown align",
			content: `
highlight:
  align: justified
`,
		},
		{
			name: "negative border width",
			content: `
highlight:
  border_width: -1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := LoadFile(path); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestPointerPositionSelector(t *testing.T) {
	cfg := Default()
	cfg.Pointer.Mode = PointerModeRelative
	cfg.Pointer.Horizontal = 0.5
	cfg.Pointer.Vertical = 0.5

	// Relative(0.5, 0.5) on a known rect lands in the center.
	pos := cfg.PointerPosition()
	x, y := pos.Destination(x11.Rect{X: 10, Y: 20, Width: 100, Height: 50}, 0, 0)
	if x != 60 || y != 45 {
		t.Fatalf("destination = (%d,%d), want (60,45)", x, y)
	}
}

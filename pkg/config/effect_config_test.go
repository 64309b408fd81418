package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultEffectConfigIsValid(t *testing.T) {
	cfg := DefaultEffectConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.ShardCount() != 48 {
		t.Errorf("expected 48 shards, got %d", cfg.ShardCount())
	}
}

func TestLoadEffectConfigEmptyPath(t *testing.T) {
	cfg, err := LoadEffectConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected default window 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
}

func TestLoadEffectConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *EffectConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
shards:
  rows: 3
  cols: 4
controls:
  primary: right
  secondary: left
`,
			validate: func(t *testing.T, cfg *EffectConfig) {
				if cfg.Shards.Rows != 3 || cfg.Shards.Cols != 4 {
					t.Errorf("expected 3x4 grid, got %dx%d", cfg.Shards.Rows, cfg.Shards.Cols)
				}
				// 未指定的字段保留默认值
				if cfg.Shards.Gravity != 900 {
					t.Errorf("expected default gravity 900, got %f", cfg.Shards.Gravity)
				}
				if cfg.Pane.Width != 300 {
					t.Errorf("expected default pane width 300, got %f", cfg.Pane.Width)
				}
				if cfg.Controls.Primary != "right" {
					t.Errorf("expected primary=right, got %q", cfg.Controls.Primary)
				}
			},
		},
		{
			name: "full config",
			yamlContent: `
window: {width: 1024, height: 768}
pane: {x: 10, y: 20, width: 100, height: 50}
shards: {rows: 2, cols: 2, speed: 100, spin: 90, gravity: 500, friction: 0.5}
floorY: 700
controls: {primary: left, secondary: middle}
demo: {interval: 30}
`,
			validate: func(t *testing.T, cfg *EffectConfig) {
				if cfg.Window.Width != 1024 {
					t.Errorf("expected width 1024, got %d", cfg.Window.Width)
				}
				if cfg.FloorY != 700 {
					t.Errorf("expected floorY 700, got %f", cfg.FloorY)
				}
				if cfg.Demo.Interval != 30 {
					t.Errorf("expected demo interval 30, got %d", cfg.Demo.Interval)
				}
				if cfg.ShardCount() != 4 {
					t.Errorf("expected 4 shards, got %d", cfg.ShardCount())
				}
			},
		},
		{
			name:        "same button for both actions",
			yamlContent: "controls: {primary: left, secondary: LEFT}\n",
			wantErr:     true,
			errContains: "must differ",
		},
		{
			name:        "unknown button",
			yamlContent: "controls: {primary: thumb}\n",
			wantErr:     true,
			errContains: "unknown primary button",
		},
		{
			name:        "grid too large",
			yamlContent: "shards: {rows: 65}\n",
			wantErr:     true,
			errContains: "shards.rows",
		},
		{
			name:        "friction out of range",
			yamlContent: "shards: {friction: 1.5}\n",
			wantErr:     true,
			errContains: "friction",
		},
		{
			name:        "non-positive pane",
			yamlContent: "pane: {width: 0}\n",
			wantErr:     true,
			errContains: "pane size",
		},
		{
			name:        "malformed yaml",
			yamlContent: "shards: [1, 2\n",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "shatter.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			cfg, err := LoadEffectConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadEffectConfigMissingFile(t *testing.T) {
	_, err := LoadEffectConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

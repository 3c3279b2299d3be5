package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseThunderConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *ThunderConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
screen:
  width: 1024
  height: 768
bolt:
  sway: 40
  envelopeFactor: 64
  jitterDivisor: 4
  fadeRate: 0.05
  thickness: 3
tints: ["#FFAA00", "#000000"]
sounds:
  volume: 0.3
  clips:
    - id: Boom
      path: data/sounds/boom.ogg
`,
			validate: func(t *testing.T, cfg *ThunderConfig) {
				if cfg.Screen.Width != 1024 || cfg.Screen.Height != 768 {
					t.Errorf("screen = %dx%d", cfg.Screen.Width, cfg.Screen.Height)
				}
				if cfg.Bolt.Sway != 40 || cfg.Bolt.EnvelopeFactor != 64 || cfg.Bolt.JitterDivisor != 4 {
					t.Errorf("bolt = %+v", cfg.Bolt)
				}
				// 未出现的字段保持默认值
				if cfg.Bolt.EnvelopeStart != 0.95 {
					t.Errorf("expected default envelopeStart 0.95, got %v", cfg.Bolt.EnvelopeStart)
				}
				if !cfg.Bolt.ClampDisplacement {
					t.Error("expected default clampDisplacement true")
				}
				if cfg.Bolt.Thickness != 3 {
					t.Errorf("thickness = %v", cfg.Bolt.Thickness)
				}
				tints := cfg.TintValues()
				if len(tints) != 2 || tints[0] != 0xFFAA00 || tints[1] != 1 {
					t.Errorf("tint values = %#v, 期望 [0xFFAA00, 1]", tints)
				}
				if ids := cfg.ClipIDs(); len(ids) != 1 || ids[0] != "Boom" {
					t.Errorf("clip ids = %v", ids)
				}
				if cfg.Prompt.Text != "Tap for thunder ..." {
					t.Errorf("prompt = %q", cfg.Prompt.Text)
				}
			},
		},
		{
			name:        "invalid sway",
			yamlContent: "bolt:\n  sway: 0\n",
			wantErr:     true,
			errContains: "sway",
		},
		{
			name:        "invalid tint",
			yamlContent: "tints: [\"orange\"]\n",
			wantErr:     true,
			errContains: "tint 0",
		},
		{
			name:        "thickness out of range",
			yamlContent: "bolt:\n  thickness: 50\n",
			wantErr:     true,
			errContains: "thickness",
		},
		{
			name:        "duplicate clip",
			yamlContent: "sounds:\n  clips:\n    - id: A\n    - id: A\n",
			wantErr:     true,
			errContains: "duplicate",
		},
		{
			name:        "malformed yaml",
			yamlContent: "bolt: [",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseThunderConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
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

func TestLoadThunderConfigFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thunder.yaml")
	if err := os.WriteFile(path, []byte("bolt:\n  fadeRate: 0.1\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadThunderConfig(path)
	if err != nil {
		t.Fatalf("LoadThunderConfig failed: %v", err)
	}
	if cfg.Bolt.FadeRate != 0.1 {
		t.Errorf("fadeRate = %v, 期望 0.1", cfg.Bolt.FadeRate)
	}

	if _, err := LoadThunderConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestShippedConfig 仓库自带的配置文件必须有效
func TestShippedConfig(t *testing.T) {
	cfg, err := LoadThunderConfig(filepath.Join("..", "..", DefaultConfigPath))
	if err != nil {
		t.Fatalf("shipped config invalid: %v", err)
	}
	if len(cfg.TintValues()) != len(cfg.Tints) {
		t.Error("every shipped tint should parse")
	}
}

func TestDefaultThunderConfigValid(t *testing.T) {
	if err := DefaultThunderConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

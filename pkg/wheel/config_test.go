package wheel

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative near radius", func(c *Config) { c.NearRadius = -1 }},
		{"far inside near", func(c *Config) { c.FarRadius = c.NearRadius }},
		{"negative budget", func(c *Config) { c.VertexBudget = -10 }},
		{"zero highlight scale", func(c *Config) { c.HighlightScale = 0 }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", tt.name)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.toml")
	content := `
near_radius = 10
far_radius = 50
highlight_scale = 1.25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.NearRadius != 10 || cfg.FarRadius != 50 {
		t.Errorf("radii not loaded: got %v/%v", cfg.NearRadius, cfg.FarRadius)
	}
	if cfg.HighlightScale != 1.25 {
		t.Errorf("highlight_scale not loaded: got %v", cfg.HighlightScale)
	}
	// Keys absent from the file keep their defaults.
	if cfg.VertexBudget != DefaultConfig().VertexBudget {
		t.Errorf("expected default vertex budget, got %d", cfg.VertexBudget)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.toml")
	if err := os.WriteFile(path, []byte("far_radius = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected a validation error for far_radius inside near_radius")
	}
}

package wheel

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config controls the wheel's geometry and highlight behavior. All
// distances are in the host scene's units.
type Config struct {
	NearRadius float64 `toml:"near_radius"` // inner rim of the wedges
	FarRadius  float64 `toml:"far_radius"`  // outer rim of the wedges

	// VertexBudget is the arc sample budget shared by all wedges of a
	// rebuild; each wedge gets budget/count samples (minimum one).
	VertexBudget int `toml:"vertex_budget"`

	IconRadius float64 `toml:"icon_radius"` // radial distance of icons and labels
	IconLift   float64 `toml:"icon_lift"`   // icon offset along the wheel's up axis
	LabelLift  float64 `toml:"label_lift"`  // label offset, above the icon

	// HighlightDistance offsets each wedge's pivot from the wheel
	// center so the highlight scale-up slides the wedge outward.
	HighlightDistance float64 `toml:"highlight_distance"`
	HighlightScale    float64 `toml:"highlight_scale"` // uniform scale applied on highlight
}

// DefaultConfig returns the stock wheel appearance
func DefaultConfig() Config {
	return Config{
		NearRadius:        40,
		FarRadius:         120,
		VertexBudget:      96,
		IconRadius:        85,
		IconLift:          1,
		LabelLift:         2,
		HighlightDistance: 4,
		HighlightScale:    1.1,
	}
}

// Validate checks the config for values the builder cannot work with
func (c Config) Validate() error {
	if c.NearRadius < 0 {
		return fmt.Errorf("near_radius must not be negative, got %v", c.NearRadius)
	}
	if c.FarRadius <= c.NearRadius {
		return fmt.Errorf("far_radius (%v) must be greater than near_radius (%v)", c.FarRadius, c.NearRadius)
	}
	if c.VertexBudget < 0 {
		return fmt.Errorf("vertex_budget must not be negative, got %d", c.VertexBudget)
	}
	if c.HighlightScale <= 0 {
		return fmt.Errorf("highlight_scale must be positive, got %v", c.HighlightScale)
	}
	return nil
}

// LoadConfig reads a TOML config file. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

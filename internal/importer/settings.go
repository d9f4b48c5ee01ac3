package importer

import "fmt"

// Settings controls which sections are imported and how markers look.
// It is read-only for the duration of an import.
type Settings struct {
	PlotScale                float64 `json:"plot_scale" toml:"plot_scale"`
	PlotNames                bool    `json:"plot_names" toml:"plot_names"`
	PlotAxes                 bool    `json:"plot_axes" toml:"plot_axes"`
	ThrustersAutoParent      bool    `json:"thrs_auto_parent" toml:"thrs_auto_parent"`
	IncludeMetrics           bool    `json:"include_metrics" toml:"include_metrics"`
	IncludeMassBalance       bool    `json:"include_mass_balance" toml:"include_mass_balance"`
	IncludeGroundReactions   bool    `json:"include_ground_reactions" toml:"include_ground_reactions"`
	IncludeExternalReactions bool    `json:"include_external_reactions" toml:"include_external_reactions"`
	IncludePropulsion        bool    `json:"include_propulsion" toml:"include_propulsion"`
	ValidateSchema           bool    `json:"validate_schema" toml:"validate_schema"`
}

// DefaultSettings imports every section with quarter-size markers and
// thrusters parented to their engines.
func DefaultSettings() Settings {
	return Settings{
		PlotScale:                0.25,
		ThrustersAutoParent:      true,
		IncludeMetrics:           true,
		IncludeMassBalance:       true,
		IncludeGroundReactions:   true,
		IncludeExternalReactions: true,
		IncludePropulsion:        true,
	}
}

// Validate rejects settings that cannot produce visible markers.
func (s Settings) Validate() error {
	if s.PlotScale <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidPlotScale, s.PlotScale)
	}
	return nil
}

package types

import "time"

// Warning is a non-fatal condition met during an import.
type Warning struct {
	Section string `json:"section" yaml:"section"`
	Message string `json:"message" yaml:"message"`
}

// ImportSummary reports what one import added to the scene.
type ImportSummary struct {
	Path      string        `json:"path" yaml:"path"`
	SessionID string        `json:"session_id" yaml:"session_id"`
	RootGroup string        `json:"root_group" yaml:"root_group"`
	Groups    int           `json:"groups" yaml:"groups"`
	Markers   int           `json:"markers" yaml:"markers"`
	Warnings  []Warning     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Elapsed   time.Duration `json:"-" yaml:"-"`
	ElapsedMS float64       `json:"elapsed_ms" yaml:"elapsed_ms"`
}

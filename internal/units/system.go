package units

import "fmt"

// System is the unit configuration of a destination scene, read once per
// import.
type System struct {
	// Length is the scene's linear unit system, e.g. METRIC or IMPERIAL.
	Length string `json:"length" yaml:"length" toml:"length"`
	// ScaleLength is how many meters one scene unit represents.
	ScaleLength float64 `json:"scale_length" yaml:"scale_length" toml:"scale_length"`
	// Rotation is the rotation convention, e.g. RADIANS or DEGREES.
	Rotation string `json:"rotation" yaml:"rotation" toml:"rotation"`
}

// DefaultSystem returns a metric system with a one meter scene unit.
func DefaultSystem() System {
	return System{Length: "METRIC", ScaleLength: 1.0, Rotation: "RADIANS"}
}

// Validate reports whether s can be used for conversion.
func (s System) Validate() error {
	if s.ScaleLength <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidScale, s.ScaleLength)
	}
	return nil
}

// Convert converts value from u into this system's scene units.
func (s System) Convert(value float64, u Unit) (float64, error) {
	return Convert(value, u, s.ScaleLength)
}

// ConvertVec converts an (x, y, z) triple from u into scene units.
func (s System) ConvertVec(xyz [3]float64, u Unit) ([3]float64, error) {
	var out [3]float64
	for i, v := range xyz {
		c, err := s.Convert(v, u)
		if err != nil {
			return [3]float64{}, err
		}
		out[i] = c
	}
	return out, nil
}

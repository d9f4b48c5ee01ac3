// Package units converts FDM length values into scene units.
package units

import "fmt"

// Unit is a declared length unit of an FDM location.
type Unit int

const (
	Inch Unit = iota
	Foot
	Meter
)

// metersPer maps each unit to its length in meters.
var metersPer = map[Unit]float64{
	Inch:  0.0254,
	Foot:  0.3048,
	Meter: 1.0,
}

// ParseUnit maps an FDM unit token (IN, FT, M) to a Unit.
// Tokens are case sensitive.
func ParseUnit(token string) (Unit, error) {
	switch token {
	case "IN":
		return Inch, nil
	case "FT":
		return Foot, nil
	case "M":
		return Meter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, token)
}

// String returns the FDM token for u.
func (u Unit) String() string {
	switch u {
	case Inch:
		return "IN"
	case Foot:
		return "FT"
	case Meter:
		return "M"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Factor returns the number of meters in one u.
func (u Unit) Factor() (float64, error) {
	f, ok := metersPer[u]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedUnit, u)
	}
	return f, nil
}

// Convert re-expresses value, given in u, in scene units. sceneScale is the
// number of meters one scene unit represents.
func Convert(value float64, u Unit, sceneScale float64) (float64, error) {
	f, err := u.Factor()
	if err != nil {
		return 0, err
	}
	if sceneScale <= 0 {
		return 0, fmt.Errorf("%w: %g", ErrInvalidScale, sceneScale)
	}
	return value * f / sceneScale, nil
}

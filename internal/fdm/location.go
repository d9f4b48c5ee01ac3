package fdm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/eytandecker/fdmscene/internal/units"
)

// NamedLocation is one <location> record. XYZ is still in Unit.
type NamedLocation struct {
	Name  string
	Unit  units.Unit
	XYZ   [3]float64
	Index int
	Line  int
}

// ExtractLocations returns the <location> records directly under el in
// document order. Nested sections are not searched.
func ExtractLocations(el *Element) ([]NamedLocation, error) {
	var out []NamedLocation
	for i, loc := range el.All("location") {
		nl, err := parseLocation(loc)
		if err != nil {
			return nil, err
		}
		nl.Index = i
		out = append(out, nl)
	}
	return out, nil
}

func parseLocation(loc *Element) (NamedLocation, error) {
	name, ok := loc.Attr("name")
	if !ok {
		return NamedLocation{}, elementErr(loc, fmt.Errorf("%w: missing name attribute", ErrMalformedLocation))
	}
	token, ok := loc.Attr("unit")
	if !ok {
		return NamedLocation{}, elementErr(loc, fmt.Errorf("%w: missing unit attribute", ErrMalformedLocation))
	}
	unit, err := units.ParseUnit(token)
	if err != nil {
		return NamedLocation{}, elementErr(loc, err)
	}

	nl := NamedLocation{Name: name, Unit: unit, Line: loc.Line}
	for i, axis := range [...]string{"x", "y", "z"} {
		c := loc.First(axis)
		if c == nil {
			return NamedLocation{}, elementErr(loc, fmt.Errorf("%w: missing <%s>", ErrMalformedLocation, axis))
		}
		v, ok := parseCoordinate(c.Text)
		if !ok {
			return NamedLocation{}, elementErr(loc, fmt.Errorf("%w: <%s> is not a number: %q", ErrMalformedLocation, axis, c.Text))
		}
		nl.XYZ[i] = v
	}
	return nl, nil
}

// parseCoordinate accepts finite decimal numbers only. Hex floats, which
// strconv also understands, are refused.
func parseCoordinate(s string) (float64, bool) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

package units

import "errors"

var (
	ErrUnsupportedUnit = errors.New("units: unsupported unit")
	ErrInvalidScale    = errors.New("units: scene scale must be positive")
)

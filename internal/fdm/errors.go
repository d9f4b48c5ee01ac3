package fdm

import (
	"errors"
	"fmt"
)

var (
	ErrParse             = errors.New("fdm: invalid xml")
	ErrMalformedLocation = errors.New("fdm: malformed location")
	ErrMalformedElement  = errors.New("fdm: malformed element")
	ErrSchemaInvalid     = errors.New("fdm: document does not match schema")
)

// ElementError ties an error to the element it was raised for.
type ElementError struct {
	Element string
	Line    int
	Err     error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("<%s> at line %d: %v", e.Element, e.Line, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

func elementErr(el *Element, err error) error {
	return &ElementError{Element: el.Name, Line: el.Line, Err: err}
}

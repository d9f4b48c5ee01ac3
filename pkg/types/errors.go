package types

import "fmt"

// ImportError wraps a fatal import failure with the file and the element
// that caused it.
type ImportError struct {
	Path    string
	Section string
	Element string
	Line    int
	Err     error
}

func (e *ImportError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("import %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("import %s: %s: %v", e.Path, e.Section, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

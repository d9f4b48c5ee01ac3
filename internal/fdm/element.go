package fdm

import "fmt"

// Element is one node of a parsed FDM document.
type Element struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Elements []*Element
	Line     int
	Column   int
}

// Attr returns the value of the unqualified attribute name.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// AttrOr returns the attribute value, or def if it is absent.
func (e *Element) AttrOr(name, def string) string {
	if v, ok := e.Attrs[name]; ok {
		return v
	}
	return def
}

// First returns the first direct child named name, or nil.
func (e *Element) First(name string) *Element {
	for _, c := range e.Elements {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// All returns the direct children named name in document order.
func (e *Element) All(name string) []*Element {
	var out []*Element
	for _, c := range e.Elements {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Require returns the first direct child named name, or an
// ErrMalformedElement error naming e.
func (e *Element) Require(name string) (*Element, error) {
	c := e.First(name)
	if c == nil {
		return nil, elementErr(e, fmt.Errorf("%w: missing <%s>", ErrMalformedElement, name))
	}
	return c, nil
}

func (e *Element) String() string {
	return fmt.Sprintf("<%s> at line %d", e.Name, e.Line)
}

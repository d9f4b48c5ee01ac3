// Package fdm reads flight dynamics model XML documents and extracts their
// reference points.
package fdm

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jacoelho/xsd/pkg/xmlstream"
)

// Document is a parsed FDM file. It is not modified after Parse returns.
type Document struct {
	Root *Element
}

// Section returns the top-level section named name, or nil if the document
// does not have one.
func (d *Document) Section(name string) *Element {
	if d == nil || d.Root == nil {
		return nil
	}
	return d.Root.First(name)
}

type frame struct {
	el   *Element
	text []byte
}

// Parse reads an XML document into an element tree. Namespaced attributes
// (xmlns, xsi:*) are dropped; element text is whitespace trimmed.
func Parse(r io.Reader) (*Document, error) {
	sr, err := xmlstream.NewStringReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	var (
		root  *Element
		stack []*frame
	)
	for {
		ev, err := sr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

		switch ev.Kind {
		case xmlstream.EventStartElement:
			el := &Element{
				Name:   ev.Name.Local,
				Attrs:  make(map[string]string, len(ev.Attrs)),
				Line:   ev.Line,
				Column: ev.Column,
			}
			for _, a := range ev.Attrs {
				if a.NamespaceURI() != "" {
					continue
				}
				el.Attrs[a.LocalName()] = a.Value()
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrParse)
				}
				root = el
			} else {
				parent := stack[len(stack)-1].el
				parent.Elements = append(parent.Elements, el)
			}
			stack = append(stack, &frame{el: el})

		case xmlstream.EventCharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.text = append(top.text, ev.Text...)
			}

		case xmlstream.EventEndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unbalanced end element", ErrParse)
			}
			top := stack[len(stack)-1]
			top.el.Text = strings.TrimSpace(string(top.text))
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unexpected end of document", ErrParse)
	}
	return &Document{Root: root}, nil
}

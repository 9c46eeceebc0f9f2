// Package xmltree decodes XML into a generic attributed tree.
//
// Element and attribute names keep their source prefix ("p:sldId",
// "r:embed") rather than the resolved namespace URI, since OOXML parts are
// addressed by their conventional prefixes. Children are always an ordered
// slice, so an element that occurs once is read the same way as one that
// repeats.
package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedXML is returned for input that is not well-formed XML.
var ErrMalformedXML = errors.New("malformed xml")

// repeatable records the tags that may occur any number of times under the
// same parent in the package parts read here. Decode needs no special case
// for them since Children is always a slice; callers read them with All
// rather than Child.
var repeatable = map[string]bool{
	"p:sldId":      true,
	"Relationship": true,
	"p:sp":         true,
	"p:pic":        true,
	"a:p":          true,
	"a:r":          true,
}

// Node is either an *Element or a Text.
type Node interface {
	node()
}

// Element is a tagged node with attributes and ordered children.
type Element struct {
	Name     string
	Attrs    map[string]string
	Children []Node
}

// Text is character data. Whitespace-only runs between elements are not
// kept.
type Text string

func (*Element) node() {}
func (Text) node()     {}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// All returns every direct child element with the given name, in order.
// Zero matches is an empty slice, not nil.
func (e *Element) All(name string) []*Element {
	out := []*Element{}
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.Name == name {
			out = append(out, el)
		}
	}
	return out
}

// Child returns the first direct child element with the given name.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.Name == name {
			return el
		}
	}
	return nil
}

// Text concatenates the direct character data of the element.
func (e *Element) Text() string {
	var sb strings.Builder
	for _, c := range e.Children {
		if t, ok := c.(Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}

// Decode parses text and returns its root element.
func Decode(text string) (*Element, error) {
	d := xml.NewDecoder(strings.NewReader(text))

	var root *Element
	var stack []*Element

	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Name:  qualify(t.Name),
				Attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				el.Attrs[qualify(a.Name)] = a.Value
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, malformed(d, "more than one root element")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			name := qualify(t.Name)
			if len(stack) == 0 {
				return nil, malformed(d, "unexpected </"+name+">")
			}
			top := stack[len(stack)-1]
			if top.Name != name {
				return nil, malformed(d, fmt.Sprintf("</%s> closes <%s>", name, top.Name))
			}
			dropBlankText(top)
			stack = stack[:len(stack)-1]

		case xml.CharData:
			s := string(t)
			if len(stack) == 0 {
				if strings.TrimSpace(s) != "" {
					return nil, malformed(d, "character data outside root element")
				}
				continue
			}
			parent := stack[len(stack)-1]
			if n := len(parent.Children); n > 0 {
				if prev, ok := parent.Children[n-1].(Text); ok {
					parent.Children[n-1] = prev + Text(s)
					continue
				}
			}
			parent.Children = append(parent.Children, Text(s))
		}
	}

	if len(stack) > 0 {
		return nil, malformed(d, "unclosed <"+stack[len(stack)-1].Name+">")
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedXML)
	}
	return root, nil
}

// Collect walks the tree depth-first in document order and gathers what
// pick returns for each element.
func Collect(root Node, pick func(*Element) []string) []string {
	var out []string
	var walk func(Node)
	walk = func(n Node) {
		el, ok := n.(*Element)
		if !ok {
			return
		}
		out = append(out, pick(el)...)
		for _, c := range el.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

// TextOf picks the character data of elements named name.
func TextOf(name string) func(*Element) []string {
	return func(el *Element) []string {
		if el.Name != name {
			return nil
		}
		return []string{el.Text()}
	}
}

// AttrOf picks the value of attribute name on any element carrying it.
func AttrOf(name string) func(*Element) []string {
	return func(el *Element) []string {
		if v, ok := el.Attrs[name]; ok {
			return []string{v}
		}
		return nil
	}
}

func qualify(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func dropBlankText(el *Element) {
	kept := el.Children[:0]
	for _, c := range el.Children {
		if t, ok := c.(Text); ok && strings.TrimSpace(string(t)) == "" {
			continue
		}
		kept = append(kept, c)
	}
	el.Children = kept
}

func malformed(d *xml.Decoder, msg string) error {
	line, _ := d.InputPos()
	return fmt.Errorf("%w: line %d: %s", ErrMalformedXML, line, msg)
}

// Package svg builds SVG documents as trees of typed elements.
//
// Geometry code constructs elements and attributes; serialization to markup
// happens once at the boundary via [Element.String] or [Element.WriteTo].
// Keeping the tree structured decouples layout math from output formatting
// and lets tests compare elements instead of brittle strings.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Attr is a single element attribute. Attributes keep insertion order so
// serialized output is stable and diffable.
type Attr struct {
	Key   string
	Value string
}

// Element is one node of an SVG document tree.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string     // character data, XML-escaped on render
	Raw      string     // verbatim content (CSS, CDATA); caller must keep it safe
	Children []*Element
}

// New creates an element with the given tag name.
func New(name string) *Element {
	return &Element{Name: name}
}

// Attr appends an attribute and returns the element for chaining.
func (e *Element) Attr(key, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
	return e
}

// Attrf appends a formatted attribute.
func (e *Element) Attrf(key, format string, args ...any) *Element {
	return e.Attr(key, fmt.Sprintf(format, args...))
}

// AttrNum appends a numeric attribute formatted without trailing zeros.
func (e *Element) AttrNum(key string, v float64) *Element {
	return e.Attr(key, Num(v))
}

// Child appends child elements and returns the element for chaining.
func (e *Element) Child(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// SetText sets the element's character data.
func (e *Element) SetText(text string) *Element {
	e.Text = text
	return e
}

// Lookup returns the value of the named attribute, if present.
func (e *Element) Lookup(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns the first descendant (depth-first, including e itself) with
// the given tag name, or nil.
func (e *Element) Find(name string) *Element {
	if e.Name == name {
		return e
	}
	for _, c := range e.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant (including e itself) with the given tag name.
func (e *Element) FindAll(name string) []*Element {
	var out []*Element
	if e.Name == name {
		out = append(out, e)
	}
	for _, c := range e.Children {
		out = append(out, c.FindAll(name)...)
	}
	return out
}

// WriteTo serializes the element tree as SVG markup.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	e.write(&buf, 0)
	return buf.WriteTo(w)
}

// String serializes the element tree as SVG markup.
func (e *Element) String() string {
	var buf bytes.Buffer
	e.write(&buf, 0)
	return buf.String()
}

func (e *Element) write(buf *bytes.Buffer, depth int) {
	indent := strings.Repeat("  ", depth)
	buf.WriteString(indent)
	buf.WriteByte('<')
	buf.WriteString(e.Name)
	for _, a := range e.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Key)
		buf.WriteString(`="`)
		buf.WriteString(escape(a.Value))
		buf.WriteByte('"')
	}

	if e.Text == "" && e.Raw == "" && len(e.Children) == 0 {
		buf.WriteString("/>\n")
		return
	}

	buf.WriteByte('>')
	if e.Raw != "" {
		buf.WriteString(e.Raw)
	}
	if e.Text != "" {
		buf.WriteString(escape(e.Text))
	}
	if len(e.Children) > 0 {
		buf.WriteByte('\n')
		for _, c := range e.Children {
			c.write(buf, depth+1)
		}
		buf.WriteString(indent)
	}
	buf.WriteString("</")
	buf.WriteString(e.Name)
	buf.WriteString(">\n")
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Num formats a float compactly for attribute values: no exponent notation,
// no trailing zeros ("300", "4.5", "0.25").
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

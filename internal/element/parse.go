package element

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Parse builds the element tree from XML input and returns the root node.
func Parse(r io.Reader) (Node, error) {
	decoder := xml.NewDecoder(r)

	var stack []*node
	var root *node
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("element <%s> found after the document element closed", t.Name.Local)
			}
			elem := &node{
				tag:   t.Name.Local,
				attrs: convertAttrs(t.Attr),
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, elem)
				elem.parent = parent
			} else {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && root != nil {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isInterDocumentSpace(string(t)) {
					return nil, fmt.Errorf("stray text outside the document element")
				}
				continue
			}
			stack[len(stack)-1].text += string(t)
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}

	return root, nil
}

// isInterDocumentSpace reports whether character data appearing outside
// the document element may be discarded: whitespace and the byte order
// mark.
func isInterDocumentSpace(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

type node struct {
	tag      string
	attrs    []attr
	children []*node
	parent   *node
	text     string
}

type attr struct {
	name  string
	value string
}

func (n *node) TagName() string {
	return n.tag
}

func (n *node) HasChild(tag string) bool {
	for _, child := range n.children {
		if child.tag == tag {
			return true
		}
	}
	return false
}

func (n *node) FirstChild(tag string) Node {
	for _, child := range n.children {
		if child.tag == tag {
			return child
		}
	}
	return nil
}

func (n *node) NextSibling(tag string) Node {
	if n.parent == nil {
		return nil
	}
	seen := false
	for _, child := range n.parent.children {
		if child == n {
			seen = true
			continue
		}
		if seen && child.tag == tag {
			return child
		}
	}
	return nil
}

func (n *node) Attribute(name, def string) (string, bool) {
	for _, a := range n.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return def, false
}

func (n *node) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) Text() string {
	return strings.TrimSpace(n.text)
}

func convertAttrs(xmlAttrs []xml.Attr) []attr {
	attrs := make([]attr, 0, len(xmlAttrs))
	for _, a := range xmlAttrs {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		attrs = append(attrs, attr{name: a.Name.Local, value: a.Value})
	}
	return attrs
}

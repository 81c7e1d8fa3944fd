// Package element provides the minimal read-only element tree view
// consumed by the typed entity loaders.
package element

// Node is the typed attribute-tree contract needed by the loaders.
type Node interface {
	// TagName returns the element tag.
	TagName() string
	// HasChild reports whether a child element with the tag exists.
	HasChild(tag string) bool
	// FirstChild returns the first child element with the tag, or nil.
	FirstChild(tag string) Node
	// NextSibling returns the next sibling element with the tag that
	// follows this node under the same parent, or nil.
	NextSibling(tag string) Node
	// Attribute returns the attribute value, or def when absent, and
	// whether the attribute was present.
	Attribute(name, def string) (string, bool)
	// Parent returns the parent element; nil for the root.
	Parent() Node
	// Text returns the text content directly under the element.
	Text() string
}

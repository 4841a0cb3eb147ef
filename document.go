package clipper

// Node is an element in a document tree.
//
// Implementations wrap a concrete DOM. Query methods take CSS selectors and
// return EINVALID when the selector cannot be parsed.
type Node interface {
	// TagName returns the lower-case element name (e.g., "article").
	TagName() string

	// ID returns the value of the id attribute, or "".
	ID() string

	// Classes returns the whitespace-separated entries of the class attribute.
	Classes() []string

	// Attr returns the named attribute and whether it is present.
	Attr(name string) (string, bool)

	// Text returns the text content of the subtree: all descendant text
	// nodes concatenated in document order.
	Text() string

	// InnerHTML serializes the children of the node.
	InnerHTML() (string, error)

	// Children returns the element children in document order.
	Children() []Node

	// Find returns every descendant matching selector, in document order.
	Find(selector string) ([]Node, error)

	// FindFirst returns the first descendant matching selector, or nil.
	FindFirst(selector string) (Node, error)

	// Remove detaches the node from its tree.
	Remove()

	// RewriteText replaces the data of every descendant text node with fn(data).
	RewriteText(fn func(string) string)
}

// Document is a parsed page.
type Document interface {
	// URL returns the address the document was loaded from.
	URL() string

	// Title returns the text of the first <title> element with
	// whitespace collapsed, or "".
	Title() string

	// Lang returns the lang attribute of the <html> element, or "".
	Lang() string

	// Root returns the root of the tree. All document-wide queries
	// start here.
	Root() Node

	// Body returns the <body> element, or nil if the document has none.
	Body() Node

	// Clone returns a deep copy that shares no nodes with the receiver.
	Clone() Document

	// HTML serializes the whole document.
	HTML() (string, error)
}

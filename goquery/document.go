package goquery

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/clipper"
	"golang.org/x/net/html"
)

// Ensure Document and Node implement the clipper tree interfaces at compile time.
var (
	_ clipper.Document = (*Document)(nil)
	_ clipper.Node     = (*Node)(nil)
)

// Document implements clipper.Document on top of a goquery document.
type Document struct {
	doc *goquery.Document
	url string
}

// NewDocument wraps a goquery document loaded from pageURL.
func NewDocument(doc *goquery.Document, pageURL string) *Document {
	return &Document{doc: doc, url: pageURL}
}

// ParseDocument parses raw HTML loaded from pageURL.
func ParseDocument(rawHTML, pageURL string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, clipper.Errorf(clipper.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewDocument(doc, pageURL), nil
}

// URL returns the address the document was loaded from.
func (d *Document) URL() string {
	return d.url
}

// Title returns the text of the first HTML <title> element with whitespace
// collapsed. SVG and MathML titles are ignored.
func (d *Document) Title() string {
	titles := d.doc.Find("title").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Nodes[0].Namespace == ""
	})
	return clipper.CollapseWhitespace(titles.First().Text())
}

// Lang returns the lang attribute of the <html> element.
func (d *Document) Lang() string {
	return d.doc.Find("html").First().AttrOr("lang", "")
}

// Root returns the document node.
func (d *Document) Root() clipper.Node {
	return &Node{sel: d.doc.Selection}
}

// Body returns the <body> element, or nil.
func (d *Document) Body() clipper.Node {
	sel := d.doc.Find("body").First()
	if sel.Length() == 0 {
		return nil
	}
	return &Node{sel: sel}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() clipper.Document {
	return &Document{doc: goquery.CloneDocument(d.doc), url: d.url}
}

// HTML serializes the whole document.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

// Node implements clipper.Node for a single element of a goquery document.
type Node struct {
	sel *goquery.Selection
}

// TagName returns the lower-case element name.
func (n *Node) TagName() string {
	return goquery.NodeName(n.sel)
}

// ID returns the id attribute.
func (n *Node) ID() string {
	return n.sel.AttrOr("id", "")
}

// Classes returns the entries of the class attribute.
func (n *Node) Classes() []string {
	return strings.Fields(n.sel.AttrOr("class", ""))
}

// Attr returns the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Text returns the text content of the subtree.
func (n *Node) Text() string {
	return n.sel.Text()
}

// InnerHTML serializes the children of the element.
func (n *Node) InnerHTML() (string, error) {
	return n.sel.Html()
}

// Children returns the element children.
func (n *Node) Children() []clipper.Node {
	return wrap(n.sel.Children())
}

// Find returns every descendant matching selector.
func (n *Node) Find(selector string) ([]clipper.Node, error) {
	m, err := compile(selector)
	if err != nil {
		return nil, err
	}
	return wrap(n.sel.FindMatcher(m)), nil
}

// FindFirst returns the first descendant matching selector, or nil.
func (n *Node) FindFirst(selector string) (clipper.Node, error) {
	m, err := compile(selector)
	if err != nil {
		return nil, err
	}
	sel := n.sel.FindMatcher(m).First()
	if sel.Length() == 0 {
		return nil, nil
	}
	return &Node{sel: sel}, nil
}

// Remove detaches the element from its tree.
func (n *Node) Remove() {
	n.sel.Remove()
}

// RewriteText replaces the data of every descendant text node.
func (n *Node) RewriteText(fn func(string) string) {
	for _, node := range n.sel.Nodes {
		rewriteText(node, fn)
	}
}

func rewriteText(n *html.Node, fn func(string) string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			c.Data = fn(c.Data)
			continue
		}
		rewriteText(c, fn)
	}
}

func wrap(sel *goquery.Selection) []clipper.Node {
	nodes := make([]clipper.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// selectors caches compiled selectors keyed by their source text.
var selectors sync.Map

// compile parses a CSS selector. Unlike goquery's Find, which silently
// matches nothing for a malformed selector, it reports the parse error.
func compile(selector string) (cascadia.Selector, error) {
	if m, ok := selectors.Load(selector); ok {
		return m.(cascadia.Selector), nil
	}
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, clipper.Errorf(clipper.EINVALID, "invalid selector %q: %v", selector, err)
	}
	selectors.Store(selector, m)
	return m, nil
}

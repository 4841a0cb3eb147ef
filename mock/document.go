package mock

import "github.com/fwojciec/clipper"

var (
	_ clipper.Document = (*Document)(nil)
	_ clipper.Node     = (*Node)(nil)
)

// Document is a mock implementation of clipper.Document.
type Document struct {
	URLFn   func() string
	TitleFn func() string
	LangFn  func() string
	RootFn  func() clipper.Node
	BodyFn  func() clipper.Node
	CloneFn func() clipper.Document
	HTMLFn  func() (string, error)
}

func (d *Document) URL() string {
	return d.URLFn()
}

func (d *Document) Title() string {
	return d.TitleFn()
}

func (d *Document) Lang() string {
	return d.LangFn()
}

func (d *Document) Root() clipper.Node {
	return d.RootFn()
}

func (d *Document) Body() clipper.Node {
	return d.BodyFn()
}

func (d *Document) Clone() clipper.Document {
	return d.CloneFn()
}

func (d *Document) HTML() (string, error) {
	return d.HTMLFn()
}

// Node is a mock implementation of clipper.Node.
type Node struct {
	TagNameFn     func() string
	IDFn          func() string
	ClassesFn     func() []string
	AttrFn        func(name string) (string, bool)
	TextFn        func() string
	InnerHTMLFn   func() (string, error)
	ChildrenFn    func() []clipper.Node
	FindFn        func(selector string) ([]clipper.Node, error)
	FindFirstFn   func(selector string) (clipper.Node, error)
	RemoveFn      func()
	RewriteTextFn func(fn func(string) string)
}

func (n *Node) TagName() string {
	return n.TagNameFn()
}

func (n *Node) ID() string {
	return n.IDFn()
}

func (n *Node) Classes() []string {
	return n.ClassesFn()
}

func (n *Node) Attr(name string) (string, bool) {
	return n.AttrFn(name)
}

func (n *Node) Text() string {
	return n.TextFn()
}

func (n *Node) InnerHTML() (string, error) {
	return n.InnerHTMLFn()
}

func (n *Node) Children() []clipper.Node {
	return n.ChildrenFn()
}

func (n *Node) Find(selector string) ([]clipper.Node, error) {
	return n.FindFn(selector)
}

func (n *Node) FindFirst(selector string) (clipper.Node, error) {
	return n.FindFirstFn(selector)
}

func (n *Node) Remove() {
	n.RemoveFn()
}

func (n *Node) RewriteText(fn func(string) string) {
	n.RewriteTextFn(fn)
}

// Package dom implements widget.Host over golang.org/x/net/html nodes. It is
// used to render widgets to static HTML and to exercise click wiring in
// tests without a browser.
package dom

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-webblock/pkg/widget"
)

// ClickScript is emitted as the onclick attribute of buttons with a handler.
// It mirrors the runtime script: the nearest block's frame loads the
// button's data-webblock-url.
const ClickScript = "var b=this.closest('[" + widget.AttrBlock + "]');" +
	"if(b){b.querySelector('iframe[" + widget.AttrFrame + "]').setAttribute('src',this.getAttribute('" + widget.AttrURL + "'));}"

var errForeignElement = errors.New("dom: element does not belong to this document")

// Document is a widget host rooted at a single mount element.
type Document struct {
	root     *html.Node
	handlers map[*html.Node]func()
}

var _ widget.Host = (*Document)(nil)

// New creates a document whose mount is <div class="webblock"
// data-webblock="id">.
func New(id string) *Document {
	root := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr: []html.Attribute{
			{Key: "class", Val: "webblock"},
			{Key: widget.AttrBlock, Val: id},
		},
	}
	return &Document{root: root, handlers: make(map[*html.Node]func())}
}

// Mount returns the root element to render into.
func (d *Document) Mount() widget.Element {
	return d.root
}

// Root exposes the underlying node tree.
func (d *Document) Root() *html.Node {
	return d.root
}

// CreateElement appends a new element to parent.
func (d *Document) CreateElement(parent widget.Element, kind widget.Kind, attrs widget.Attrs) (widget.Element, error) {
	p, err := d.node(parent)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		return nil, errors.New("dom: element kind is required")
	}

	n := &html.Node{
		Type:     html.ElementNode,
		Data:     string(kind),
		DataAtom: atom.Lookup([]byte(kind)),
	}
	if attrs.Style != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: attrs.Style})
	}
	keys := make([]string, 0, len(attrs.Extra))
	for key := range attrs.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		n.Attr = append(n.Attr, html.Attribute{Key: key, Val: attrs.Extra[key]})
	}
	if attrs.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: attrs.Text})
	}

	p.AppendChild(n)
	return n, nil
}

// SetClickHandler registers fn as the click handler of el.
func (d *Document) SetClickHandler(el widget.Element, fn func()) error {
	n, err := d.node(el)
	if err != nil {
		return err
	}
	if fn == nil {
		delete(d.handlers, n)
		return nil
	}
	d.handlers[n] = fn
	return nil
}

// SetFrameTarget points the frame element at url. An empty url clears it.
func (d *Document) SetFrameTarget(el widget.Element, url string) error {
	n, err := d.node(el)
	if err != nil {
		return err
	}
	if n.Data != string(widget.KindFrame) {
		return fmt.Errorf("dom: element %q is not a frame", n.Data)
	}
	SetAttr(n, "src", url)
	return nil
}

// Click runs the handler attached to el. It reports whether one was set.
func (d *Document) Click(el widget.Element) bool {
	n, ok := el.(*html.Node)
	if !ok {
		return false
	}
	fn, ok := d.handlers[n]
	if !ok {
		return false
	}
	fn()
	return true
}

// FindAll returns the elements of the given kind in document order.
func (d *Document) FindAll(kind widget.Kind) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == string(kind) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// HTML serializes the document. Buttons with a click handler carry the
// ClickScript inline.
func (d *Document) HTML() (string, error) {
	for n := range d.handlers {
		SetAttr(n, "onclick", ClickScript)
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return "", fmt.Errorf("dom: render: %w", err)
	}
	return buf.String(), nil
}

func (d *Document) node(el widget.Element) (*html.Node, error) {
	n, ok := el.(*html.Node)
	if !ok || n == nil {
		return nil, errForeignElement
	}
	for p := n; p != nil; p = p.Parent {
		if p == d.root {
			return n, nil
		}
	}
	return nil, errForeignElement
}

// Attr returns the value of attribute key on n, or "".
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries attribute key.
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces attribute key on n.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Text returns the concatenated text content of n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if n != nil {
		walk(n)
	}
	return b.String()
}

package page

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/dshills/vimfocus/internal/focus"
)

// Element is one node of a Page. Elements are created once per node, so
// pointer identity is stable across queries.
type Element struct {
	node *html.Node
	page *Page
	id   string
}

func newElement(p *Page, n *html.Node) *Element {
	e := &Element{node: n, page: p}
	if id, ok := e.Attr("id"); ok && id != "" {
		e.id = id
	} else {
		e.id = uuid.New().String()
	}
	return e
}

// ID returns the element's id attribute, or a generated identifier when
// it has none.
func (e *Element) ID() string {
	return e.id
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	return strings.ToLower(e.node.Data)
}

// Attr returns the value of an attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// Editable reports whether content editing is in effect, following
// contenteditable up through the ancestors.
func (e *Element) Editable() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		for _, a := range n.Attr {
			if !strings.EqualFold(a.Key, "contenteditable") {
				continue
			}
			switch strings.ToLower(strings.TrimSpace(a.Val)) {
			case "", "true", "plaintext-only":
				return true
			case "false":
				return false
			}
		}
	}
	return false
}

// Rect returns the bounding box from data-rect or the inline style.
func (e *Element) Rect() focus.Rect {
	if v, ok := e.Attr("data-rect"); ok {
		if r, ok := parseRect(v); ok {
			return r
		}
	}
	if v, ok := e.Attr("style"); ok {
		if r, ok := parseStyleRect(v); ok {
			return r
		}
	}
	return focus.Rect{}
}

// Text returns the element's text content with whitespace collapsed.
func (e *Element) Text() string {
	return strings.Join(strings.Fields(e.page.doc.FindNodes(e.node).Text()), " ")
}

// Label returns a short human-readable name for display.
func (e *Element) Label() string {
	for _, attr := range []string{"aria-label", "value", "placeholder"} {
		if v, ok := e.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	if t := e.Text(); t != "" {
		return t
	}
	if v, ok := e.Attr("id"); ok && v != "" {
		return "#" + v
	}
	return "<" + e.Tag() + ">"
}

// textLength is the caret range of the element's editable content.
func (e *Element) textLength() int {
	switch e.Tag() {
	case "input":
		v, _ := e.Attr("value")
		return len([]rune(v))
	default:
		return len([]rune(e.page.doc.FindNodes(e.node).Text()))
	}
}

// String returns tag#id.
func (e *Element) String() string {
	return e.Tag() + "#" + e.id
}

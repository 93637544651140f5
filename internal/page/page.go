package page

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/dshills/vimfocus/internal/focus"
)

// FocusableSelector matches every element that may take keyboard focus.
const FocusableSelector = "input, textarea, button, a, [tabindex], [contenteditable]"

// ErrNoMatch is returned when a selector matches nothing.
var ErrNoMatch = errors.New("selector matched no elements")

// Page is a parsed HTML document acting as the focus host.
type Page struct {
	doc      *goquery.Document
	elements map[*html.Node]*Element

	active *Element
	carets map[*Element]int

	// rects remembers the geometry of focusable elements as of the last
	// mutation, to report elements that moved.
	rects map[*Element]focus.Rect

	observers []*observer
	logger    *zap.Logger
}

type observer struct {
	fn func(Mutation)
}

// Load parses an HTML document.
func Load(r io.Reader, logger *zap.Logger) (*Page, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	p := &Page{
		doc:      doc,
		elements: make(map[*html.Node]*Element),
		carets:   make(map[*Element]int),
		logger:   logger.Named("page"),
	}
	p.rects = p.snapshot()
	p.logger.Debug("page loaded", zap.Int("focusable", len(p.rects)))
	return p, nil
}

// LoadFile parses the HTML document at path.
func LoadFile(path string, logger *zap.Logger) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer f.Close()
	return Load(f, logger)
}

// Parse parses an HTML document from a string.
func Parse(src string, logger *zap.Logger) (*Page, error) {
	return Load(strings.NewReader(src), logger)
}

// Title returns the document title.
func (p *Page) Title() string {
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

// element returns the cached wrapper for n.
func (p *Page) element(n *html.Node) *Element {
	if e, ok := p.elements[n]; ok {
		return e
	}
	e := newElement(p, n)
	p.elements[n] = e
	return e
}

// Find returns the elements matching selector in document order.
func (p *Page) Find(selector string) []*Element {
	sel := p.doc.Find(selector)
	out := make([]*Element, 0, sel.Length())
	for _, n := range sel.Nodes {
		out = append(out, p.element(n))
	}
	return out
}

// ByID returns the element with the given id or generated identifier.
func (p *Page) ByID(id string) (*Element, bool) {
	for _, e := range p.Find("[id]") {
		if e.id == id {
			return e, true
		}
	}
	for _, e := range p.elements {
		if e.id == id && p.attached(e) {
			return e, true
		}
	}
	return nil, false
}

// Focusables returns the focusable elements in document order.
func (p *Page) Focusables() []focus.Element {
	var out []focus.Element
	p.doc.Find(FocusableSelector).Each(func(_ int, s *goquery.Selection) {
		e := p.element(s.Nodes[0])
		if focus.IsFocusable(e) {
			out = append(out, e)
		}
	})
	return out
}

// Bounds returns the smallest rectangle containing every focusable
// element.
func (p *Page) Bounds() focus.Rect {
	var b focus.Rect
	for i, el := range p.Focusables() {
		if i == 0 {
			b = el.Rect()
			continue
		}
		b = union(b, el.Rect())
	}
	return b
}

// ActiveElement returns the focused element, or nil.
func (p *Page) ActiveElement() focus.Element {
	if p.active == nil {
		return nil
	}
	return p.active
}

// Active returns the focused element as a page element.
func (p *Page) Active() (*Element, bool) {
	return p.active, p.active != nil
}

// Focus moves focus to el. Elements of other pages and elements that
// cannot receive focus are ignored.
func (p *Page) Focus(el focus.Element) {
	e, ok := el.(*Element)
	if !ok || e == nil || e.page != p || !p.attached(e) {
		return
	}
	if !focus.CanReceiveFocus(e) {
		p.logger.Debug("focus refused", zap.Stringer("element", e))
		return
	}
	p.active = e
	p.logger.Debug("focus", zap.Stringer("element", e))
}

// SetCaret places the caret of el.
func (p *Page) SetCaret(el focus.Element, pos focus.CaretPosition) {
	e, ok := el.(*Element)
	if !ok || e == nil || e.page != p {
		return
	}
	if e.Tag() != "input" && e.Tag() != "textarea" && !e.Editable() {
		return
	}

	n := e.textLength()
	switch pos {
	case focus.CaretStart:
		p.carets[e] = 0
	case focus.CaretEnd:
		p.carets[e] = n
	case focus.CaretNext:
		p.carets[e] = min(p.carets[e]+1, n)
	}
}

// Caret returns the caret offset of el.
func (p *Page) Caret(el *Element) int {
	return p.carets[el]
}

// attached reports whether e's node is still part of the document.
func (p *Page) attached(e *Element) bool {
	root := p.doc.Nodes[0]
	for n := e.node; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

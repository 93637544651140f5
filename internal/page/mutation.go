package page

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/vimfocus/internal/focus"
)

// Mutation lists the focusable elements affected by one DOM edit.
type Mutation struct {
	// Added are elements that became focusable or were inserted.
	Added []focus.Element

	// Removed are elements that were detached or stopped being focusable.
	Removed []focus.Element

	// Moved are elements whose bounding box changed.
	Moved []focus.Element
}

// Empty reports whether the mutation affects no focusable element.
func (m Mutation) Empty() bool {
	return len(m.Added) == 0 && len(m.Removed) == 0 && len(m.Moved) == 0
}

// Observe registers fn to receive every non-empty mutation.
// Returns a function that removes the observer.
func (p *Page) Observe(fn func(Mutation)) func() {
	o := &observer{fn: fn}
	p.observers = append(p.observers, o)
	return func() {
		for i, other := range p.observers {
			if other == o {
				p.observers = append(p.observers[:i], p.observers[i+1:]...)
				return
			}
		}
	}
}

// Append parses fragment and appends it to every element matching
// parentSelector.
func (p *Page) Append(parentSelector, fragment string) (Mutation, error) {
	return p.mutate(parentSelector, func() {
		p.doc.Find(parentSelector).AppendHtml(fragment)
	})
}

// Remove detaches every element matching selector.
func (p *Page) Remove(selector string) (Mutation, error) {
	return p.mutate(selector, func() {
		p.doc.Find(selector).Remove()
	})
}

// SetAttr sets an attribute on every element matching selector.
func (p *Page) SetAttr(selector, name, value string) (Mutation, error) {
	return p.mutate(selector, func() {
		p.doc.Find(selector).SetAttr(name, value)
	})
}

// RemoveAttr removes an attribute from every element matching selector.
func (p *Page) RemoveAttr(selector, name string) (Mutation, error) {
	return p.mutate(selector, func() {
		p.doc.Find(selector).RemoveAttr(name)
	})
}

// mutate applies edit and diffs the focusable set against the state
// before it.
func (p *Page) mutate(selector string, edit func()) (Mutation, error) {
	if p.doc.Find(selector).Length() == 0 {
		return Mutation{}, fmt.Errorf("%w: %q", ErrNoMatch, selector)
	}

	before := p.rects
	edit()
	p.prune()
	after := p.snapshot()
	p.rects = after

	var m Mutation
	for _, el := range p.Focusables() {
		e := el.(*Element)
		old, existed := before[e]
		switch {
		case !existed:
			m.Added = append(m.Added, e)
		case old != after[e]:
			m.Moved = append(m.Moved, e)
		}
	}
	for e := range before {
		if _, ok := after[e]; !ok {
			m.Removed = append(m.Removed, e)
			delete(p.carets, e)
			if p.active == e {
				p.active = nil
			}
		}
	}
	// Focus stays only on elements that can still take it.
	if p.active != nil && !focus.CanReceiveFocus(p.active) {
		p.active = nil
	}

	if m.Empty() {
		return m, nil
	}
	p.logger.Debug("mutation",
		zap.String("selector", selector),
		zap.Int("added", len(m.Added)),
		zap.Int("removed", len(m.Removed)),
		zap.Int("moved", len(m.Moved)),
	)
	for _, o := range append([]*observer(nil), p.observers...) {
		o.fn(m)
	}
	return m, nil
}

// prune drops the wrappers of detached nodes.
func (p *Page) prune() {
	for n, e := range p.elements {
		if !p.attached(e) {
			delete(p.elements, n)
			delete(p.carets, e)
		}
	}
}

// snapshot records the rectangle of every focusable element.
func (p *Page) snapshot() map[*Element]focus.Rect {
	rects := make(map[*Element]focus.Rect)
	for _, el := range p.Focusables() {
		e := el.(*Element)
		rects[e] = e.Rect()
	}
	return rects
}

package focus

import (
	"go.uber.org/zap"
)

// DefaultMaxChainSteps bounds the left/right chain walks of vertical
// searches. It is a safety valve against malformed link cycles.
const DefaultMaxChainSteps = 100

// Navigator resolves directional motions over a Graph.
type Navigator struct {
	graph    *Graph
	maxSteps int
	eligible func(Element) bool
	logger   *zap.Logger
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithMaxChainSteps sets the vertical search step limit.
func WithMaxChainSteps(n int) Option {
	return func(nav *Navigator) {
		if n > 0 {
			nav.maxSteps = n
		}
	}
}

// WithLogger sets the logger used for guard diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(nav *Navigator) {
		if logger != nil {
			nav.logger = logger
		}
	}
}

// WithEligibility replaces CanReceiveFocus as the horizontal skip predicate.
func WithEligibility(fn func(Element) bool) Option {
	return func(nav *Navigator) {
		if fn != nil {
			nav.eligible = fn
		}
	}
}

// NewNavigator creates a navigator over g.
func NewNavigator(g *Graph, opts ...Option) *Navigator {
	nav := &Navigator{
		graph:    g,
		maxSteps: DefaultMaxChainSteps,
		eligible: CanReceiveFocus,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(nav)
	}
	nav.logger = nav.logger.Named("navigator")
	return nav
}

// Graph returns the graph being navigated.
func (n *Navigator) Graph() *Graph {
	return n.graph
}

// MaxChainSteps returns the vertical search step limit.
func (n *Navigator) MaxChainSteps() int {
	return n.maxSteps
}

// Resolve returns the element that receives focus when moving one step
// from el in direction d. Untracked elements resolve to nothing.
func (n *Navigator) Resolve(el Element, d Direction) (Element, bool) {
	h, ok := n.graph.lookup(el)
	if !ok {
		return nil, false
	}

	var next handle
	if d.Horizontal() {
		next = n.horizontal(h, d)
	} else {
		next = n.vertical(h, d)
	}
	if next == noNode {
		return nil, false
	}
	return n.graph.element(next), true
}

// Step applies Resolve up to count times (at least once), stopping early
// at the last element reached when a step finds nothing.
func (n *Navigator) Step(el Element, d Direction, count int) (Element, bool) {
	if count < 1 {
		count = 1
	}

	var target Element
	found := false
	cur := el
	for i := 0; i < count; i++ {
		next, ok := n.Resolve(cur, d)
		if !ok {
			break
		}
		target, found = next, true
		cur = next
	}
	return target, found
}

// Move resolves a counted motion from el and focuses the result on host.
// Nothing is focused when the motion finds no target.
func (n *Navigator) Move(host Host, el Element, d Direction, count int) (Element, bool) {
	target, ok := n.Step(el, d, count)
	if ok && host != nil {
		host.Focus(target)
	}
	return target, ok
}

// FocusAnchor focuses the graph's anchor element on host.
func (n *Navigator) FocusAnchor(host Host) (Element, bool) {
	anchor, ok := n.graph.Anchor()
	if ok && host != nil {
		host.Focus(anchor)
	}
	return anchor, ok
}

// horizontal follows the chain in direction d, skipping elements that
// cannot receive focus. A chain can hold every node at most once, so a
// walk longer than the graph means the links are cyclic.
func (n *Navigator) horizontal(h handle, d Direction) handle {
	limit := n.graph.Len()
	cur := h
	for steps := 0; ; steps++ {
		if steps > limit {
			n.logger.Warn("neighbor chain cycle detected",
				zap.Stringer("direction", d),
				zap.Int("steps", steps),
			)
			return noNode
		}
		next := n.graph.link(cur, d)
		if next == noNode || next == h {
			return noNode
		}
		if n.eligible(n.graph.element(next)) {
			return next
		}
		cur = next
	}
}

// vertical returns the direct neighbor in direction d, or else searches the
// left and right chains for the first node that has a neighbor in d. When
// both chains find one, the neighbor nearer to the origin wins; on a tie
// the right chain's candidate is taken.
func (n *Navigator) vertical(h handle, d Direction) handle {
	if next := n.graph.link(h, d); next != noNode {
		return next
	}

	left, ok := n.firstWith(h, Left, d)
	if !ok {
		return noNode
	}
	right, ok := n.firstWith(h, Right, d)
	if !ok {
		return noNode
	}

	switch {
	case left != noNode && right != noNode:
		lc, rc := n.graph.link(left, d), n.graph.link(right, d)
		origin := n.graph.slots[h].center
		if origin.Distance(n.graph.slots[rc].center) <= origin.Distance(n.graph.slots[lc].center) {
			return rc
		}
		return lc
	case left != noNode:
		return n.graph.link(left, d)
	case right != noNode:
		return n.graph.link(right, d)
	}
	return noNode
}

// firstWith walks from h along direction walk and returns the first node
// having a link in direction want (noNode when the chain ends). The bool is
// false when the walk exceeded the step limit and the search was aborted.
func (n *Navigator) firstWith(h handle, walk, want Direction) (handle, bool) {
	cur := n.graph.link(h, walk)
	for steps := 1; cur != noNode; steps++ {
		if steps > n.maxSteps {
			n.logger.Warn("vertical search aborted",
				zap.Stringer("direction", want),
				zap.Stringer("chain", walk),
				zap.Int("limit", n.maxSteps),
				zap.Error(ErrChainTooLong),
			)
			return noNode, false
		}
		if n.graph.link(cur, want) != noNode {
			return cur, true
		}
		cur = n.graph.link(cur, walk)
	}
	return noNode, true
}

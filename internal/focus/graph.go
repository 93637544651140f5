package focus

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// handle indexes a slot in the graph's node table.
type handle int32

// noNode marks an empty neighbor link.
const noNode handle = -1

// node is one tracked element.
type node struct {
	el     Element
	rect   Rect
	center Point

	// links holds the neighbor handle per Direction.
	links [4]handle

	// seq is the registration sequence number, used to keep anchor
	// recomputation in registration order.
	seq  uint64
	live bool
}

// Graph maintains the spatial focus graph of a page.
type Graph struct {
	slots []node
	free  []handle
	index map[Element]handle

	anchor handle
	seq    uint64

	logger *zap.Logger
}

// NewGraph creates an empty graph.
func NewGraph(logger *zap.Logger) *Graph {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Graph{
		index:  make(map[Element]handle),
		anchor: noNode,
		logger: logger.Named("graph"),
	}
}

// Len returns the number of tracked elements.
func (g *Graph) Len() int {
	return len(g.index)
}

// Contains reports whether el is tracked.
func (g *Graph) Contains(el Element) bool {
	if el == nil {
		return false
	}
	_, ok := g.index[el]
	return ok
}

// Register adds focusable elements to the graph and links each one to its
// nearest neighbors. Elements that are not focusable or already tracked are
// skipped. Returns the number of elements added.
func (g *Graph) Register(els ...Element) int {
	added := 0
	for _, el := range els {
		if !IsFocusable(el) {
			continue
		}
		if _, ok := g.index[el]; ok {
			continue
		}

		h := g.alloc(el)
		g.updateAnchor(h)
		g.connect(h)
		added++
	}
	if added > 0 {
		g.logger.Debug("registered elements", zap.Int("added", added), zap.Int("total", g.Len()))
	}
	return added
}

// Unregister removes el from the graph. Its neighbors on each axis are
// spliced together like a doubly linked list; links further out are not
// recomputed. Returns false if el was not tracked.
func (g *Graph) Unregister(el Element) bool {
	if el == nil {
		return false
	}
	h, ok := g.index[el]
	if !ok {
		return false
	}

	n := &g.slots[h]
	left, right := n.links[Left], n.links[Right]
	up, down := n.links[Up], n.links[Down]

	if left != noNode {
		g.slots[left].links[Right] = right
	}
	if right != noNode {
		g.slots[right].links[Left] = left
	}
	if up != noNode {
		g.slots[up].links[Down] = down
	}
	if down != noNode {
		g.slots[down].links[Up] = up
	}

	g.release(h)
	delete(g.index, el)

	if g.anchor == h {
		g.recomputeAnchor()
	}

	g.logger.Debug("unregistered element", zap.Int("total", g.Len()))
	return true
}

// Refresh re-reads el's rectangle by removing and re-registering it.
// Returns false if el was not tracked.
func (g *Graph) Refresh(el Element) bool {
	if !g.Unregister(el) {
		return false
	}
	g.Register(el)
	return true
}

// Reset drops every tracked element.
func (g *Graph) Reset() {
	g.slots = g.slots[:0]
	g.free = g.free[:0]
	g.index = make(map[Element]handle)
	g.anchor = noNode
}

// Neighbor returns el's linked neighbor in direction d.
func (g *Graph) Neighbor(el Element, d Direction) (Element, bool) {
	h, ok := g.lookup(el)
	if !ok {
		return nil, false
	}
	next := g.link(h, d)
	if next == noNode {
		return nil, false
	}
	return g.slots[next].el, true
}

// Anchor returns the top-left node's element, the default focus target.
func (g *Graph) Anchor() (Element, bool) {
	if g.anchor == noNode {
		return nil, false
	}
	return g.slots[g.anchor].el, true
}

// Rect returns the rectangle el was registered with.
func (g *Graph) Rect(el Element) (Rect, bool) {
	h, ok := g.lookup(el)
	if !ok {
		return Rect{}, false
	}
	return g.slots[h].rect, true
}

// Elements returns the tracked elements in registration order.
func (g *Graph) Elements() []Element {
	hs := g.liveHandles()
	out := make([]Element, len(hs))
	for i, h := range hs {
		out[i] = g.slots[h].el
	}
	return out
}

// NodeInfo is a read-only view of one node.
type NodeInfo struct {
	Element   Element
	Rect      Rect
	Center    Point
	Neighbors [4]Element
	Anchor    bool
}

// Snapshot returns a view of every node in registration order.
func (g *Graph) Snapshot() []NodeInfo {
	hs := g.liveHandles()
	out := make([]NodeInfo, 0, len(hs))
	for _, h := range hs {
		n := &g.slots[h]
		info := NodeInfo{
			Element: n.el,
			Rect:    n.rect,
			Center:  n.center,
			Anchor:  h == g.anchor,
		}
		for _, d := range Directions {
			if l := n.links[d]; l != noNode {
				info.Neighbors[d] = g.slots[l].el
			}
		}
		out = append(out, info)
	}
	return out
}

// CheckSymmetry verifies that every link has a matching reverse link.
func (g *Graph) CheckSymmetry() error {
	for i := range g.slots {
		n := &g.slots[i]
		if !n.live {
			continue
		}
		for _, d := range Directions {
			l := n.links[d]
			if l == noNode {
				continue
			}
			if !g.slots[l].live {
				return fmt.Errorf("%w: %s link of node %d points at freed slot %d", ErrAsymmetricLink, d, i, l)
			}
			if back := g.slots[l].links[d.Opposite()]; back != handle(i) {
				return fmt.Errorf("%w: node %d %s -> %d, but %d %s -> %d",
					ErrAsymmetricLink, i, d, l, l, d.Opposite(), back)
			}
		}
	}
	return nil
}

func (g *Graph) lookup(el Element) (handle, bool) {
	if el == nil {
		return noNode, false
	}
	h, ok := g.index[el]
	return h, ok
}

func (g *Graph) link(h handle, d Direction) handle {
	return g.slots[h].links[d]
}

func (g *Graph) element(h handle) Element {
	return g.slots[h].el
}

func (g *Graph) alloc(el Element) handle {
	rect := el.Rect()
	g.seq++
	n := node{
		el:     el,
		rect:   rect,
		center: rect.Center(),
		links:  [4]handle{noNode, noNode, noNode, noNode},
		seq:    g.seq,
		live:   true,
	}

	var h handle
	if len(g.free) > 0 {
		h = g.free[len(g.free)-1]
		g.free = g.free[:len(g.free)-1]
		g.slots[h] = n
	} else {
		h = handle(len(g.slots))
		g.slots = append(g.slots, n)
	}
	g.index[el] = h
	return h
}

func (g *Graph) release(h handle) {
	g.slots[h] = node{links: [4]handle{noNode, noNode, noNode, noNode}}
	g.free = append(g.free, h)
}

func (g *Graph) liveHandles() []handle {
	hs := make([]handle, 0, len(g.index))
	for _, h := range g.index {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool {
		return g.slots[hs[i]].seq < g.slots[hs[j]].seq
	})
	return hs
}

// updateAnchor makes h the anchor when its center is at or above and at or
// left of the current anchor's center.
func (g *Graph) updateAnchor(h handle) {
	if g.anchor == noNode {
		g.anchor = h
		return
	}
	a := g.slots[g.anchor].center
	c := g.slots[h].center
	if c.X <= a.X && c.Y <= a.Y {
		g.anchor = h
	}
}

func (g *Graph) recomputeAnchor() {
	g.anchor = noNode
	for _, h := range g.liveHandles() {
		g.updateAnchor(h)
	}
}

// connect links a freshly allocated node against every other node.
func (g *Graph) connect(h handle) {
	for i := range g.slots {
		other := handle(i)
		if other == h || !g.slots[i].live {
			continue
		}

		nr, er := g.slots[h].rect, g.slots[other].rect
		switch {
		case sameRow(er, nr):
			g.tryLink(other, h, true)
		case sameCol(er, nr):
			g.tryLink(other, h, false)
		}
	}
}

// tryLink links the new node h to the existing node other on one axis if h
// is strictly on one side of other and each is at least as close to the
// other as their current neighbors on the facing sides. Ties keep the
// current neighbor.
func (g *Graph) tryLink(other, h handle, horizontal bool) {
	side, ok := sideOf(g.slots[h].rect, g.slots[other].rect, horizontal)
	if !ok {
		return
	}
	if !g.closer(other, g.slots[other].links[side], h) {
		return
	}
	if !g.closer(h, g.slots[h].links[side.Opposite()], other) {
		return
	}
	g.connectPair(other, side, h)
}

// closer reports whether candidate should replace current as from's neighbor.
func (g *Graph) closer(from, current, candidate handle) bool {
	if current == noNode || current == candidate {
		return true
	}
	origin := g.slots[from].center
	return origin.Distance(g.slots[candidate].center) < origin.Distance(g.slots[current].center)
}

// connectPair sets a.links[d] = b and b.links[opposite] = a, detaching
// whatever each slot held before so every link stays mutual.
func (g *Graph) connectPair(a handle, d Direction, b handle) {
	opp := d.Opposite()
	if p := g.slots[a].links[d]; p != noNode && p != b {
		g.slots[p].links[opp] = noNode
	}
	if q := g.slots[b].links[opp]; q != noNode && q != a {
		g.slots[q].links[d] = noNode
	}
	g.slots[a].links[d] = b
	g.slots[b].links[opp] = a
}

// sideOf returns the side of existing on which r lies, comparing leading
// edges first and centers when the edges coincide.
func sideOf(r, existing Rect, horizontal bool) (Direction, bool) {
	before, after := Up, Down
	edge, ref := r.Y, existing.Y
	center, refCenter := r.Center().Y, existing.Center().Y
	if horizontal {
		before, after = Left, Right
		edge, ref = r.X, existing.X
		center, refCenter = r.Center().X, existing.Center().X
	}

	switch {
	case edge < ref:
		return before, true
	case edge > ref:
		return after, true
	case center < refCenter:
		return before, true
	case center > refCenter:
		return after, true
	}
	return 0, false
}

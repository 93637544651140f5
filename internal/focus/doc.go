// Package focus builds the spatial focus graph and resolves directional
// motions over it.
//
// The page supplies Elements with screen rectangles. The Graph links every
// tracked element to its nearest neighbor on each side: elements whose
// vertical spans nest are in the same row and link left/right, elements whose
// horizontal spans nest are in the same column and link up/down. The
// Navigator walks those links to answer "where does focus go from here".
//
// # Registry
//
// Nodes live in a slot table indexed by handle. Neighbor links are handles,
// so unlinking a node is a few table writes and freed slots are reused.
//
//	g := focus.NewGraph(logger)
//	g.Register(page.Focusables()...)
//	nav := focus.NewNavigator(g, focus.WithMaxChainSteps(100))
//	next, ok := nav.Resolve(active, focus.Right)
//
// # Concurrency
//
// Graph and Navigator are owned by the page's event loop. They do no locking.
package focus

package terminal

import (
	"math"

	"github.com/dshills/vimfocus/internal/focus"
)

// CellRect is a rectangle in screen cells.
type CellRect struct {
	X, Y, W, H int
}

// Layout scales page coordinates onto a grid of cells. The page origin
// maps to the top-left cell; the axes scale independently so the whole
// page fits.
type Layout struct {
	scaleX, scaleY float64
	width, height  int
}

// NewLayout fits a page whose content ends at bounds into width by height
// cells.
func NewLayout(bounds focus.Rect, width, height int) Layout {
	l := Layout{scaleX: 1, scaleY: 1, width: width, height: height}
	if right := bounds.Right(); right > 0 && width > 1 {
		l.scaleX = float64(width-1) / right
	}
	if bottom := bounds.Bottom(); bottom > 0 && height > 1 {
		l.scaleY = float64(height-1) / bottom
	}
	return l
}

// Cell maps r onto the grid. Every element gets at least one row and
// three columns, clipped to the grid.
func (l Layout) Cell(r focus.Rect) CellRect {
	x := int(math.Floor(math.Max(r.X, 0) * l.scaleX))
	y := int(math.Floor(math.Max(r.Y, 0) * l.scaleY))
	w := int(math.Round(r.Width * l.scaleX))
	h := int(math.Round(r.Height * l.scaleY))

	w = max(w, 3)
	h = max(h, 1)
	if x+w > l.width {
		w = max(l.width-x, 0)
	}
	if y+h > l.height {
		h = max(l.height-y, 0)
	}
	return CellRect{X: x, Y: y, W: w, H: h}
}

package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimfocus/internal/focus"
	"github.com/dshills/vimfocus/internal/page"
)

// Styles used to draw element boxes.
var (
	styleElement  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFocused  = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack).Bold(true)
	styleDisabled = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
)

// drawPage draws every element tracked by g into area, scaled to the
// bounds of pg. Elements at least three rows tall get a border; smaller
// ones are drawn as [label].
func drawPage(screen tcell.Screen, pg *page.Page, g *focus.Graph, area CellRect) {
	layout := NewLayout(pg.Bounds(), area.W, area.H)
	active, _ := pg.Active()

	for _, fe := range g.Elements() {
		el := fe.(*page.Element)
		r := layout.Cell(el.Rect())
		r.X += area.X
		r.Y += area.Y
		if r.W == 0 || r.H == 0 {
			continue
		}

		style := styleElement
		switch {
		case el == active:
			style = styleFocused
		case !focus.CanReceiveFocus(el):
			style = styleDisabled
		}

		if r.H >= 3 {
			drawBox(screen, r, style)
			drawLabel(screen, r.X+1, r.Y+1, r.W-2, el.Label(), style)
			continue
		}
		fill(screen, r, style)
		screen.SetContent(r.X, r.Y, '[', nil, style)
		screen.SetContent(r.X+r.W-1, r.Y, ']', nil, style)
		drawLabel(screen, r.X+1, r.Y, r.W-2, el.Label(), style)
	}
}

func drawBox(screen tcell.Screen, r CellRect, style tcell.Style) {
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	fill(screen, r, style)
	for x := r.X + 1; x < right; x++ {
		screen.SetContent(x, r.Y, tcell.RuneHLine, nil, style)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		screen.SetContent(r.X, y, tcell.RuneVLine, nil, style)
		screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, r.Y, tcell.RuneURCorner, nil, style)
	screen.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func fill(screen tcell.Screen, r CellRect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawLabel writes label into width cells, truncating with '~'.
func drawLabel(screen tcell.Screen, x, y, width int, label string, style tcell.Style) {
	if width <= 0 {
		return
	}
	runes := []rune(label)
	if len(runes) > width {
		runes = append(runes[:width-1], '~')
	}
	for i, r := range runes {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

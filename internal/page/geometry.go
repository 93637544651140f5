package page

import (
	"strconv"
	"strings"

	"github.com/dshills/vimfocus/internal/focus"
)

// parseRect reads "x,y,w,h" as used in data-rect attributes.
func parseRect(s string) (focus.Rect, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return focus.Rect{}, false
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return focus.Rect{}, false
		}
		v[i] = f
	}
	if v[2] < 0 || v[3] < 0 {
		return focus.Rect{}, false
	}
	return focus.NewRect(v[0], v[1], v[2], v[3]), true
}

// parseStyleRect reads left/top/width/height pixel declarations from an
// inline style. Missing properties are zero; at least one must be present.
func parseStyleRect(style string) (focus.Rect, bool) {
	var r focus.Rect
	found := false
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		px, ok := parsePixels(value)
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "left":
			r.X = px
		case "top":
			r.Y = px
		case "width":
			r.Width = px
		case "height":
			r.Height = px
		default:
			continue
		}
		found = true
	}
	return r, found
}

func parsePixels(value string) (float64, bool) {
	value = strings.TrimSpace(strings.ToLower(value))
	value = strings.TrimSuffix(value, "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// union returns the smallest rectangle containing a and b.
func union(a, b focus.Rect) focus.Rect {
	x := min(a.X, b.X)
	y := min(a.Y, b.Y)
	right := max(a.Right(), b.Right())
	bottom := max(a.Bottom(), b.Bottom())
	return focus.NewRect(x, y, right-x, bottom-y)
}

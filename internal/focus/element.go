package focus

import (
	"fmt"
	"math"
)

// Point is a position in page coordinates.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an element's bounding box in page coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// String returns "x,y wxh".
func (r Rect) String() string {
	return fmt.Sprintf("%g,%g %gx%g", r.X, r.Y, r.Width, r.Height)
}

// sameRow reports whether one rectangle's vertical span contains the other's.
func sameRow(a, b Rect) bool {
	return (a.Y <= b.Y && a.Bottom() >= b.Bottom()) ||
		(b.Y <= a.Y && b.Bottom() >= a.Bottom())
}

// sameCol reports whether one rectangle's horizontal span contains the other's.
func sameCol(a, b Rect) bool {
	return (a.X <= b.X && a.Right() >= b.Right()) ||
		(b.X <= a.X && b.Right() >= a.Right())
}

// Element is a node of the page as seen by the focus graph.
// Implementations must be comparable; pointer receivers are the norm.
// Identity is the interface value itself.
type Element interface {
	// Tag returns the lower-case tag name ("input", "a", "div").
	Tag() string

	// Attr returns the value of an attribute and whether it is present.
	Attr(name string) (string, bool)

	// Editable reports whether content editing is in effect for the element.
	Editable() bool

	// Rect returns the element's current bounding box.
	Rect() Rect
}

// Host is the page side of focus: it reports and moves input focus.
type Host interface {
	// ActiveElement returns the focused element, or nil.
	ActiveElement() Element

	// Focus moves input focus to el. It is a no-op for elements that
	// cannot currently accept focus.
	Focus(el Element)
}

// CaretPosition selects where the caret lands when entering insert mode.
type CaretPosition int

const (
	// CaretStart places the caret before the first character.
	CaretStart CaretPosition = iota
	// CaretNext moves the caret one character past its current position.
	CaretNext
	// CaretEnd places the caret after the last character.
	CaretEnd
)

// String returns the position name.
func (c CaretPosition) String() string {
	switch c {
	case CaretStart:
		return "start"
	case CaretNext:
		return "next"
	case CaretEnd:
		return "end"
	default:
		return "unknown"
	}
}

// CaretHost is implemented by hosts that can place the text caret.
type CaretHost interface {
	Host
	SetCaret(el Element, pos CaretPosition)
}

// Direction is one of the four link directions.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists all directions in link order.
var Directions = [...]Direction{Left, Right, Up, Down}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// ParseDirection converts a name ("left", "h", ...) to a Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "left", "h":
		return Left, nil
	case "right", "l":
		return Right, nil
	case "up", "k":
		return Up, nil
	case "down", "j":
		return Down, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
	}
}

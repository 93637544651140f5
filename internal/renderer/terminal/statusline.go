package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimfocus/internal/input/mode"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// StatusLine renders the bottom row: mode, pending count, focused element
// and the latest message.
type StatusLine struct {
	mode    mode.Mode
	pending string
	focused string
	title   string

	message     string
	messageType MessageType

	modeStyles map[mode.Mode]tcell.Style
}

// NewStatusLine creates a status line in normal mode.
func NewStatusLine() *StatusLine {
	return &StatusLine{
		mode:       mode.Normal,
		modeStyles: defaultModeStyles(),
	}
}

func defaultModeStyles() map[mode.Mode]tcell.Style {
	return map[mode.Mode]tcell.Style{
		mode.Normal: tcell.StyleDefault.Bold(true).Background(tcell.ColorBlue).Foreground(tcell.ColorWhite),
		mode.Insert: tcell.StyleDefault.Bold(true).Background(tcell.ColorGreen).Foreground(tcell.ColorBlack),
	}
}

// SetMode updates the displayed mode.
func (s *StatusLine) SetMode(m mode.Mode) { s.mode = m }

// SetPending updates the pending count.
func (s *StatusLine) SetPending(count string) { s.pending = count }

// SetFocused updates the focused element label.
func (s *StatusLine) SetFocused(label string) { s.focused = label }

// SetTitle updates the page title shown on the right.
func (s *StatusLine) SetTitle(title string) { s.title = title }

// SetMessage shows msg until the next key.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Render draws the status line on row.
func (s *StatusLine) Render(screen tcell.Screen, row, width int) {
	barStyle := tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorWhite)
	for x := 0; x < width; x++ {
		screen.SetContent(x, row, ' ', nil, barStyle)
	}

	modeStyle, ok := s.modeStyles[s.mode]
	if !ok {
		modeStyle = barStyle.Bold(true)
	}
	col := drawText(screen, 0, row, width, " "+s.mode.DisplayName()+" ", modeStyle)
	col++

	if s.pending != "" {
		col = drawText(screen, col, row, width, s.pending+" ", barStyle.Bold(true))
	}

	switch {
	case s.message != "":
		style := barStyle
		if s.messageType == MessageError {
			style = style.Foreground(tcell.ColorRed).Bold(true)
		}
		drawText(screen, col, row, width, s.message, style)
	case s.focused != "":
		drawText(screen, col, row, width, s.focused, barStyle)
	}

	if s.title != "" {
		start := width - len([]rune(s.title)) - 1
		if start > col+1 {
			drawText(screen, start, row, width, s.title, barStyle)
		}
	}
}

// drawText writes text from (x, y), stopping at limit. Returns the column
// after the last rune drawn.
func drawText(screen tcell.Screen, x, y, limit int, text string, style tcell.Style) int {
	for _, r := range text {
		if x >= limit {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

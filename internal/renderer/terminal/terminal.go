package terminal

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/vimfocus/internal/app"
	"github.com/dshills/vimfocus/internal/config"
	"github.com/dshills/vimfocus/internal/input"
	"github.com/dshills/vimfocus/internal/input/key"
)

// ErrScreenClosed is returned by Run when the screen stops delivering
// events.
var ErrScreenClosed = errors.New("screen closed")

// quitKey ends the session. It never reaches the dispatcher.
var quitKey = key.MustParseCombo("C-c")

// Terminal draws an application's page on a tcell screen and feeds it
// keypresses.
type Terminal struct {
	screen tcell.Screen
	app    *app.Application
	status *StatusLine
	logger *zap.Logger
}

// New creates a terminal view of a. The screen must already be
// initialized; the caller finalizes it.
func New(screen tcell.Screen, a *app.Application, logger *zap.Logger) *Terminal {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Terminal{
		screen: screen,
		app:    a,
		status: NewStatusLine(),
		logger: logger.Named("terminal"),
	}
	t.status.SetTitle(a.Page().Title())
	return t
}

// StatusLine returns the status line.
func (t *Terminal) StatusLine() *StatusLine {
	return t.status
}

// Draw renders the page and the status line.
func (t *Terminal) Draw() {
	width, height := t.screen.Size()
	t.screen.Clear()

	if height > 1 {
		drawPage(t.screen, t.app.Page(), t.app.Graph(), CellRect{W: width, H: height - 1})
	}

	t.status.SetMode(t.app.Mode())
	t.status.SetPending(t.app.Dispatcher().PendingCount())
	if el, ok := t.app.Focused(); ok {
		t.status.SetFocused(el.Label())
	} else {
		t.status.SetFocused("")
	}
	t.status.Render(t.screen, height-1, width)
	t.screen.Show()
}

// Run processes keys and config reloads until Ctrl-C, ctx is done or the
// screen closes. reloads may be nil.
func (t *Terminal) Run(ctx context.Context, reloads <-chan config.Reload) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return ErrScreenClosed
			}
			if done := t.handleEvent(ev); done {
				return nil
			}

		case r, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			t.handleReload(r)
		}
		t.Draw()
	}
}

// handleEvent applies one terminal event. Returns true to quit.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		kev, ok := KeyEvent(e)
		if e.Key() == tcell.KeyCtrlC || (ok && kev.Equals(quitKey)) {
			return true
		}
		if !ok {
			t.logger.Debug("untranslated key", zap.String("key", e.Name()))
			return false
		}
		t.status.ClearMessage()
		out := t.app.HandleKey(kev)
		t.report(out)

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

// report shows what the dispatcher did with a key that did not move focus
// or change mode.
func (t *Terminal) report(out input.Outcome) {
	switch {
	case out.Err != nil:
		t.status.SetMessage(fmt.Sprintf("%s: %v", out.Action, out.Err), MessageError)
	case out.Result == input.ResultUnbound && out.PassThrough():
		t.status.SetMessage("passed through "+out.Combo, MessageInfo)
	case out.Result == input.ResultAction && out.PassThrough():
		t.status.SetMessage(out.Combo+" left to the browser", MessageInfo)
	}
}

func (t *Terminal) handleReload(r config.Reload) {
	if err := t.app.ApplyReload(r); err != nil {
		t.status.SetMessage("config rejected: "+err.Error(), MessageError)
		return
	}
	t.status.SetMessage("config reloaded", MessageInfo)
}

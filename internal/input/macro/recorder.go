package macro

import (
	"sync"

	"github.com/dshills/vimfocus/internal/input/key"
)

// Recorder records key sequences.
type Recorder struct {
	mu        sync.Mutex
	recording bool
	name      string
	events    []key.Event
}

// NewRecorder creates an idle recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start begins a new recording, discarding any recording in progress.
func (r *Recorder) Start(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recording = true
	r.name = name
	r.events = nil
}

// Stop ends the recording and returns it. Stopping an idle recorder
// returns an empty macro.
func (r *Recorder) Stop() Macro {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return Macro{}
	}
	r.recording = false
	m := FromEvents(r.name, r.events)
	r.events = nil
	return m
}

// Record adds a key event to the current recording.
// Does nothing if not recording.
func (r *Recorder) Record(ev key.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		r.events = append(r.events, ev)
	}
}

// Len returns the number of events recorded so far.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

package input

import (
	"sync/atomic"
	"time"
)

// Metrics counts dispatch outcomes. Counters may be read from any
// goroutine while the event loop records.
type Metrics struct {
	keysTotal     atomic.Uint64
	actionsTotal  atomic.Uint64
	suppressed    atomic.Uint64
	passedThrough atomic.Uint64
	countDigits   atomic.Uint64
	cancels       atomic.Uint64
	unbound       atomic.Uint64
	actionErrors  atomic.Uint64

	peakLatency atomic.Int64
	startTime   time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

func (m *Metrics) record(out Outcome, latency time.Duration) {
	m.keysTotal.Add(1)
	if out.Suppress {
		m.suppressed.Add(1)
	} else {
		m.passedThrough.Add(1)
	}

	switch out.Result {
	case ResultAction:
		m.actionsTotal.Add(1)
		if out.Err != nil {
			m.actionErrors.Add(1)
		}
	case ResultCount:
		m.countDigits.Add(1)
	case ResultCancel:
		m.cancels.Add(1)
	case ResultUnbound:
		m.unbound.Add(1)
	}

	ns := latency.Nanoseconds()
	for {
		current := m.peakLatency.Load()
		if ns <= current || m.peakLatency.CompareAndSwap(current, ns) {
			break
		}
	}
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	KeysTotal     uint64
	ActionsTotal  uint64
	Suppressed    uint64
	PassedThrough uint64
	CountDigits   uint64
	Cancels       uint64
	Unbound       uint64
	ActionErrors  uint64

	PeakLatency time.Duration
	Uptime      time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		KeysTotal:     m.keysTotal.Load(),
		ActionsTotal:  m.actionsTotal.Load(),
		Suppressed:    m.suppressed.Load(),
		PassedThrough: m.passedThrough.Load(),
		CountDigits:   m.countDigits.Load(),
		Cancels:       m.cancels.Load(),
		Unbound:       m.unbound.Load(),
		ActionErrors:  m.actionErrors.Load(),
		PeakLatency:   time.Duration(m.peakLatency.Load()),
		Uptime:        time.Since(m.startTime),
	}
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.keysTotal.Store(0)
	m.actionsTotal.Store(0)
	m.suppressed.Store(0)
	m.passedThrough.Store(0)
	m.countDigits.Store(0)
	m.cancels.Store(0)
	m.unbound.Store(0)
	m.actionErrors.Store(0)
	m.peakLatency.Store(0)
}

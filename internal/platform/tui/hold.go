package tui

import (
	"time"

	"github.com/vovakirdan/cave-loot/internal/core"
)

// DefaultHoldWindow is how long a held key stays down after its last
// repeat. It covers the usual 500-660ms autorepeat delay; raise --hold if
// the terminal waits longer before repeating.
const DefaultHoldWindow = 700 * time.Millisecond

// HoldTracker synthesizes key releases. Terminals only report presses, and
// a held key arrives as a stream of repeated presses; a key counts as
// released once no press has been seen for the hold window.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses
// DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{window: window, last: make(map[core.Action]time.Time)}
}

// Press records a press at now and reports whether the key was up before.
func (h *HoldTracker) Press(a core.Action, now time.Time) bool {
	_, down := h.last[a]
	h.last[a] = now
	return !down
}

// Expire writes a release into frame for every key whose hold window ran
// out by now.
func (h *HoldTracker) Expire(now time.Time, frame *core.InputFrame) {
	for a, t := range h.last {
		if now.Sub(t) >= h.window {
			frame.Release(a)
			delete(h.last, a)
		}
	}
}

// ReleaseAll releases every held key, e.g. when a dialog takes the focus.
func (h *HoldTracker) ReleaseAll(frame *core.InputFrame) {
	for a := range h.last {
		frame.Release(a)
		delete(h.last, a)
	}
}

// Package input merges keyboard edge events and asynchronous gesture
// signals into a single authoritative lane/jump intent per frame.
package input

import (
	"time"

	"github.com/vovakirdan/gesture-runner/internal/core"
	"github.com/vovakirdan/gesture-runner/internal/gesture"
)

// KeyboardPriorityWindow is how long gesture signals are ignored after
// any keypress. Gesture recognition is noisy and latent; the keyboard
// (the testing/fallback modality) must never visibly fight with it.
// Measured in wall-clock time so the window decays even while the game
// clock is paused or frozen.
const KeyboardPriorityWindow = time.Second

// Intent is the per-frame authoritative input decision.
type Intent struct {
	Lane core.Lane
	Jump bool
}

// Aggregator arbitrates between the two input sources. Not safe for
// concurrent use: the frame-loop driver owns it and both keyboard events
// and gesture polls arrive on the driver's goroutine.
type Aggregator struct {
	lane          core.Lane
	jumpQueued    bool
	keyboardUntil time.Time
	prevClosed    bool
	sig           gesture.Signal
	sigSet        bool
	now           func() time.Time
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithNow overrides the wall-clock source, used by tests to control the
// keyboard priority window.
func WithNow(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// New creates an aggregator starting in the center lane.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		lane: core.LaneCenter,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Reset returns the aggregator to the center lane with no pending jump.
// Called on game restart. The keyboard window and gesture edge state
// survive; input modality is not part of game state.
func (a *Aggregator) Reset() {
	a.lane = core.LaneCenter
	a.jumpQueued = false
}

// Lane returns the current authoritative lane.
func (a *Aggregator) Lane() core.Lane {
	return a.lane
}

// KeyLeft handles a lane-left keypress: one adjacent step, clamped.
func (a *Aggregator) KeyLeft() {
	a.markKeyboard()
	a.lane = a.lane.Left()
}

// KeyRight handles a lane-right keypress: one adjacent step, clamped.
func (a *Aggregator) KeyRight() {
	a.markKeyboard()
	a.lane = a.lane.Right()
}

// KeyJump handles a jump keypress. The edge is queued until the next
// Intent read; whether a jump actually starts is the controller's call.
func (a *Aggregator) KeyJump() {
	a.markKeyboard()
	a.jumpQueued = true
}

func (a *Aggregator) markKeyboard() {
	a.keyboardUntil = a.now().Add(KeyboardPriorityWindow)
}

// KeyboardActive reports whether the keyboard priority window is open.
func (a *Aggregator) KeyboardActive() bool {
	return a.now().Before(a.keyboardUntil)
}

// Observe stores the latest gesture signal. Latest-value-wins; calling
// it repeatedly between frames simply replaces the value. The aggregator
// works fine if this is never called (no recognizer attached).
func (a *Aggregator) Observe(sig gesture.Signal) {
	a.sig = sig
	a.sigSet = true
}

// Intent evaluates both sources and returns this frame's authoritative
// lane and jump decision. The jump edge is consumed by the read.
func (a *Aggregator) Intent() Intent {
	if a.sigSet {
		closed := a.sig.Closed

		if !a.KeyboardActive() {
			if a.sig.Tracked {
				a.lane = a.lane.Toward(a.sig.Lane)
			}
			if closed && !a.prevClosed {
				a.jumpQueued = true
			}
		}
		// The edge detector tracks the fist state even while keyboard
		// priority suppresses it, so a fist held across the window's
		// expiry does not fire a late jump.
		a.prevClosed = closed
	}

	intent := Intent{Lane: a.lane, Jump: a.jumpQueued}
	a.jumpQueued = false
	return intent
}

// Package gesture is the boundary to the external hand-recognition
// collaborator. The recognizer (a browser page running a vision model
// against the webcam) streams detections to the bridge over a websocket;
// everything past the adapter in this package is one normalized contract
// and the rest of the game never sees collaborator wire shapes.
package gesture

import (
	"sync"

	"github.com/vovakirdan/gesture-runner/internal/core"
)

// Signal is one normalized hand detection. Latest-value-wins: consumers
// only ever care about the most recent signal, never a backlog.
type Signal struct {
	// Lane the hand currently points at. Only meaningful when Tracked.
	Lane core.Lane

	// Tracked is false when no hand is visible. That is a valid signal,
	// not an error; the aggregator holds the current lane in response.
	Tracked bool

	// Closed is true while the hand is a closed fist. Jumps trigger on
	// the rising edge only.
	Closed bool
}

// Slot is a mutex-guarded latest-value cell. The bridge publishes into
// it at the recognizer's cadence; the frame loop polls it once per
// frame. Stale detections are overwritten, never queued.
type Slot struct {
	mu  sync.Mutex
	sig Signal
	set bool
}

// Publish replaces the stored signal.
func (s *Slot) Publish(sig Signal) {
	s.mu.Lock()
	s.sig = sig
	s.set = true
	s.mu.Unlock()
}

// Latest returns the most recent signal. The boolean is false until the
// first Publish, letting callers distinguish "no recognizer attached"
// from "recognizer sees no hand".
func (s *Slot) Latest() (Signal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sig, s.set
}

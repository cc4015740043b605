// Package clock converts raw per-frame wall-clock deltas into a stable,
// monotonic game time. Frame callbacks arrive at irregular intervals
// (GC pauses, terminal backpressure, suspended sessions); everything
// gameplay-timed reads this clock instead, so movement, spawning, jump
// arcs and invulnerability all scale identically when rendering hiccups.
//
// The clock is owned exclusively by the frame-loop driver, which calls
// Advance exactly once per frame. All other components hold a read-only
// reference and use the query methods.
package clock

import (
	"github.com/charmbracelet/log"
)

// Default timing thresholds, in seconds.
const (
	// SeedDelta is the smoothed delta before any frame has been observed.
	SeedDelta = 1.0 / 60

	// DefaultMaxFrameDelta is the clamp ceiling for a single frame.
	// Bounds the minimum simulated frame rate to a 20 FPS equivalent so
	// one slow frame cannot produce a large position jump.
	DefaultMaxFrameDelta = 0.05

	// DefaultFreezeThreshold marks a frame as a rendering freeze.
	// Frames above it are skipped entirely rather than simulated.
	DefaultFreezeThreshold = 0.2

	historySize     = 5
	fpsHistorySize  = 10
	fpsSampleWindow = 1.0
	lowFPSThreshold = 30.0
)

// FrameResult is the outcome of classifying and normalizing one frame.
type FrameResult struct {
	// Delta is the simulated seconds to advance physics by this frame.
	// Zero when SkipPhysics is set.
	Delta float64

	// SkipPhysics tells the caller to leave all simulation state
	// untouched this frame (paused, or the frame was a freeze).
	SkipPhysics bool

	// Recovering marks a frame following a stall. Physics may still run
	// (unless SkipPhysics is also set), but callers should clamp any
	// wall-clock-driven interpolation and skip collision checks to avoid
	// false positives from the large implicit step.
	Recovering bool
}

// Clock accumulates normalized game time from raw frame deltas.
type Clock struct {
	gameTime float64
	smoothed float64
	history  []float64
	paused   bool

	maxDelta          float64
	recoveryThreshold float64
	freezeThreshold   float64

	// Diagnostics only; never read by gameplay logic.
	frames     int
	window     float64
	currentFPS float64
	fpsHistory []float64
	logger     *log.Logger
}

// Option configures a Clock.
type Option func(*Clock)

// WithThresholds overrides the clamp ceiling and freeze cutoff. The
// recovery band stays at twice the clamp ceiling; the exact ratio is
// tunable, not load-bearing.
func WithThresholds(maxDelta, freeze float64) Option {
	return func(c *Clock) {
		c.maxDelta = maxDelta
		c.recoveryThreshold = 2 * maxDelta
		c.freezeThreshold = freeze
	}
}

// WithLogger attaches a logger for low-frame-rate diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *Clock) {
		c.logger = logger
	}
}

// New creates a clock with game time at zero and the smoothed delta
// seeded at one 60 FPS frame.
func New(opts ...Option) *Clock {
	c := &Clock{
		smoothed:          SeedDelta,
		history:           make([]float64, 0, historySize),
		maxDelta:          DefaultMaxFrameDelta,
		recoveryThreshold: 2 * DefaultMaxFrameDelta,
		freezeThreshold:   DefaultFreezeThreshold,
		fpsHistory:        make([]float64, 0, fpsHistorySize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Advance feeds one raw wall-clock frame delta (seconds since the
// previous frame callback, >= 0) into the clock and returns how the
// caller should treat the frame.
//
// Frames are classified in three bands:
//   - raw > freeze threshold: the render loop stalled. Game time and the
//     smoothing history are left untouched and the caller skips physics,
//     so a backgrounded session resumes where it left off instead of
//     teleporting through everything spawned "during" the stall.
//   - raw > 2x clamp ceiling: processed normally, but flagged Recovering
//     so cosmetic interpolation gets clamped and collisions are skipped.
//   - otherwise: clamped to the ceiling, pushed into the smoothing
//     history, and the mean of the history becomes this frame's delta.
//
// Smoothing means sustained load shows up as slow motion rather than
// frame-to-frame jitter, which is the intended degraded behavior.
func (c *Clock) Advance(rawDelta float64) FrameResult {
	if c.paused {
		return FrameResult{Delta: 0, SkipPhysics: true}
	}

	c.sampleFPS(rawDelta)

	if rawDelta > c.freezeThreshold {
		return FrameResult{Delta: 0, SkipPhysics: true, Recovering: true}
	}

	recovering := rawDelta > c.recoveryThreshold

	clamped := rawDelta
	if clamped > c.maxDelta {
		clamped = c.maxDelta
	}

	if len(c.history) == historySize {
		c.history = append(c.history[:0], c.history[1:]...)
		c.history = append(c.history, clamped)
	} else {
		c.history = append(c.history, clamped)
	}

	sum := 0.0
	for _, d := range c.history {
		sum += d
	}
	c.smoothed = sum / float64(len(c.history))
	c.gameTime += c.smoothed

	return FrameResult{Delta: c.smoothed, SkipPhysics: false, Recovering: recovering}
}

// Now returns the accumulated game time in simulated seconds.
func (c *Clock) Now() float64 {
	return c.gameTime
}

// SmoothedDelta returns the current moving-average frame delta.
func (c *Clock) SmoothedDelta() float64 {
	return c.smoothed
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool {
	return c.paused
}

// SetPaused freezes or resumes the clock. While paused, Advance is a
// no-op returning a zero delta; game time never includes pause duration.
func (c *Clock) SetPaused(paused bool) {
	c.paused = paused
}

// TogglePause flips the pause flag and returns the new state.
func (c *Clock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// Reset returns the clock to its initial state: game time zero, history
// empty, smoothed delta reseeded, unpaused. The only way game time ever
// decreases.
func (c *Clock) Reset() {
	c.gameTime = 0
	c.smoothed = SeedDelta
	c.history = c.history[:0]
	c.paused = false
	c.frames = 0
	c.window = 0
	c.currentFPS = 0
	c.fpsHistory = c.fpsHistory[:0]
}

// sampleFPS accumulates diagnostic frame-rate counters over rolling
// one-second wall-clock windows. Counted for every non-paused frame
// regardless of classification.
func (c *Clock) sampleFPS(rawDelta float64) {
	c.frames++
	c.window += rawDelta

	if c.window < fpsSampleWindow {
		return
	}

	c.currentFPS = float64(c.frames) / c.window
	if len(c.fpsHistory) == fpsHistorySize {
		c.fpsHistory = append(c.fpsHistory[:0], c.fpsHistory[1:]...)
	}
	c.fpsHistory = append(c.fpsHistory, c.currentFPS)

	if c.currentFPS < lowFPSThreshold && c.logger != nil {
		c.logger.Warn("low frame rate", "fps", c.currentFPS, "frames", c.frames)
	}

	c.frames = 0
	c.window = 0
}

// CurrentFPS returns the most recent frame-rate sample. Informational
// only; gameplay must never branch on it.
func (c *Clock) CurrentFPS() float64 {
	return c.currentFPS
}

// FPSHistory returns a copy of the recent frame-rate samples.
func (c *Clock) FPSHistory() []float64 {
	out := make([]float64, len(c.fpsHistory))
	copy(out, c.fpsHistory)
	return out
}

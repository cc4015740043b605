package clock

// Timed-event queries. Pure functions of game time with no independent
// state: every timed gameplay behavior (spawn cadence, jump arcs,
// invulnerability expiry) goes through these, which is what guarantees
// all of them scale identically with the normalized clock.

// HasElapsed reports whether at least interval simulated seconds have
// passed since the game-time stamp `since`.
func (c *Clock) HasElapsed(since, interval float64) bool {
	return c.gameTime-since >= interval
}

// Progress returns the completion fraction in [0, 1] of a duration that
// started at the game-time stamp `start`. duration must be positive;
// non-positive durations are a programming error, not a guarded input.
func (c *Clock) Progress(start, duration float64) float64 {
	p := (c.gameTime - start) / duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// IsComplete reports whether the duration starting at `start` has fully
// elapsed. Always agrees with Progress(start, duration) >= 1.
func (c *Clock) IsComplete(start, duration float64) bool {
	return c.Progress(start, duration) >= 1
}

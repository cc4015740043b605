package clock

import (
	"math"
	"testing"
)

const frame60 = 1.0 / 60

// advanceBy feeds whole 0.05s frames until at least the given amount of
// game time has accumulated.
func advanceBy(c *Clock, seconds float64) {
	target := c.Now() + seconds - 1e-9
	for c.Now() < target {
		c.Advance(DefaultMaxFrameDelta)
	}
}

func TestAdvanceMonotonicity(t *testing.T) {
	c := New()

	deltas := []float64{
		frame60, frame60, 0.03, 0.05, 0.002, 0.15, 0.199,
		5.0, // extreme
		frame60, 0.0, 0.08, 1.0, frame60,
	}

	prev := c.Now()
	for i, d := range deltas {
		res := c.Advance(d)
		now := c.Now()

		if now < prev {
			t.Fatalf("frame %d: game time decreased from %f to %f", i, prev, now)
		}
		if res.SkipPhysics {
			if now != prev {
				t.Fatalf("frame %d: skipped frame still advanced game time", i)
			}
		} else if now <= prev {
			t.Fatalf("frame %d: processed frame did not advance game time", i)
		}
		prev = now
	}
}

func TestFreezeIsolation(t *testing.T) {
	c := New()
	for i := 0; i < 10; i++ {
		c.Advance(frame60)
	}

	timeBefore := c.Now()
	smoothedBefore := c.SmoothedDelta()

	res := c.Advance(5.0)

	if res.Delta != 0 {
		t.Errorf("freeze frame returned delta %f, expected 0", res.Delta)
	}
	if !res.SkipPhysics {
		t.Error("freeze frame must request a physics skip")
	}
	if !res.Recovering {
		t.Error("freeze frame must be flagged as recovering")
	}
	if c.Now() != timeBefore {
		t.Errorf("freeze frame changed game time: %f -> %f", timeBefore, c.Now())
	}
	if c.SmoothedDelta() != smoothedBefore {
		t.Errorf("freeze frame changed smoothed delta: %f -> %f", smoothedBefore, c.SmoothedDelta())
	}
}

func TestClampingInRecoveryBand(t *testing.T) {
	c := New()

	res := c.Advance(0.15)

	if res.SkipPhysics {
		t.Error("recovery-band frame should still run physics")
	}
	if !res.Recovering {
		t.Error("recovery-band frame must be flagged as recovering")
	}
	// Only one history entry, so the smoothed delta is exactly the
	// clamped value fed into the buffer.
	if res.Delta > DefaultMaxFrameDelta {
		t.Errorf("delta %f exceeds the clamp ceiling %f", res.Delta, DefaultMaxFrameDelta)
	}
	if math.Abs(res.Delta-DefaultMaxFrameDelta) > 1e-12 {
		t.Errorf("0.15s frame should clamp to the ceiling, got %f", res.Delta)
	}
}

func TestNormalFrameBelowCeilingIsNotClamped(t *testing.T) {
	c := New()

	res := c.Advance(0.01)

	if res.Recovering || res.SkipPhysics {
		t.Error("0.01s frame should be a plain normal frame")
	}
	if math.Abs(res.Delta-0.01) > 1e-12 {
		t.Errorf("first frame delta should equal the raw value, got %f", res.Delta)
	}
}

func TestSmoothingIsMeanOfHistory(t *testing.T) {
	c := New()

	// Six frames; the first must be evicted from the 5-slot buffer.
	deltas := []float64{0.04, 0.01, 0.02, 0.03, 0.01, 0.02}
	var res FrameResult
	for _, d := range deltas {
		res = c.Advance(d)
	}

	want := (0.01 + 0.02 + 0.03 + 0.01 + 0.02) / 5
	if math.Abs(res.Delta-want) > 1e-12 {
		t.Errorf("smoothed delta = %f, expected mean of last 5 = %f", res.Delta, want)
	}
}

func TestPauseIdempotence(t *testing.T) {
	c := New()
	for i := 0; i < 5; i++ {
		c.Advance(frame60)
	}
	timeBefore := c.Now()

	c.SetPaused(true)
	for i := 0; i < 100; i++ {
		res := c.Advance(1.0) // huge "pause duration" deltas
		if res.Delta != 0 || !res.SkipPhysics {
			t.Fatal("paused Advance must be a zero-delta no-op")
		}
	}
	if c.Now() != timeBefore {
		t.Errorf("paused Advance changed game time: %f -> %f", timeBefore, c.Now())
	}

	c.SetPaused(false)
	res := c.Advance(frame60)
	advanced := c.Now() - timeBefore
	if math.Abs(advanced-res.Delta) > 1e-12 {
		t.Errorf("unpause advanced by %f, expected the smoothed delta %f", advanced, res.Delta)
	}
	if advanced > 2*frame60 {
		t.Errorf("unpause advanced by %f, looks like pause duration leaked in", advanced)
	}
}

func TestSmoothedDeltaSeed(t *testing.T) {
	c := New()
	if c.SmoothedDelta() != SeedDelta {
		t.Errorf("fresh clock smoothed delta = %f, expected %f", c.SmoothedDelta(), SeedDelta)
	}
	if c.Now() != 0 {
		t.Errorf("fresh clock game time = %f, expected 0", c.Now())
	}
}

func TestReset(t *testing.T) {
	c := New()
	for i := 0; i < 20; i++ {
		c.Advance(0.03)
	}
	c.SetPaused(true)

	c.Reset()

	if c.Now() != 0 {
		t.Errorf("Reset should zero game time, got %f", c.Now())
	}
	if c.SmoothedDelta() != SeedDelta {
		t.Errorf("Reset should reseed smoothed delta, got %f", c.SmoothedDelta())
	}
	if c.Paused() {
		t.Error("Reset should unpause")
	}
	if c.CurrentFPS() != 0 || len(c.FPSHistory()) != 0 {
		t.Error("Reset should clear FPS diagnostics")
	}
}

func TestScalingInvariance(t *testing.T) {
	// Two clocks fed the same number of frames, one at twice the frame
	// delta. Spawn events driven by HasElapsed must scale by the same
	// factor, proving spawn cadence shares the normalized time base.
	const (
		frames   = 2000
		interval = 0.5
	)

	countSpawns := func(delta float64) int {
		c := New()
		last := 0.0
		spawns := 0
		for i := 0; i < frames; i++ {
			c.Advance(delta)
			if c.HasElapsed(last, interval) {
				spawns++
				last = c.Now()
			}
		}
		return spawns
	}

	slow := countSpawns(0.02)
	fast := countSpawns(0.04)

	ratio := float64(fast) / float64(slow)
	if math.Abs(ratio-2.0) > 0.1 {
		t.Errorf("spawn count ratio = %f (slow=%d fast=%d), expected ~2.0", ratio, slow, fast)
	}
}

func TestCustomThresholds(t *testing.T) {
	c := New(WithThresholds(0.1, 0.4))

	res := c.Advance(0.3)
	if res.SkipPhysics {
		t.Error("0.3s should be below the custom 0.4s freeze cutoff")
	}
	if !res.Recovering {
		t.Error("0.3s is above twice the custom 0.1s ceiling, should be recovering")
	}
	if math.Abs(res.Delta-0.1) > 1e-12 {
		t.Errorf("delta should clamp to the custom ceiling, got %f", res.Delta)
	}

	res = c.Advance(0.5)
	if !res.SkipPhysics || !res.Recovering {
		t.Error("0.5s should be a freeze under the custom cutoff")
	}
}

func TestFPSDiagnostics(t *testing.T) {
	c := New()

	// 2.5 wall-clock seconds at 50 FPS.
	for i := 0; i < 125; i++ {
		c.Advance(0.02)
	}

	if math.Abs(c.CurrentFPS()-50.0) > 1.0 {
		t.Errorf("CurrentFPS = %f, expected ~50", c.CurrentFPS())
	}
	if len(c.FPSHistory()) == 0 {
		t.Error("FPS history should contain at least one sample after 2.5s")
	}
}

func TestFPSHistoryBounded(t *testing.T) {
	c := New()

	// 30 wall-clock seconds worth of frames produces 30 samples.
	for i := 0; i < 1500; i++ {
		c.Advance(0.02)
	}

	if got := len(c.FPSHistory()); got > 10 {
		t.Errorf("FPS history holds %d samples, expected at most 10", got)
	}
}

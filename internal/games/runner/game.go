// Package runner implements a three-lane endless runner. The player
// character runs forward automatically; input switches lanes and jumps,
// gems grant temporary invulnerability, obstacles end the run.
//
// All gameplay timing goes through the injected game clock: the
// controller consumes the normalized frame delta and the clock's
// timed-event queries, never wall-clock time directly. The single
// deliberate exception is lane easing, which is purely cosmetic.
package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gesture-runner/internal/clock"
	"github.com/vovakirdan/gesture-runner/internal/config"
	"github.com/vovakirdan/gesture-runner/internal/core"
	"github.com/vovakirdan/gesture-runner/internal/input"
)

// Player holds the full player state. Jumping/JumpStart and
// Invulnerable/InvulnerableUntil are always set and cleared together.
type Player struct {
	Lane    core.Lane
	TargetX float64 // lane X the visual position eases toward
	X       float64 // eased visual X
	Y       float64 // jump height above the ground
	Z       float64 // longitudinal position, monotonically increasing

	Jumping   bool
	JumpStart float64 // game time at jump initiation

	Invulnerable      bool
	InvulnerableUntil float64 // game time
}

// Game is the entity motion and spawning controller. It reads the clock
// but never advances it; the frame-loop driver owns the clock and calls
// Step exactly once per Advance.
type Game struct {
	clk     *clock.Clock
	cfg     config.RunnerConfig
	tuning  config.Tuning
	rng     *rand.Rand
	runtime core.RuntimeConfig

	player Player
	world  *world

	lastObstacleSpawn float64 // game time of the previous obstacle spawn
	lastDecorSpawn    float64

	score    float64
	gems     int
	gameOver bool
}

// New creates a game bound to the given clock and configuration.
func New(clk *clock.Clock, cfg config.RunnerConfig) *Game {
	return &Game{
		clk:   clk,
		cfg:   cfg,
		world: newWorld(),
	}
}

// Reset initializes or restarts the run. The driver resets the clock in
// the same frame handler, so from the renderer's perspective clock and
// game state reset atomically; no partially reset frame is observable.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))

	now := g.clk.Now()
	g.player = Player{Lane: core.LaneCenter}
	g.world.reset()
	g.lastObstacleSpawn = now
	g.lastDecorSpawn = now
	g.score = 0
	g.gems = 0
	g.gameOver = false
	g.tuning = g.cfg.Tuning(0)

	g.world.recycleTerrain(0, g.cfg.Terrain)
}

// Step advances the simulation by one frame. frame comes from the
// clock's Advance for this same frame; rawDelta is the unnormalized
// wall-clock delta, used only for cosmetic lane easing.
func (g *Game) Step(frame clock.FrameResult, rawDelta float64, intent input.Intent) core.StepResult {
	// After game over the controller ceases processing until an
	// explicit reset; skipped frames render the last known state.
	if g.gameOver || frame.SkipPhysics {
		return core.StepResult{State: g.State()}
	}

	now := g.clk.Now()
	g.tuning = g.cfg.Tuning(g.score)

	g.applyIntent(intent, now)

	// Forward motion. Speed constants are tuned for a 60 FPS
	// simulation; the *60 rescales them to actual simulated seconds.
	dz := g.tuning.PlayerSpeed * frame.Delta * 60
	g.player.Z += dz
	g.score += g.tuning.ScoreRate * dz

	g.world.recycleTerrain(g.player.Z, g.cfg.Terrain)

	// Lane easing runs on the raw wall-clock delta: it is cosmetic
	// interpolation, not simulation. On recovery frames the step is
	// clamped so a stall doesn't read as a sideways teleport.
	easeDelta := rawDelta
	if frame.Recovering && easeDelta > clock.DefaultMaxFrameDelta {
		easeDelta = clock.DefaultMaxFrameDelta
	}
	g.player.X = core.Damp(g.player.X, g.player.TargetX, g.cfg.Player.LaneEaseRate, easeDelta)

	g.updateJump()

	if g.player.Invulnerable && now >= g.player.InvulnerableUntil {
		g.player.Invulnerable = false
		g.player.InvulnerableUntil = 0
	}

	g.runSpawns(now)
	g.world.evict(g.player.Z, g.cfg.Terrain.EvictBehind)

	// A recovery frame follows a large implicit step; collision checks
	// would report phantom hits, so they sit this frame out.
	if !frame.Recovering {
		g.resolveCollisions(now)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) applyIntent(intent input.Intent, now float64) {
	if intent.Lane != g.player.Lane {
		g.player.Lane = intent.Lane
		g.player.TargetX = intent.Lane.Offset(g.cfg.Player.LaneOffset)
	}
	if intent.Jump && !g.player.Jumping {
		g.player.Jumping = true
		g.player.JumpStart = now
	}
}

// updateJump drives the half-sine jump arc: zero at start and landing,
// peak height at the midpoint.
func (g *Game) updateJump() {
	if !g.player.Jumping {
		return
	}

	if g.clk.IsComplete(g.player.JumpStart, g.tuning.JumpDuration) {
		g.player.Jumping = false
		g.player.JumpStart = 0
		g.player.Y = 0
		return
	}

	p := g.clk.Progress(g.player.JumpStart, g.tuning.JumpDuration)
	g.player.Y = math.Sin(p*math.Pi) * g.cfg.Jump.Height
}

// runSpawns fires the spawn cadences. Spawn stamps record the current
// game time, so cadence scales with the normalized clock like every
// other timed behavior.
func (g *Game) runSpawns(now float64) {
	if g.clk.HasElapsed(g.lastObstacleSpawn, g.tuning.ObstacleInterval) {
		z := g.player.Z + g.cfg.Obstacles.SpawnDistance
		g.world.spawnObstacle(z, randomLane(g.rng))

		// Gems only spawn bundled with an obstacle, at the tuned
		// probability, in an independently chosen lane.
		if g.rng.Float64() < g.tuning.GemChance {
			g.world.spawnGem(z, randomLane(g.rng))
		}

		g.lastObstacleSpawn = now
	}

	if g.clk.HasElapsed(g.lastDecorSpawn, g.cfg.Terrain.DecorInterval) {
		g.world.spawnDecoration(g.player.Z+g.cfg.Obstacles.SpawnDistance, g.rng)
		g.lastDecorSpawn = now
	}
}

func randomLane(rng *rand.Rand) core.Lane {
	return core.Lane(rng.Intn(3))
}

// resolveCollisions tests the player box against gems first, then
// obstacles. Gem pickup wins the frame: it grants invulnerability
// before the obstacle test runs, so overlapping both in one frame never
// ends the run.
func (g *Game) resolveCollisions(now float64) {
	p := g.cfg.Player
	playerBox := core.BoxAt(
		core.Vec3{X: g.player.X, Y: g.player.Y + p.Height/2, Z: g.player.Z},
		p.Width, p.Height, p.Depth,
	)

	if gem, ok := g.world.hitGem(playerBox, p.LaneOffset, g.cfg.Gems); ok {
		g.world.removeGem(gem.ID)
		g.gems++
		g.score += float64(g.cfg.Gems.Bonus)
		// Re-collection while already invulnerable resets the end time
		// forward; durations never stack.
		g.player.Invulnerable = true
		g.player.InvulnerableUntil = now + g.tuning.Invulnerability
	}

	if !g.player.Invulnerable && g.world.hitObstacle(playerBox, p.LaneOffset, g.cfg.Obstacles) {
		g.gameOver = true
	}
}

// Player returns a copy of the current player state.
func (g *Game) Player() Player {
	return g.player
}

// Tuning returns the difficulty snapshot computed for the current score.
func (g *Game) Tuning() config.Tuning {
	return g.tuning
}

// State returns the current run state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.score),
		Distance: int(g.player.Z),
		Gems:     g.gems,
		GameOver: g.gameOver,
		Paused:   g.clk.Paused(),
	}
}

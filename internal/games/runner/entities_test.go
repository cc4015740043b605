package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/gesture-runner/internal/config"
	"github.com/vovakirdan/gesture-runner/internal/core"
)

func testTerrain() config.TerrainConfig {
	return config.TerrainConfig{
		SegmentLength: 10,
		Ahead:         80,
		Behind:        20,
		DecorInterval: 0.4,
		EvictBehind:   15,
	}
}

func TestTerrainCoversWindow(t *testing.T) {
	w := newWorld()
	cfg := testTerrain()

	w.recycleTerrain(0, cfg)

	if len(w.terrain) == 0 {
		t.Fatal("no terrain generated")
	}
	first := w.terrain[0]
	last := w.terrain[len(w.terrain)-1]
	if first.Z > -cfg.Behind {
		t.Errorf("first segment at %f, window back edge is %f", first.Z, -cfg.Behind)
	}
	if last.Z+cfg.SegmentLength < cfg.Ahead {
		t.Errorf("last segment ends at %f, window front edge is %f", last.Z+cfg.SegmentLength, cfg.Ahead)
	}

	// Contiguous on the grid.
	for i := 1; i < len(w.terrain); i++ {
		if w.terrain[i].Z != w.terrain[i-1].Z+cfg.SegmentLength {
			t.Fatalf("gap between segments %d and %d: %f -> %f", i-1, i, w.terrain[i-1].Z, w.terrain[i].Z)
		}
	}
}

func TestTerrainRecyclesForward(t *testing.T) {
	w := newWorld()
	cfg := testTerrain()
	w.recycleTerrain(0, cfg)
	initial := len(w.terrain)

	w.recycleTerrain(500, cfg)

	if len(w.terrain) != initial {
		t.Errorf("segment count drifted from %d to %d over a long advance", initial, len(w.terrain))
	}
	if w.terrain[0].Z > 500-cfg.Behind {
		t.Errorf("window back edge not covered: first segment at %f", w.terrain[0].Z)
	}
}

func TestTerrainHysteresis(t *testing.T) {
	w := newWorld()
	cfg := testTerrain()
	w.recycleTerrain(100, cfg)

	// A segment sits exactly at the back edge. Oscillating slightly past
	// the boundary keeps it: segments only drop a full segment late.
	ids := make(map[ID]bool)
	for _, seg := range w.terrain {
		ids[seg.ID] = true
	}

	for _, z := range []float64{101, 99, 102, 98, 103} {
		w.recycleTerrain(z, cfg)
	}

	for _, seg := range w.terrain {
		if seg.Z >= 100-cfg.Behind && !ids[seg.ID] && seg.Z < 100 {
			t.Errorf("segment at %f was recreated during oscillation", seg.Z)
		}
	}
}

func TestEvictDropsOnlyBehind(t *testing.T) {
	w := newWorld()
	w.spawnObstacle(10, core.LaneLeft)
	behind := w.spawnObstacle(-20, core.LaneCenter)
	w.spawnGem(30, core.LaneRight)
	w.spawnGem(-16, core.LaneLeft)

	w.evict(0, 15)

	if len(w.obstacles) != 1 || w.obstacles[0].ID == behind.ID {
		t.Errorf("obstacles after evict: %+v", w.obstacles)
	}
	if len(w.gems) != 1 || w.gems[0].Z != 30 {
		t.Errorf("gems after evict: %+v", w.gems)
	}
}

func TestIDsMonotonicAcrossReset(t *testing.T) {
	w := newWorld()
	a := w.spawnObstacle(1, core.LaneCenter)
	b := w.spawnGem(2, core.LaneLeft)
	if b.ID <= a.ID {
		t.Errorf("ids not monotonic: %d then %d", a.ID, b.ID)
	}

	w.reset()
	c := w.spawnObstacle(3, core.LaneRight)
	if c.ID <= b.ID {
		t.Errorf("id %d reused after reset (previous max %d)", c.ID, b.ID)
	}
}

func TestRemoveGemKeepsOthers(t *testing.T) {
	w := newWorld()
	w.spawnGem(1, core.LaneLeft)
	target := w.spawnGem(2, core.LaneCenter)
	w.spawnGem(3, core.LaneRight)

	w.removeGem(target.ID)

	if len(w.gems) != 2 {
		t.Fatalf("len(gems) = %d, expected 2", len(w.gems))
	}
	for _, g := range w.gems {
		if g.ID == target.ID {
			t.Error("removed gem still present")
		}
	}
}

func TestHitObstacleRespectsLanes(t *testing.T) {
	w := newWorld()
	cfg := config.DefaultRunnerConfig()
	w.spawnObstacle(0, core.LaneLeft)

	center := core.BoxAt(core.Vec3{X: 0, Y: 0.9, Z: 0}, 1.6, 1.8, 1.6)
	if w.hitObstacle(center, cfg.Player.LaneOffset, cfg.Obstacles) {
		t.Error("center-lane player reported hitting a left-lane obstacle")
	}

	left := core.BoxAt(core.Vec3{X: core.LaneLeft.Offset(cfg.Player.LaneOffset), Y: 0.9, Z: 0}, 1.6, 1.8, 1.6)
	if !w.hitObstacle(left, cfg.Player.LaneOffset, cfg.Obstacles) {
		t.Error("left-lane player did not hit the left-lane obstacle")
	}
}

func TestHitGemVerticalWindow(t *testing.T) {
	w := newWorld()
	cfg := config.DefaultRunnerConfig()
	w.spawnGem(0, core.LaneCenter)

	grounded := core.BoxAt(core.Vec3{X: 0, Y: 0.9, Z: 0}, 1.6, 1.8, 1.6)
	if _, ok := w.hitGem(grounded, cfg.Player.LaneOffset, cfg.Gems); !ok {
		t.Error("grounded player should reach a hovering gem")
	}

	// At the top of a jump the player box sits far above the gem.
	airborne := core.BoxAt(core.Vec3{X: 0, Y: 3 + 0.9, Z: 0}, 1.6, 1.8, 1.6)
	if _, ok := w.hitGem(airborne, cfg.Player.LaneOffset, cfg.Gems); ok {
		t.Error("player at jump peak should fly over the gem")
	}
}

func TestSpawnDecorationPicksWalls(t *testing.T) {
	w := newWorld()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		w.spawnDecoration(float64(i), rng)
	}

	sides := map[int]int{}
	for _, d := range w.decorations {
		sides[d.Side]++
	}
	if sides[-1] == 0 || sides[1] == 0 {
		t.Errorf("decorations landed on one wall only: %v", sides)
	}
	if sides[-1]+sides[1] != 50 {
		t.Errorf("unexpected side values: %v", sides)
	}
}

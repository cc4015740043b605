package runner

import (
	"math/rand"

	"github.com/vovakirdan/gesture-runner/internal/config"
	"github.com/vovakirdan/gesture-runner/internal/core"
)

// ID identifies an entity. Ids are assigned monotonically and never
// reused within a session, so the presentation layer can rely on them
// being stable across frames for the same logical entity.
type ID int64

// Obstacle blocks a lane; hitting one while vulnerable ends the run.
type Obstacle struct {
	ID   ID
	Lane core.Lane
	Z    float64
}

// Gem is a collectible that grants temporary invulnerability.
type Gem struct {
	ID   ID
	Lane core.Lane
	Z    float64
}

// TerrainSegment is one tile of the recycled floor.
type TerrainSegment struct {
	ID ID
	Z  float64
}

// Decoration is an ambient wall element with no gameplay effect.
type Decoration struct {
	ID   ID
	Z    float64
	Side int // -1 left wall, +1 right wall
}

// world owns every entity collection and the id counter. Entities are
// never mutated after creation; they only ever get evicted.
type world struct {
	nextID      ID
	obstacles   []Obstacle
	gems        []Gem
	terrain     []TerrainSegment
	decorations []Decoration
}

func newWorld() *world {
	return &world{
		nextID:      1,
		obstacles:   make([]Obstacle, 0, 32),
		gems:        make([]Gem, 0, 16),
		terrain:     make([]TerrainSegment, 0, 16),
		decorations: make([]Decoration, 0, 64),
	}
}

func (w *world) allocID() ID {
	id := w.nextID
	w.nextID++
	return id
}

// reset empties all collections for a new run. The id counter keeps
// counting: ids stay unique for the whole session.
func (w *world) reset() {
	w.obstacles = w.obstacles[:0]
	w.gems = w.gems[:0]
	w.terrain = w.terrain[:0]
	w.decorations = w.decorations[:0]
}

func (w *world) spawnObstacle(z float64, lane core.Lane) Obstacle {
	o := Obstacle{ID: w.allocID(), Lane: lane, Z: z}
	w.obstacles = append(w.obstacles, o)
	return o
}

func (w *world) spawnGem(z float64, lane core.Lane) Gem {
	g := Gem{ID: w.allocID(), Lane: lane, Z: z}
	w.gems = append(w.gems, g)
	return g
}

func (w *world) spawnDecoration(z float64, rng *rand.Rand) {
	side := -1
	if rng.Intn(2) == 1 {
		side = 1
	}
	w.decorations = append(w.decorations, Decoration{ID: w.allocID(), Z: z, Side: side})
}

// recycleTerrain keeps floor segments covering the window
// [playerZ-behind, playerZ+ahead] on a segment-length grid, adding
// missing segments at the frontier and dropping segments more than one
// extra segment behind the window. The extra segment is hysteresis so a
// player oscillating around a boundary doesn't thrash segments.
func (w *world) recycleTerrain(playerZ float64, cfg config.TerrainConfig) {
	length := cfg.SegmentLength
	if length <= 0 {
		return
	}

	dropBefore := playerZ - cfg.Behind - length
	keep := w.terrain[:0]
	for _, seg := range w.terrain {
		if seg.Z+length > dropBefore {
			keep = append(keep, seg)
		}
	}
	w.terrain = keep

	var frontier float64
	if len(w.terrain) == 0 {
		// Snap the first segment to the grid at the back of the window.
		frontier = gridFloor(playerZ-cfg.Behind, length)
	} else {
		frontier = w.terrain[len(w.terrain)-1].Z + length
	}

	for frontier < playerZ+cfg.Ahead {
		w.terrain = append(w.terrain, TerrainSegment{ID: w.allocID(), Z: frontier})
		frontier += length
	}
}

func gridFloor(z, length float64) float64 {
	n := int(z / length)
	snapped := float64(n) * length
	if snapped > z {
		snapped -= length
	}
	return snapped
}

// evict drops obstacles, gems and decorations that have fallen more
// than evictBehind units behind the player.
func (w *world) evict(playerZ, evictBehind float64) {
	cutoff := playerZ - evictBehind

	obstacles := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.Z > cutoff {
			obstacles = append(obstacles, o)
		}
	}
	w.obstacles = obstacles

	gems := w.gems[:0]
	for _, g := range w.gems {
		if g.Z > cutoff {
			gems = append(gems, g)
		}
	}
	w.gems = gems

	decorations := w.decorations[:0]
	for _, d := range w.decorations {
		if d.Z > cutoff {
			decorations = append(decorations, d)
		}
	}
	w.decorations = decorations
}

// hitGem returns the first gem whose box intersects the player box.
func (w *world) hitGem(playerBox core.Box3, laneOffset float64, cfg config.GemConfig) (Gem, bool) {
	for _, g := range w.gems {
		center := core.Vec3{X: g.Lane.Offset(laneOffset), Y: cfg.HoverHeight, Z: g.Z}
		if playerBox.Intersects(core.BoxAt(center, cfg.Size, cfg.Size, cfg.Size)) {
			return g, true
		}
	}
	return Gem{}, false
}

// removeGem evicts a consumed gem by id.
func (w *world) removeGem(id ID) {
	for i, g := range w.gems {
		if g.ID == id {
			w.gems = append(w.gems[:i], w.gems[i+1:]...)
			return
		}
	}
}

// hitObstacle reports whether any obstacle box intersects the player box.
func (w *world) hitObstacle(playerBox core.Box3, laneOffset float64, cfg config.ObstacleConfig) bool {
	for _, o := range w.obstacles {
		center := core.Vec3{X: o.Lane.Offset(laneOffset), Y: cfg.Height / 2, Z: o.Z}
		if playerBox.Intersects(core.BoxAt(center, cfg.Width, cfg.Height, cfg.Depth)) {
			return true
		}
	}
	return false
}

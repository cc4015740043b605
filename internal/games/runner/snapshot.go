package runner

import "github.com/vovakirdan/gesture-runner/internal/core"

// PlayerView is the player's transform as seen by the renderer.
type PlayerView struct {
	X, Y, Z      float64
	Lane         core.Lane
	Jumping      bool
	Invulnerable bool
}

// EntityView is one entity as seen by the renderer. Ids are stable
// across frames for the same logical entity; the renderer must drop
// visuals for ids that disappear from the snapshot.
type EntityView struct {
	ID   ID
	Lane core.Lane
	Z    float64
	Side int // decorations only
}

// Snapshot is the read-only per-frame view handed to the presentation
// layer. Slices are freshly allocated; the renderer may keep them.
type Snapshot struct {
	Player      PlayerView
	Obstacles   []EntityView
	Gems        []EntityView
	Terrain     []EntityView
	Decorations []EntityView
	Score       int
	GameOver    bool
}

// Snapshot captures the current frame for rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Player: PlayerView{
			X:            g.player.X,
			Y:            g.player.Y,
			Z:            g.player.Z,
			Lane:         g.player.Lane,
			Jumping:      g.player.Jumping,
			Invulnerable: g.player.Invulnerable,
		},
		Obstacles:   make([]EntityView, 0, len(g.world.obstacles)),
		Gems:        make([]EntityView, 0, len(g.world.gems)),
		Terrain:     make([]EntityView, 0, len(g.world.terrain)),
		Decorations: make([]EntityView, 0, len(g.world.decorations)),
		Score:       int(g.score),
		GameOver:    g.gameOver,
	}

	for _, o := range g.world.obstacles {
		s.Obstacles = append(s.Obstacles, EntityView{ID: o.ID, Lane: o.Lane, Z: o.Z})
	}
	for _, gem := range g.world.gems {
		s.Gems = append(s.Gems, EntityView{ID: gem.ID, Lane: gem.Lane, Z: gem.Z})
	}
	for _, seg := range g.world.terrain {
		s.Terrain = append(s.Terrain, EntityView{ID: seg.ID, Z: seg.Z})
	}
	for _, d := range g.world.decorations {
		s.Decorations = append(s.Decorations, EntityView{ID: d.ID, Z: d.Z, Side: d.Side})
	}

	return s
}

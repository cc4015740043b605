// Package config provides YAML-based game configuration loading and
// difficulty scaling for the runner.
package config

// Range is a tunable constant expressed as its value at minimum
// difficulty (from) and at maximum difficulty (to). From may be larger
// than To for constants that shrink as the game gets harder.
type Range struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// At interpolates the range at the given difficulty level in [0, 1].
func (r Range) At(level float64) float64 {
	return r.From + level*(r.To-r.From)
}

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Jump       JumpConfig       `yaml:"jump"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Gems       GemConfig        `yaml:"gems"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines player movement and collision parameters.
type PlayerConfig struct {
	// Speed is the forward speed in world units per frame, tuned for a
	// 60 FPS simulation; the controller rescales it by the actual
	// normalized delta.
	Speed        Range   `yaml:"speed"`
	LaneOffset   float64 `yaml:"lane_offset"`    // X distance between adjacent lanes
	LaneEaseRate float64 `yaml:"lane_ease_rate"` // exponential easing rate for visual X
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Depth        float64 `yaml:"depth"`
}

// JumpConfig defines the half-sine jump arc.
type JumpConfig struct {
	Height   float64 `yaml:"height"`   // peak height in world units
	Duration Range   `yaml:"duration"` // seconds of game time, start to landing
}

// ObstacleConfig defines obstacle spawning and collision parameters.
type ObstacleConfig struct {
	Interval      Range   `yaml:"interval"`       // seconds of game time between spawns
	SpawnDistance float64 `yaml:"spawn_distance"` // spawned this far ahead of the player
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Depth         float64 `yaml:"depth"`
}

// GemConfig defines collectibles and the invulnerability they grant.
type GemConfig struct {
	// Chance that a gem spawns alongside an obstacle. Gems only ever
	// spawn together with an obstacle.
	Chance          Range   `yaml:"chance"`
	Invulnerability Range   `yaml:"invulnerability"` // seconds of game time
	Bonus           int     `yaml:"bonus"`           // score awarded on pickup
	Size            float64 `yaml:"size"`            // collision cube edge
	HoverHeight     float64 `yaml:"hover_height"`    // Y of the gem center
}

// TerrainConfig sizes the recycled terrain and decoration window.
type TerrainConfig struct {
	SegmentLength float64 `yaml:"segment_length"`
	Ahead         float64 `yaml:"ahead"`          // keep segments this far ahead of the player
	Behind        float64 `yaml:"behind"`         // and this far behind
	DecorInterval float64 `yaml:"decor_interval"` // seconds between ambient wall decorations
	EvictBehind   float64 `yaml:"evict_behind"`   // obstacles/gems/decor dropped this far behind
}

// ScoringConfig defines score accrual.
type ScoringConfig struct {
	DistanceRate Range `yaml:"distance_rate"` // points per world unit traveled
}

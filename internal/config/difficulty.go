package config

import "math"

// DifficultyConfig defines the score-driven difficulty curve: a smooth
// sigmoid from 0 to 1 centered at score_midpoint.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	ScoreMidpoint float64 `yaml:"score_midpoint"` // score at which the curve crosses 0.5
	Steepness     float64 `yaml:"steepness"`      // higher is a sharper ramp around the midpoint
}

// Level returns the difficulty level in (0, 1) for the given score.
// Pure function: nothing here ever mutates shared configuration.
func (d DifficultyConfig) Level(score float64) float64 {
	if !d.Enabled {
		return 0
	}

	mid := d.ScoreMidpoint
	if mid <= 0 {
		mid = 1
	}
	k := d.Steepness
	if k <= 0 {
		k = 4
	}

	return 1 / (1 + math.Exp(-k*(score-mid)/mid))
}

// Tuning is an immutable snapshot of every difficulty-scaled constant at
// one difficulty level. The controller asks for a fresh snapshot each
// frame and reads only the snapshot, never the ranges.
type Tuning struct {
	Level float64

	PlayerSpeed      float64
	ObstacleInterval float64
	GemChance        float64
	Invulnerability  float64
	JumpDuration     float64
	ScoreRate        float64
}

// Tuning computes the difficulty snapshot for the given score.
func (c RunnerConfig) Tuning(score float64) Tuning {
	level := c.Difficulty.Level(score)
	return Tuning{
		Level:            level,
		PlayerSpeed:      c.Player.Speed.At(level),
		ObstacleInterval: c.Obstacles.Interval.At(level),
		GemChance:        c.Gems.Chance.At(level),
		Invulnerability:  c.Gems.Invulnerability.At(level),
		JumpDuration:     c.Jump.Duration.At(level),
		ScoreRate:        c.Scoring.DistanceRate.At(level),
	}
}

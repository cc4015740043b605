package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default configuration, used
// as the last-resort fallback if even the embedded YAML fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Player: PlayerConfig{
			Speed:        Range{From: 0.3, To: 0.7},
			LaneOffset:   2.0,
			LaneEaseRate: 10.0,
			Width:        1.6,
			Height:       1.8,
			Depth:        1.6,
		},
		Jump: JumpConfig{
			Height:   3.0,
			Duration: Range{From: 0.9, To: 0.7},
		},
		Obstacles: ObstacleConfig{
			Interval:      Range{From: 1.2, To: 0.5},
			SpawnDistance: 60.0,
			Width:         1.8,
			Height:        2.0,
			Depth:         1.5,
		},
		Gems: GemConfig{
			Chance:          Range{From: 0.25, To: 0.12},
			Invulnerability: Range{From: 3.0, To: 1.5},
			Bonus:           50,
			Size:            1.0,
			HoverHeight:     1.0,
		},
		Terrain: TerrainConfig{
			SegmentLength: 10.0,
			Ahead:         80.0,
			Behind:        20.0,
			DecorInterval: 0.4,
			EvictBehind:   15.0,
		},
		Scoring: ScoringConfig{
			DistanceRate: Range{From: 1.0, To: 2.0},
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			ScoreMidpoint: 1500,
			Steepness:     4,
		},
	}
}

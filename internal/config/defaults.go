package config

import (
	_ "embed"
)

//go:embed defaults/wezzle.yaml
var defaultWezzleYAML []byte

// DefaultWezzleConfig returns the hardcoded Wezzle configuration.
// It mirrors defaults/wezzle.yaml and is used when the embedded file fails to parse.
func DefaultWezzleConfig() WezzleConfig {
	return WezzleConfig{
		Board: BoardConfig{
			Columns:           8,
			Rows:              10,
			Colors:            5,
			InitialRows:       3,
			VerticalGravity:   "down",
			HorizontalGravity: "left",
		},
		Refactor: RefactorConfig{
			Speed:  SpeedNormal,
			Slower: SpeedConfig{Horizontal: 30, Vertical: 40, Gravity: 2, Acceleration: 2},
			Slow:   SpeedConfig{Horizontal: 60, Vertical: 80, Gravity: 4, Acceleration: 4},
			Normal: SpeedConfig{Horizontal: 100, Vertical: 120, Gravity: 8, Acceleration: 6},
			Fast:   SpeedConfig{Horizontal: 160, Vertical: 200, Gravity: 14, Acceleration: 10},
			Shift:  SpeedConfig{Horizontal: 250, Vertical: 300, Gravity: 25, Acceleration: 20},
		},
		Drop: DropConfig{
			ParallelMax:      4,
			BaseAmount:       4,
			PerLevel:         1,
			MaxAmount:        12,
			CorrectionPasses: 64,
		},
		Items: ItemsConfig{
			Enabled:        true,
			MaxItems:       2,
			MaxMultipliers: 2,
			Weights: ItemWeights{
				Rocket: 4,
				Bomb:   3,
				Star:   1,
				X2:     4,
				X3:     2,
				X4:     1,
			},
		},
		Scoring: ScoringConfig{
			PointsPerTile:  10,
			PointsPerLine:  50,
			PointsPerPiece: 1,
			LevelBonus:     100,
		},
		Progression: ProgressionConfig{
			Enabled:       true,
			StartLevel:    1,
			LinesPerLevel: 6,
		},
		Animation: AnimationConfig{
			ZoomTicks:     12,
			ShowTicks:     30,
			GameOverTicks: 90,
		},
	}
}

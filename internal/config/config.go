// Package config provides YAML-based configuration loading and level
// progression for Wezzle.
package config

import (
	"errors"
	"fmt"
)

// WezzleConfig contains all tunable parameters of a Wezzle session.
type WezzleConfig struct {
	Board       BoardConfig       `yaml:"board"`
	Refactor    RefactorConfig    `yaml:"refactor"`
	Drop        DropConfig        `yaml:"drop"`
	Items       ItemsConfig       `yaml:"items"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Progression ProgressionConfig `yaml:"progression"`
	Animation   AnimationConfig   `yaml:"animation"`
}

// BoardConfig defines the board geometry and gravity.
type BoardConfig struct {
	Columns           int    `yaml:"columns"`
	Rows              int    `yaml:"rows"`
	Colors            int    `yaml:"colors"`             // Number of tile colors in play
	InitialRows       int    `yaml:"initial_rows"`       // Rows dropped before the first move
	VerticalGravity   string `yaml:"vertical_gravity"`   // "down" or "up"
	HorizontalGravity string `yaml:"horizontal_gravity"` // "left", "right" or "none"
}

// SpeedConfig is one refactor speed profile.
// Velocities are in thousandths of a cell per tick.
type SpeedConfig struct {
	Horizontal   int `yaml:"horizontal"`
	Vertical     int `yaml:"vertical"`
	Gravity      int `yaml:"gravity"`
	Acceleration int `yaml:"acceleration"`
}

// RefactorConfig holds the named speed profiles and the one in use.
type RefactorConfig struct {
	Speed  string      `yaml:"speed"` // slower, slow, normal or fast
	Slower SpeedConfig `yaml:"slower"`
	Slow   SpeedConfig `yaml:"slow"`
	Normal SpeedConfig `yaml:"normal"`
	Fast   SpeedConfig `yaml:"fast"`
	Shift  SpeedConfig `yaml:"shift"`
}

// DropConfig controls the tile dropper.
type DropConfig struct {
	ParallelMax      int `yaml:"parallel_max"`      // Tiles dropped at once
	BaseAmount       int `yaml:"base_amount"`       // Tiles dropped per move at level 1
	PerLevel         int `yaml:"per_level"`         // Extra tiles per level
	MaxAmount        int `yaml:"max_amount"`        // Upper bound per move
	CorrectionPasses int `yaml:"correction_passes"` // Anti-match recolor pass cap
}

// ItemWeights are the relative odds of each special tile.
type ItemWeights struct {
	Rocket int `yaml:"rocket"`
	Bomb   int `yaml:"bomb"`
	Star   int `yaml:"star"`
	X2     int `yaml:"x2"`
	X3     int `yaml:"x3"`
	X4     int `yaml:"x4"`
}

// ItemsConfig controls special tiles.
type ItemsConfig struct {
	Enabled        bool        `yaml:"enabled"`
	MaxItems       int         `yaml:"max_items"`
	MaxMultipliers int         `yaml:"max_multipliers"`
	Weights        ItemWeights `yaml:"weights"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	PointsPerTile  int `yaml:"points_per_tile"`  // Per tile cleared by a line
	PointsPerLine  int `yaml:"points_per_line"`  // Per line found
	PointsPerPiece int `yaml:"points_per_piece"` // Per tile removed by a piece
	LevelBonus     int `yaml:"level_bonus"`      // Awarded on level up, times the new level
}

// ProgressionConfig defines how levels advance.
type ProgressionConfig struct {
	Enabled       bool `yaml:"enabled"`
	StartLevel    int  `yaml:"start_level"`
	LinesPerLevel int  `yaml:"lines_per_level"`
}

// AnimationConfig holds tick counts for timed effects.
type AnimationConfig struct {
	ZoomTicks     int `yaml:"zoom_ticks"`      // Tile zoom in/out duration
	ShowTicks     int `yaml:"show_ticks"`      // Board reveal at game start
	GameOverTicks int `yaml:"game_over_ticks"` // Game over sequence duration
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Speed profile names.
const (
	SpeedSlower = "slower"
	SpeedSlow   = "slow"
	SpeedNormal = "normal"
	SpeedFast   = "fast"
	SpeedShift  = "shift"
)

// ParseDifficulty converts a flag value into a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

// ApplyWezzlePreset modifies the config based on a difficulty preset.
func ApplyWezzlePreset(cfg *WezzleConfig, preset DifficultyPreset) {
	cfg.Progression.Enabled = preset != DifficultyFixed

	switch preset {
	case DifficultyEasy:
		cfg.Refactor.Speed = SpeedSlow
		cfg.Board.Colors = 4
	case DifficultyHard:
		cfg.Refactor.Speed = SpeedFast
		cfg.Board.Colors = 6
		cfg.Drop.BaseAmount++
	default:
		cfg.Refactor.Speed = SpeedNormal
	}
}

// ApplyTutorial turns cfg into the gentle tutorial variant: slowest
// refactor speed, four colors, no special tiles and a fixed level.
func ApplyTutorial(cfg *WezzleConfig) {
	cfg.Refactor.Speed = SpeedSlower
	cfg.Board.Colors = 4
	cfg.Items.Enabled = false
	cfg.Progression.Enabled = false
	cfg.Progression.StartLevel = 1
}

// MaxColors is the size of the tile palette.
const MaxColors = 7

// Validate reports configuration values the engine cannot run with.
func (c WezzleConfig) Validate() error {
	var errs []error
	if c.Board.Columns < 3 || c.Board.Rows < 3 {
		errs = append(errs, fmt.Errorf("board must be at least 3x3, got %dx%d", c.Board.Columns, c.Board.Rows))
	}
	if c.Board.Colors < 2 || c.Board.Colors > MaxColors {
		errs = append(errs, fmt.Errorf("colors must be in [2, %d], got %d", MaxColors, c.Board.Colors))
	}
	if c.Board.InitialRows < 0 || c.Board.InitialRows > c.Board.Rows {
		errs = append(errs, fmt.Errorf("initial_rows must be in [0, rows], got %d", c.Board.InitialRows))
	}
	switch c.Board.VerticalGravity {
	case "down", "up":
	default:
		errs = append(errs, fmt.Errorf("vertical_gravity must be down or up, got %q", c.Board.VerticalGravity))
	}
	switch c.Board.HorizontalGravity {
	case "left", "right", "none":
	default:
		errs = append(errs, fmt.Errorf("horizontal_gravity must be left, right or none, got %q", c.Board.HorizontalGravity))
	}
	switch c.Refactor.Speed {
	case SpeedSlower, SpeedSlow, SpeedNormal, SpeedFast:
	default:
		errs = append(errs, fmt.Errorf("unknown refactor speed %q", c.Refactor.Speed))
	}
	if c.Drop.ParallelMax < 1 {
		errs = append(errs, fmt.Errorf("parallel_max must be positive, got %d", c.Drop.ParallelMax))
	}
	if c.Drop.CorrectionPasses < 1 {
		errs = append(errs, fmt.Errorf("correction_passes must be positive, got %d", c.Drop.CorrectionPasses))
	}
	if c.Progression.LinesPerLevel < 1 {
		errs = append(errs, fmt.Errorf("lines_per_level must be positive, got %d", c.Progression.LinesPerLevel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid wezzle config: %w", errors.Join(errs...))
	}
	return nil
}

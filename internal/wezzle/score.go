package wezzle

import "github.com/vovakirdan/tui-wezzle/internal/config"

// ScoreManager keeps score, cleared lines and the level.
type ScoreManager struct {
	cfg   config.ScoringConfig
	diff  *config.DifficultyManager
	score int
	lines int
	level int
}

// NewScoreManager creates a score manager starting at the configured level.
func NewScoreManager(cfg config.ScoringConfig, diff *config.DifficultyManager) *ScoreManager {
	return &ScoreManager{cfg: cfg, diff: diff, level: diff.Level(0)}
}

func (s *ScoreManager) Score() int { return s.score }
func (s *ScoreManager) Lines() int { return s.lines }
func (s *ScoreManager) Level() int { return s.level }

// AddLines scores lines found in one scan and returns the points awarded.
// tiles counts every tile removed, mult is the product of cleared
// multiplier tiles and cascade is the scan's depth in a chain.
func (s *ScoreManager) AddLines(lines, tiles, mult, cascade int) int {
	points := (tiles*s.cfg.PointsPerTile + lines*s.cfg.PointsPerLine) * max(mult, 1) * max(cascade, 1)
	s.score += points
	s.lines += lines
	return points
}

// AddPiece scores tiles removed directly by a piece.
func (s *ScoreManager) AddPiece(tiles int) int {
	points := tiles * s.cfg.PointsPerPiece
	s.score += points
	return points
}

// CheckLevelUp advances the level if enough lines were cleared and
// returns true when it did.
func (s *ScoreManager) CheckLevelUp() bool {
	next := s.diff.Level(s.lines)
	if next <= s.level {
		return false
	}
	s.level = next
	s.score += s.cfg.LevelBonus * next
	return true
}

// LinesToNext returns the lines missing to the next level.
func (s *ScoreManager) LinesToNext() int {
	return s.diff.LinesToNext(s.lines)
}

// DropAmount returns the number of tiles dropped after each move.
func (s *ScoreManager) DropAmount() int {
	return s.diff.DropAmount(s.level)
}

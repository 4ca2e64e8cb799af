package config

// DifficultyManager derives the level and per-move drop amount from the
// number of lines cleared.
type DifficultyManager struct {
	prog ProgressionConfig
	drop DropConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(prog ProgressionConfig, drop DropConfig) *DifficultyManager {
	if prog.StartLevel < 1 {
		prog.StartLevel = 1
	}
	if prog.LinesPerLevel < 1 {
		prog.LinesPerLevel = 1
	}
	return &DifficultyManager{prog: prog, drop: drop}
}

// SetStartLevel overrides the level a session begins at.
func (d *DifficultyManager) SetStartLevel(level int) {
	d.prog.StartLevel = max(level, 1)
}

// SetEnabled enables or disables level progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.prog.Enabled = enabled
}

// IsEnabled returns whether level progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.prog.Enabled
}

// Level returns the level reached after clearing the given number of lines.
func (d *DifficultyManager) Level(lines int) int {
	if !d.prog.Enabled || lines <= 0 {
		return d.prog.StartLevel
	}
	return d.prog.StartLevel + lines/d.prog.LinesPerLevel
}

// LinesToNext returns how many more lines reach the next level, 0 when fixed.
func (d *DifficultyManager) LinesToNext(lines int) int {
	if !d.prog.Enabled {
		return 0
	}
	lines = max(lines, 0)
	return d.prog.LinesPerLevel - lines%d.prog.LinesPerLevel
}

// DropAmount returns the number of tiles dropped after each move at level.
func (d *DifficultyManager) DropAmount(level int) int {
	n := d.drop.BaseAmount + (max(level, 1)-1)*d.drop.PerLevel
	if d.drop.MaxAmount > 0 {
		n = min(n, d.drop.MaxAmount)
	}
	return max(n, 0)
}

package wezzle

import "github.com/vovakirdan/tui-wezzle/internal/config"

// RefactorSpeed is the motion profile of a refactor: initial velocities
// for each phase and their per-tick acceleration, in thousandths of a cell.
type RefactorSpeed struct {
	Horizontal   int
	Vertical     int
	Gravity      int // vertical acceleration
	Acceleration int // horizontal acceleration
}

// RefactorSpeeds are the named profiles of one session.
type RefactorSpeeds struct {
	Slower RefactorSpeed
	Slow   RefactorSpeed
	Normal RefactorSpeed
	Fast   RefactorSpeed
	Shift  RefactorSpeed // used after an item blast
}

func speedFromConfig(c config.SpeedConfig) RefactorSpeed {
	return RefactorSpeed{
		Horizontal:   c.Horizontal,
		Vertical:     c.Vertical,
		Gravity:      c.Gravity,
		Acceleration: c.Acceleration,
	}
}

// NewRefactorSpeeds builds the profiles from the loaded configuration.
func NewRefactorSpeeds(cfg config.RefactorConfig) RefactorSpeeds {
	return RefactorSpeeds{
		Slower: speedFromConfig(cfg.Slower),
		Slow:   speedFromConfig(cfg.Slow),
		Normal: speedFromConfig(cfg.Normal),
		Fast:   speedFromConfig(cfg.Fast),
		Shift:  speedFromConfig(cfg.Shift),
	}
}

// Named returns the profile called name, NORMAL when unknown.
func (s RefactorSpeeds) Named(name string) RefactorSpeed {
	switch name {
	case config.SpeedSlower:
		return s.Slower
	case config.SpeedSlow:
		return s.Slow
	case config.SpeedFast:
		return s.Fast
	case config.SpeedShift:
		return s.Shift
	default:
		return s.Normal
	}
}

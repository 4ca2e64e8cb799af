package wezzle

// RefactorState is the phase of a board refactor.
type RefactorState int

const (
	RefactorIdle RefactorState = iota
	RefactorPending
	RefactorVertical
	RefactorHorizontal
)

func (s RefactorState) String() string {
	switch s {
	case RefactorIdle:
		return "idle"
	case RefactorPending:
		return "pending"
	case RefactorVertical:
		return "vertical"
	case RefactorHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Refactorer settles the board under gravity in two animated phases:
// every column compacts vertically, then empty columns close horizontally.
// The horizontal phase never starts before the vertical one has finished.
type Refactorer struct {
	state    RefactorState
	finished bool
	queued   bool

	speed  RefactorSpeed // profile used by the next cycle
	active RefactorSpeed // profile of the running cycle
	anims  []Animation
}

// NewRefactorer creates an idle refactorer.
func NewRefactorer(speed RefactorSpeed) *Refactorer {
	return &Refactorer{speed: speed}
}

// StartRefactor requests a refactor. Idempotent while one is pending; a
// request during a running cycle starts another cycle right after it, and
// each of the two cycles reports its own completion.
func (r *Refactorer) StartRefactor() {
	switch r.state {
	case RefactorIdle:
		r.state = RefactorPending
	case RefactorVertical, RefactorHorizontal:
		r.queued = true
	}
}

// UpdateLogic advances the refactor by one tick. The finished flag is set
// only for the tick in which the horizontal phase completes.
func (r *Refactorer) UpdateLogic(s Session, hub *Hub) {
	if s == nil || hub == nil {
		panic("refactorer: UpdateLogic needs a session and a hub")
	}
	r.finished = false

	switch r.state {
	case RefactorPending:
		r.active = r.speed
		r.anims = hub.Board.StartVerticalShift(r.active.Vertical, r.active.Gravity)
		hub.Animations.AddAll(r.anims)
		r.state = RefactorVertical
		hub.Logger.Debug("refactor vertical", "moves", len(r.anims))

	case RefactorVertical:
		if !allFinished(r.anims) {
			return
		}
		hub.Board.Synchronize()
		r.anims = hub.Board.StartHorizontalShift(r.active.Horizontal, r.active.Acceleration)
		hub.Animations.AddAll(r.anims)
		r.state = RefactorHorizontal
		hub.Logger.Debug("refactor horizontal", "moves", len(r.anims))

	case RefactorHorizontal:
		if !allFinished(r.anims) {
			return
		}
		hub.Board.Synchronize()
		r.anims = nil
		r.finished = true
		hub.Pieces.NotifyRefactored(hub.Board)
		if r.queued {
			r.queued = false
			r.state = RefactorPending
			hub.Logger.Debug("refactor finished, rerun queued")
			return
		}
		r.state = RefactorIdle
		hub.Logger.Debug("refactor finished")
	}
}

// IsRefactoring reports whether a refactor is pending or running.
func (r *Refactorer) IsRefactoring() bool {
	return r.state != RefactorIdle
}

// IsFinished reports whether a refactor cycle completed during the last
// UpdateLogic. A queued rerun may already be pending when it does.
func (r *Refactorer) IsFinished() bool {
	return r.finished
}

// State returns the current phase.
func (r *Refactorer) State() RefactorState {
	return r.state
}

// SetRefactorSpeed swaps the speed profile. It applies from the next
// vertical shift on.
func (r *Refactorer) SetRefactorSpeed(speed RefactorSpeed) {
	r.speed = speed
}

// RefactorSpeed returns the profile the next cycle will use.
func (r *Refactorer) RefactorSpeed() RefactorSpeed {
	return r.speed
}

// ResetState returns to idle with the given speed profile.
func (r *Refactorer) ResetState(speed RefactorSpeed) {
	*r = Refactorer{speed: speed}
}

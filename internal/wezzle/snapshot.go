package wezzle

import (
	"hash/fnv"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateShowing     GameStateType = "showing"
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StateEnding      GameStateType = "ending"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Score      int
	Level      int
	Lines      int
	Moves      int
	Board      string
	BoardHash  uint64
	Refactor   RefactorState
	Dropping   bool
	DropAmount int
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.gameOverStart:
		state = StateEnding
	case g.paused:
		state = StatePaused
	case g.showTicks > 0:
		state = StateShowing
	case g.resolving || g.IsTileManipulating():
		state = StateResolving
	}

	board := g.hub.Board.String()
	h := fnv.New64a()
	h.Write([]byte(board))

	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Score:      g.hub.Score.Score(),
		Level:      g.hub.Score.Level(),
		Lines:      g.hub.Score.Lines(),
		Moves:      g.moves,
		Board:      board,
		BoardHash:  h.Sum64(),
		Refactor:   g.hub.Refactorer.State(),
		Dropping:   g.hub.Dropper.IsTileDropping(),
		DropAmount: g.hub.Dropper.DropAmount(),
		State:      state,
	}
}

package wezzle

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wezzle/internal/config"
)

// Session is the game context the engine components report to.
type Session interface {
	// IsContextManipulating reports a session-level sequence (board reveal,
	// game over) during which tiles must not be dropped.
	IsContextManipulating() bool

	// StartGameOver begins the game-over sequence. Idempotent.
	StartGameOver()
}

// Hub wires together the components of one game session.
type Hub struct {
	Board      *Board
	Animations *AnimationManager
	Items      *ItemManager
	Pieces     *PieceManager
	Refactorer *Refactorer
	Dropper    *TileDropper
	Remover    *TileRemover
	Score      *ScoreManager
	Speeds     RefactorSpeeds
	Sound      SoundPlayer
	Logger     *log.Logger
	RNG        *rand.Rand
}

// NewHub builds all session components from cfg. Every random decision
// draws from rng, so a seed fully determines a session.
func NewHub(cfg config.WezzleConfig, rng *rand.Rand, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := cfg.Board
	speeds := NewRefactorSpeeds(cfg.Refactor)
	diff := config.NewDifficultyManager(cfg.Progression, cfg.Drop)

	board := NewBoard(b.Columns, b.Rows, b.Colors, ParseGravity(b.VerticalGravity, b.HorizontalGravity), rng)
	return &Hub{
		Board:      board,
		Animations: NewAnimationManager(),
		Items:      NewItemManager(cfg.Items, rng),
		Pieces:     NewPieceManager(board, rng),
		Refactorer: NewRefactorer(speeds.Named(cfg.Refactor.Speed)),
		Dropper:    NewTileDropper(cfg.Drop, cfg.Animation.ZoomTicks),
		Remover:    NewTileRemover(cfg.Animation.ZoomTicks),
		Score:      NewScoreManager(cfg.Scoring, diff),
		Speeds:     speeds,
		Sound:      NopSound{},
		Logger:     logger,
		RNG:        rng,
	}
}

// IsBusy reports whether any component is manipulating tiles.
func (h *Hub) IsBusy() bool {
	return h.Refactorer.IsRefactoring() || h.Dropper.IsTileDropping() || h.Remover.IsActive()
}

package wezzle

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wezzle/internal/config"
	"github.com/vovakirdan/tui-wezzle/internal/core"
	"github.com/vovakirdan/tui-wezzle/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "wezzle"
	ModeTutorial Mode = "wezzle_tutorial"
)

// Package-level settings applied on the next Reset, set by the CLI and menus.
var (
	configPath string
	difficulty = config.DifficultyNormal
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom YAML config path ("" uses the search order).
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty selects the difficulty preset of games created afterwards.
func SetDifficulty(p config.DifficultyPreset) {
	difficulty = p
}

// GetDifficulty returns the selected difficulty preset.
func GetDifficulty() config.DifficultyPreset {
	return difficulty
}

// SetLogger sets the logger used by new sessions.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(registry.ModeInfo{
		ID:          string(ModeClassic),
		Title:       "Wezzle",
		Description: "Clear lines of three, survive the drops",
	}, func() registry.Game { return New(ModeClassic) })
	registry.Register(registry.ModeInfo{
		ID:          string(ModeTutorial),
		Title:       "Wezzle (Tutorial)",
		Description: "Slow board, four colors, no items",
	}, func() registry.Game { return New(ModeTutorial) })
}

// Game is one Wezzle session driven by the platform tick loop.
type Game struct {
	mode     Mode
	preset   config.DifficultyPreset
	override *config.WezzleConfig
	cfg      config.WezzleConfig
	hub      *Hub
	sound    SoundPlayer
	tick     uint64
	seed     int64

	screenW int
	screenH int

	moves     int
	resolving bool // a committed move has not settled yet
	paused    bool
	tooSmall  bool

	showTicks     int  // board reveal countdown
	endingTicks   int  // game-over sequence countdown
	gameOverStart bool // sequence running
	gameOver      bool
}

// New creates a game that loads its configuration on Reset.
func New(mode Mode) *Game {
	return &Game{mode: mode, preset: difficulty, sound: NopSound{}}
}

// NewWithConfig creates a game with a fixed configuration. The mode's
// adjustments are still applied.
func NewWithConfig(mode Mode, cfg config.WezzleConfig) *Game {
	g := New(mode)
	g.override = &cfg
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTutorial {
		return "Wezzle (Tutorial)"
	}
	return "Wezzle"
}

// SetDifficulty selects the preset used from the next Reset on. Games
// built with NewWithConfig ignore it.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.preset = p
}

// SetSoundPlayer routes sound effects to p.
func (g *Game) SetSoundPlayer(p SoundPlayer) {
	if p == nil {
		p = NopSound{}
	}
	g.sound = p
	if g.hub != nil {
		g.hub.Sound = p
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.seed = rc.Seed
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0
	g.moves = 0
	g.resolving = false
	g.paused = false
	g.gameOverStart = false
	g.gameOver = false
	g.endingTicks = 0
	g.showTicks = g.cfg.Animation.ShowTicks

	g.hub = NewHub(g.cfg, rand.New(rand.NewSource(rc.Seed)), logger.With("mode", g.mode))
	g.hub.Sound = g.sound
	g.hub.Dropper.SetDropAmount(g.cfg.Board.InitialRows * g.cfg.Board.Columns)
	g.hub.Dropper.StartDrop()
	g.tooSmall = !g.fits()

	g.hub.Logger.Debug("session reset", "seed", rc.Seed, "speed", g.cfg.Refactor.Speed, "colors", g.cfg.Board.Colors)
}

func (g *Game) loadConfig() config.WezzleConfig {
	var cfg config.WezzleConfig
	if g.override != nil {
		cfg = *g.override
	} else {
		loaded, err := config.LoadWezzle(configPath)
		if err != nil {
			logger.Error("config load failed, using defaults", "err", err)
			loaded = config.DefaultWezzleConfig()
		}
		cfg = loaded
		config.ApplyWezzlePreset(&cfg, g.preset)
	}
	if g.mode == ModeTutorial {
		config.ApplyTutorial(&cfg)
	}
	return cfg
}

// Resize adapts to a new terminal size without restarting the session.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.hub != nil {
		g.tooSmall = !g.fits()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	g.updateBoard()
	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	if g.gameOverStart {
		return
	}
	board := g.hub.Board
	pieces := g.hub.Pieces

	switch {
	case in.Has(core.ActionUp):
		pieces.Move(0, -1, board)
	case in.Has(core.ActionDown):
		pieces.Move(0, 1, board)
	case in.Has(core.ActionLeft):
		pieces.Move(-1, 0, board)
	case in.Has(core.ActionRight):
		pieces.Move(1, 0, board)
	}
	if in.Has(core.ActionRotate) {
		pieces.Rotate(board)
	}
	if in.Has(core.ActionCommit) {
		g.Commit()
	}
}

// Ready reports whether the board accepts a commit.
func (g *Game) Ready() bool {
	return g.hub != nil && !g.resolving && !g.tooSmall && !g.paused &&
		!g.IsContextManipulating() && !g.IsTileManipulating()
}

// Commit removes the tiles under the piece and starts resolving the move.
// Returns false if the board is busy or the piece covers no tile.
func (g *Game) Commit() bool {
	if g.hub == nil {
		return false
	}
	if !g.Ready() {
		g.hub.Sound.Play(SoundError)
		return false
	}
	covered := g.hub.Pieces.Covered(g.hub.Board)
	if g.hub.Remover.RemoveTiles(g.hub, covered) == 0 {
		g.hub.Sound.Play(SoundError)
		return false
	}
	g.resolving = true
	g.hub.Dropper.SetDropOnCommit(true)
	g.hub.Sound.Play(SoundClick)
	return true
}

// CommitAt moves the cursor to (col, row) and commits.
func (g *Game) CommitAt(col, row int) bool {
	g.hub.Pieces.MoveTo(col, row, g.hub.Board)
	return g.Commit()
}

// updateBoard runs the engine for one tick: animations first, then the
// remover, refactorer and dropper in that order.
func (g *Game) updateBoard() {
	hub := g.hub
	hub.Animations.Update()

	if g.showTicks > 0 {
		g.showTicks--
	}
	if g.gameOverStart {
		g.endingTicks--
		if g.endingTicks <= 0 {
			g.gameOver = true
		}
		return
	}

	if !g.IsTileManipulating() {
		g.checkLevelUp()
	}

	hub.Remover.UpdateLogic(g, hub)
	hub.Refactorer.UpdateLogic(g, hub)
	// A cycle that finished with a rerun queued leaves the board to settle again.
	if hub.Refactorer.IsFinished() && !hub.Refactorer.IsRefactoring() {
		g.onRefactorFinished()
	}
	hub.Dropper.UpdateLogic(g, hub)
}

// onRefactorFinished decides what follows a settled board: clearing lines,
// continuing a drop, starting the post-move drop or ending the move.
func (g *Game) onRefactorFinished() {
	hub := g.hub
	if hub.Remover.ScanLines(g, hub) {
		return
	}
	if hub.Dropper.IsTileDropping() {
		return
	}
	if hub.Dropper.IsDropOnCommit() {
		hub.Dropper.SetDropOnCommit(false)
		// Lines cleared by this move count toward the drop that follows it.
		g.checkLevelUp()
		if n := hub.Score.DropAmount(); n > 0 {
			hub.Dropper.SetDropAmount(n)
			hub.Dropper.StartDrop()
			return
		}
	}
	if g.resolving {
		g.finishMove()
	}
}

func (g *Game) checkLevelUp() {
	hub := g.hub
	if hub.Score.CheckLevelUp() {
		hub.Sound.Play(SoundLevelUp)
		hub.Logger.Info("level up", "level", hub.Score.Level(), "drop", hub.Score.DropAmount())
	}
}

func (g *Game) finishMove() {
	g.resolving = false
	g.moves++
	g.hub.Pieces.Next()
	g.hub.Pieces.NotifyRefactored(g.hub.Board)
}

// IsContextManipulating reports a board-level sequence: the reveal at
// start or the game-over sequence.
func (g *Game) IsContextManipulating() bool {
	return g.showTicks > 0 || g.gameOverStart
}

// IsTileManipulating reports whether tiles are moving, dropping or vanishing.
func (g *Game) IsTileManipulating() bool {
	return g.hub.IsBusy()
}

// StartGameOver begins the game-over sequence. Calling it again has no effect.
func (g *Game) StartGameOver() {
	if g.gameOverStart {
		return
	}
	g.gameOverStart = true
	g.endingTicks = g.cfg.Animation.GameOverTicks
	g.hub.Sound.Play(SoundGameOver)
	g.hub.Logger.Info("game over", "score", g.hub.Score.Score(), "level", g.hub.Score.Level(), "moves", g.moves)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.hub == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.hub.Score.Score(),
		Level:    g.hub.Score.Level(),
		Lines:    g.hub.Score.Lines(),
		Moves:    g.moves,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Seed returns the seed of the current session.
func (g *Game) Seed() int64 {
	return g.seed
}

// Ticks returns the ticks simulated since Reset.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Board returns the session board.
func (g *Game) Board() *Board {
	return g.hub.Board
}

// DropStats returns the dropper counters of the session.
func (g *Game) DropStats() DropStats {
	return g.hub.Dropper.Stats()
}

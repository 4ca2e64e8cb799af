package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wezzle/internal/core"
	"github.com/vovakirdan/tui-wezzle/internal/registry"
	"github.com/vovakirdan/tui-wezzle/internal/storage"
	"github.com/vovakirdan/tui-wezzle/internal/wezzle"
)

// resizer is implemented by games that adapt to a new terminal size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// soundSink is implemented by games that emit sound effects.
type soundSink interface {
	SetSoundPlayer(p wezzle.SoundPlayer)
}

// replayable is implemented by games whose runs can be replayed from a seed.
type replayable interface {
	Seed() int64
	Ticks() uint64
}

// Bell plays sound effects as the terminal bell. Quiet effects are dropped
// so the bell only rings for events the player should notice.
type Bell struct {
	pending bool
}

// Play implements wezzle.SoundPlayer.
func (b *Bell) Play(s wezzle.Sound) {
	switch s {
	case wezzle.SoundBlast, wezzle.SoundLevelUp, wezzle.SoundGameOver, wezzle.SoundError:
		b.pending = true
	}
}

// take reports whether the bell should ring and clears it.
func (b *Bell) take() bool {
	ring := b.pending
	b.pending = false
	return ring
}

// GameModel is the Bubble Tea model running one game, with back-to-menu
// support for hosted sessions.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	bell       *Bell
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for the current game over
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	bell := &Bell{}
	if s, ok := game.(soundSink); ok {
		s.SetSoundPlayer(bell)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		bell:       bell,
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}
	return m, nil
}

// handleResize keeps the session when the game can adapt, else restarts it.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Best effort: the game goes on without storage.
func (m *GameModel) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
		Lines:  m.gameState.Lines,
		Moves:  m.gameState.Moves,
	}
	if r, ok := m.game.(replayable); ok {
		run.Seed = r.Seed()
		run.Ticks = r.Ticks()
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(run)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".wezzle", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.bell.take() {
		out = "\a" + out
	}
	return out
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program playing the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewGameModel(game, store, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-descent/internal/core"
	"github.com/vovakirdan/tui-descent/internal/storage"
)

// DefaultScreenshotDir is where ctrl+s writes screen dumps.
const DefaultScreenshotDir = "~/.descent/screenshots"

// Options carries the optional collaborators of the game loop.
type Options struct {
	Store         *storage.Store // Run history; nil disables it
	Logger        *log.Logger    // nil discards
	Difficulty    string         // Recorded with each run
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	scene      string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		logger:     logger,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the screen buffer. The game works in normalized
// coordinates so the run is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.trackScene()
	if result.RunEnded {
		m.recordRun(result.State)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) trackScene() {
	sr, ok := m.game.(SceneReporter)
	if !ok {
		return
	}
	scene := sr.SceneName()
	if scene == m.scene {
		return
	}
	m.logger.Debug("scene changed", "from", m.scene, "to", scene)
	m.scene = scene
}

// recordRun saves a finished run to the history, best effort.
func (m *Model) recordRun(state core.GameState) {
	run := storage.Run{
		Score:      state.Score,
		Difficulty: m.opts.Difficulty,
	}
	if rr, ok := m.game.(RunReporter); ok {
		run.Mileage = rr.Mileage()
		run.Ticks = rr.RunTicks()
	}

	if m.opts.Store == nil {
		m.logger.Info("run ended", "score", run.Score, "high_score", state.HighScore, "mileage", run.Mileage)
		return
	}

	saved, err := m.opts.Store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run ended", "run_id", saved.RunID, "score", saved.Score, "high_score", state.HighScore, "mileage", saved.Mileage)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir, err := storage.ExpandPath(m.opts.ScreenshotDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

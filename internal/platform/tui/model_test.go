package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-descent/internal/config"
	"github.com/vovakirdan/tui-descent/internal/core"
	"github.com/vovakirdan/tui-descent/internal/games/descent"
	"github.com/vovakirdan/tui-descent/internal/storage"
)

func newTestModel(t *testing.T, opts Options) (Model, *descent.Game) {
	t.Helper()
	game := descent.New(config.DefaultDescentConfig())
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(game, cfg, opts)
	if m.Init() == nil {
		t.Fatal("Init() should start the tick loop")
	}
	return m, game
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelStartsOnKey(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = send(t, m, TickMsg{})
	if game.Scene() != descent.SceneTitle {
		t.Fatalf("scene = %v, expected title", game.Scene())
	}

	m, _ = send(t, m, runeKey('x'))
	m, cmd := send(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if game.Scene() != descent.ScenePlaying {
		t.Errorf("scene = %v, expected playing", game.Scene())
	}

	// Input is consumed by the tick
	if m.inputFrame.Any() {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = send(t, m, runeKey('x'))
	m, _ = send(t, m, TickMsg{})
	for i := 0; i < 10; i++ {
		m, _ = send(t, m, TickMsg{})
	}
	mileage := game.Mileage()

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.Mileage() != mileage || game.Scene() != descent.ScenePlaying {
		t.Error("resize should not reset the run")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "SCORE") {
		t.Error("view should show the HUD")
	}
}

func TestModelRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, game := newTestModel(t, Options{Store: store, Difficulty: "hard"})

	m, _ = send(t, m, runeKey('x'))
	m, _ = send(t, m, TickMsg{})

	for i := 0; i < 5000 && !m.State().GameOver; i++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
		m, _ = send(t, m, TickMsg{})
	}
	if !m.State().GameOver {
		t.Fatal("token never crashed")
	}

	// Further ticks in game over must not record again
	for i := 0; i < 5; i++ {
		m, _ = send(t, m, TickMsg{})
	}

	runs, err := store.AllRuns()
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}

	r := runs[0]
	if r.Score != game.State().Score {
		t.Errorf("recorded score %d, expected %d", r.Score, game.State().Score)
	}
	if r.Mileage != game.Mileage() {
		t.Errorf("recorded mileage %v, expected %v", r.Mileage, game.Mileage())
	}
	if r.Ticks != game.RunTicks() || r.Ticks == 0 {
		t.Errorf("recorded ticks %d, expected %d", r.Ticks, game.RunTicks())
	}
	if r.Difficulty != "hard" {
		t.Errorf("recorded difficulty %q, expected %q", r.Difficulty, "hard")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m, _ := newTestModel(t, Options{ScreenshotDir: dir})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("screenshot should not return a command")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "descent_") {
		t.Errorf("screenshot name = %q", entries[0].Name())
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "D E S C E N T") {
		t.Error("screenshot should contain the title screen")
	}
	if m.inputFrame.Any() {
		t.Error("screenshot key should not reach the game")
	}
}

// Package descent implements a reflex game: a token falls through an endless
// shaft of barriers and must be steered through their gaps. Score grows with
// the distance travelled and barriers get thicker as the run goes on.
package descent

import (
	"github.com/vovakirdan/tui-descent/internal/config"
	"github.com/vovakirdan/tui-descent/internal/core"
)

// Game implements the descent game logic as a Title/Playing/GameOver
// state machine over a shared Session.
type Game struct {
	cfg      config.DescentConfig
	palette  Palette
	runtime  core.RuntimeConfig
	session  *Session
	scene    Scene
	playing  playingState
	gameOver gameOverState
	tick     uint64 // Ticks since Reset
	runs     int    // Runs started since Reset

	// seedHighScore holds a high score set before the first Reset.
	seedHighScore int
}

// New creates a new game with the given configuration.
func New(cfg config.DescentConfig) *Game {
	return &Game{cfg: cfg, palette: NewPalette(cfg.Theme)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "descent"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Descent"
}

// Reset returns to the title scene with a session seeded from the runtime
// config. The high score survives resets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	highScore := g.seedHighScore
	if g.session != nil {
		highScore = core.Max(highScore, g.session.HighScore())
	}

	g.runtime = runtime
	g.session = NewSession(g.cfg, runtime.Seed)
	g.session.SetHighScore(highScore)
	g.scene = SceneTitle
	g.playing = playingState{}
	g.gameOver = gameOverState{}
	g.tick = 0
	g.runs = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	ended := false
	switch g.scene {
	case SceneTitle:
		g.updateTitle(in)
	case ScenePlaying:
		ended = g.updatePlaying(in)
	case SceneGameOver:
		g.updateGameOver(in)
	}

	return core.StepResult{State: g.State(), RunEnded: ended}
}

// Render draws the current scene to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	f := PlayField(dst)
	if f.Empty() {
		return
	}

	switch g.scene {
	case SceneTitle:
		g.drawTitle(dst)
	case ScenePlaying:
		g.drawPlaying(dst, f)
	case SceneGameOver:
		g.drawGameOver(dst, f)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		GameOver:  g.scene == SceneGameOver,
		Paused:    g.scene == ScenePlaying && g.playing.paused,
	}
}

// Scene returns the active scene.
func (g *Game) Scene() Scene {
	return g.scene
}

// SceneName returns the name of the active scene.
func (g *Game) SceneName() string {
	return g.scene.String()
}

// Mileage returns the distance travelled in the current run.
func (g *Game) Mileage() float64 {
	return g.session.Level().Mileage()
}

// RunTicks returns the number of simulated ticks in the current run.
func (g *Game) RunTicks() int {
	return g.playing.ticks
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	if g.session == nil {
		return g.seedHighScore
	}
	return g.session.HighScore()
}

// SetHighScore seeds the high score, typically from persisted storage.
func (g *Game) SetHighScore(score int) {
	g.seedHighScore = score
	if g.session != nil {
		g.session.SetHighScore(score)
	}
}

// Config returns the game configuration.
func (g *Game) Config() config.DescentConfig {
	return g.cfg
}

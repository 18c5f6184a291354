package descent

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-descent/internal/core"
)

// Scene identifies which update/draw logic runs.
type Scene int

const (
	SceneTitle Scene = iota
	ScenePlaying
	SceneGameOver
)

// String returns a human-readable name for the scene.
func (s Scene) String() string {
	switch s {
	case SceneTitle:
		return "title"
	case ScenePlaying:
		return "playing"
	case SceneGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// playingState is the data owned by the Playing scene.
type playingState struct {
	tokenX   float64
	steering Steering
	paused   bool
	ticks    int // Simulated ticks this run, excluding pauses
}

// gameOverState is the data owned by the GameOver scene.
type gameOverState struct {
	ticks int // Ticks since the crash
}

// updateTitle waits for any control to start the first run.
func (g *Game) updateTitle(in core.InputFrame) {
	if in.Any() {
		g.enterPlaying()
	}
}

// updatePlaying advances the token and the level by one tick.
// Returns true when the token crashed this tick.
func (g *Game) updatePlaying(in core.InputFrame) bool {
	p := &g.playing

	if in.Has(core.ActionPause) {
		p.paused = !p.paused
	}
	if p.paused {
		return false
	}
	p.ticks++

	p.steering.Steer(in.Has(core.ActionLeft), in.Has(core.ActionRight))
	angle := p.steering.Advance()

	level := g.session.Level()
	speed := Speed(g.cfg.Physics, level.Mileage())
	p.tokenX += speed * math.Sin(angle)
	level.Update(speed * math.Cos(angle))

	g.session.recordScore()

	if level.Hit(p.tokenX) {
		g.enterGameOver()
		return true
	}
	return false
}

// updateGameOver restarts on any control once the lock-out has passed.
func (g *Game) updateGameOver(in core.InputFrame) {
	g.gameOver.ticks++
	if g.restartReady() && in.Any() {
		g.enterPlaying()
	}
}

func (g *Game) restartReady() bool {
	return g.gameOver.ticks > g.cfg.Gameplay.GameOverDelayTicks
}

func (g *Game) enterPlaying() {
	g.session.NewLevel()
	g.playing = playingState{
		tokenX:   0.5,
		steering: NewSteering(g.cfg.Physics),
	}
	g.scene = ScenePlaying
	g.runs++
}

func (g *Game) enterGameOver() {
	g.gameOver = gameOverState{}
	g.scene = SceneGameOver
}

func (g *Game) drawTitle(dst *core.Screen) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-2, "D E S C E N T", g.palette.HUD)
	dst.DrawTextCentered(cy, "PRESS ANY KEY TO START", core.ColorDefault)
	dst.DrawTextCentered(cy+2, "Left/Right (h/l, a/d) to steer  |  P to pause  |  Q to quit", core.ColorGray)
	if hs := g.session.HighScore(); hs > 0 {
		dst.DrawTextCentered(cy+4, fmt.Sprintf("HIGHSCORE %d", hs), core.ColorDefault)
	}
}

func (g *Game) drawPlaying(dst *core.Screen, f Field) {
	g.drawWorld(dst, f)

	row := f.Y + f.ToRow(g.cfg.Level.TokenY)
	col := f.X + f.ToCol(g.playing.tokenX)
	dst.SetColored(col, row, TokenChar, g.palette.Token)

	if g.playing.paused {
		drawMessage(dst, "PAUSED", "Press P to resume", g.palette.HUD)
	}
}

func (g *Game) drawGameOver(dst *core.Screen, f Field) {
	g.drawWorld(dst, f)

	subtitle := ""
	if g.restartReady() {
		subtitle = "PRESS ANY KEY TO RETRY"
	}
	drawMessage(dst, "GAME OVER", subtitle, g.palette.HUD)
}

// drawWorld draws the level and the score line shared by Playing and GameOver.
func (g *Game) drawWorld(dst *core.Screen, f Field) {
	g.session.Level().Draw(dst, f, g.palette)

	hud := fmt.Sprintf("SCORE %d  HIGHSCORE %d", g.session.Score(), g.session.HighScore())
	dst.DrawTextCentered(0, hud, g.palette.HUD)
}

package descent

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-descent/internal/config"
	"github.com/vovakirdan/tui-descent/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New(config.DefaultDescentConfig())
	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// crash steers right until the token hits something.
func crash(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 5000; i++ {
		res := g.Step(frame(core.ActionRight))
		if res.RunEnded {
			if g.Scene() != SceneGameOver {
				t.Fatalf("run ended but scene is %v", g.Scene())
			}
			return
		}
	}
	t.Fatal("token never crashed")
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultDescentConfig())
	if g.ID() != "descent" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "descent")
	}
	if g.Title() != "Descent" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Descent")
	}
}

func TestGameTitleToPlaying(t *testing.T) {
	g := newTestGame(1)

	if g.Scene() != SceneTitle {
		t.Fatalf("scene after reset = %v, expected title", g.Scene())
	}

	g.Step(frame())
	g.Step(frame(core.ActionQuit))
	if g.Scene() != SceneTitle {
		t.Errorf("empty and quit frames should stay on title, got %v", g.Scene())
	}

	g.Step(frame(core.ActionAny))
	if g.Scene() != ScenePlaying {
		t.Fatalf("any key should start playing, got %v", g.Scene())
	}

	snap := g.Snapshot()
	if snap.TokenX != 0.5 || snap.Direction != 0 || snap.Angle != 0 {
		t.Errorf("fresh run should start centered, got x=%v dir=%d angle=%v", snap.TokenX, snap.Direction, snap.Angle)
	}
	if snap.Runs != 1 {
		t.Errorf("runs = %d, expected 1", snap.Runs)
	}
}

func TestGamePlayingAdvances(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionAny))

	for i := 0; i < 10; i++ {
		g.Step(frame())
	}

	// Straight down at base speed
	if m := g.Mileage(); m < 0.049 || m > 0.051 {
		t.Errorf("mileage after 10 ticks = %v, expected about 0.05", m)
	}
	if g.RunTicks() != 10 {
		t.Errorf("RunTicks() = %d, expected 10", g.RunTicks())
	}
	if g.Snapshot().TokenX != 0.5 {
		t.Errorf("token without steering should not drift, got %v", g.Snapshot().TokenX)
	}
}

func TestGameSteeringMovesToken(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionAny))

	for i := 0; i < 5; i++ {
		g.Step(frame(core.ActionLeft))
	}

	snap := g.Snapshot()
	if snap.Direction != -3 {
		t.Errorf("direction = %d, expected -3", snap.Direction)
	}
	if snap.TokenX >= 0.5 {
		t.Errorf("token should drift left, got x=%v", snap.TokenX)
	}
}

func TestGameCrashAndRestart(t *testing.T) {
	g := newTestGame(3)
	g.Step(frame(core.ActionAny))
	crash(t, g)

	state := g.State()
	if !state.GameOver {
		t.Error("State().GameOver should be true after crash")
	}
	score := state.Score
	if state.HighScore < score {
		t.Errorf("high score %d below run score %d", state.HighScore, score)
	}

	// Game over freezes the run
	mileage := g.Mileage()
	for i := 0; i < g.cfg.Gameplay.GameOverDelayTicks; i++ {
		res := g.Step(frame(core.ActionAny))
		if res.RunEnded {
			t.Fatal("RunEnded reported outside of a crash")
		}
		if g.Scene() != SceneGameOver {
			t.Fatalf("restart during lock-out at tick %d", i+1)
		}
	}
	if g.Mileage() != mileage {
		t.Error("mileage changed during game over")
	}

	g.Step(frame(core.ActionAny))
	if g.Scene() != ScenePlaying {
		t.Fatalf("any key after lock-out should restart, got %v", g.Scene())
	}
	if g.Mileage() != 0 {
		t.Errorf("restart should rebuild the level, mileage = %v", g.Mileage())
	}
	if g.Snapshot().Runs != 2 {
		t.Errorf("runs = %d, expected 2", g.Snapshot().Runs)
	}
	if g.State().HighScore != state.HighScore {
		t.Errorf("high score changed on restart: %d -> %d", state.HighScore, g.State().HighScore)
	}
}

func TestGameRestartWithoutLockout(t *testing.T) {
	cfg := config.DefaultDescentConfig()
	cfg.Gameplay.GameOverDelayTicks = 0
	g := New(cfg)
	g.Reset(core.DefaultConfig())

	g.Step(frame(core.ActionAny))
	crash(t, g)

	g.Step(frame())
	if g.Scene() != SceneGameOver {
		t.Fatal("empty frame should not restart")
	}
	g.Step(frame(core.ActionRight))
	if g.Scene() != ScenePlaying {
		t.Errorf("steering key should restart, got %v", g.Scene())
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionAny))
	g.Step(frame())

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause key should pause")
	}

	before := g.Snapshot()
	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionRight))
	}
	after := g.Snapshot()
	if after.Mileage != before.Mileage || after.TokenX != before.TokenX || after.Direction != before.Direction {
		t.Error("paused game should not advance")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Fatal("second pause key should resume")
	}
	g.Step(frame())
	if g.Mileage() <= before.Mileage {
		t.Error("resumed game should advance")
	}
}

func TestGameDeterminism(t *testing.T) {
	script := func(i int) core.InputFrame {
		switch {
		case i == 0:
			return frame(core.ActionAny)
		case i%17 < 3:
			return frame(core.ActionLeft)
		case i%17 < 6:
			return frame(core.ActionRight)
		default:
			return frame(core.ActionAny)
		}
	}

	a, b := newTestGame(42), newTestGame(42)
	for i := 0; i < 3000; i++ {
		ra := a.Step(script(i))
		rb := b.Step(script(i))
		if ra != rb {
			t.Fatalf("tick %d: step results differ: %+v vs %+v", i, ra, rb)
		}
	}

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("equal seeds and inputs should give equal snapshots")
	}

	c := newTestGame(43)
	for i := 0; i < 3000; i++ {
		c.Step(script(i))
	}
	if reflect.DeepEqual(a.Snapshot().Barriers, c.Snapshot().Barriers) {
		t.Error("different seeds should give different levels")
	}
}

func TestGameHighScoreSurvivesReset(t *testing.T) {
	g := New(config.DefaultDescentConfig())
	g.SetHighScore(120)
	if g.HighScore() != 120 {
		t.Fatalf("HighScore() before reset = %d, expected 120", g.HighScore())
	}

	g.Reset(core.DefaultConfig())
	if g.State().HighScore != 120 {
		t.Errorf("seeded high score lost on reset, got %d", g.State().HighScore)
	}

	g.session.SetHighScore(300)
	g.Reset(core.DefaultConfig())
	if g.HighScore() != 300 {
		t.Errorf("session high score lost on reset, got %d", g.HighScore())
	}
	if g.State().Score != 0 {
		t.Errorf("score after reset = %d, expected 0", g.State().Score)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)
	g.SetHighScore(7)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "D E S C E N T") {
		t.Error("title screen should show the title")
	}
	if !strings.Contains(screen.String(), "HIGHSCORE 7") {
		t.Error("title screen should show the high score")
	}

	g.Step(frame(core.ActionAny))
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "SCORE 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}

	// 80x24: field is 46x23 at (17,1)
	if r := screen.Get(40, 5); r != TokenChar {
		t.Errorf("token cell = %q, expected %q", r, TokenChar)
	}
	if c := screen.GetCell(17, 5); c.Rune != WallChar || c.Color != core.ColorGray {
		t.Errorf("left wall cell = %+v", c)
	}
	if c := screen.GetCell(62, 5); c.Rune != WallChar {
		t.Errorf("right wall cell = %+v", c)
	}
	if c := screen.GetCell(0, 5); c.Rune != ' ' {
		t.Errorf("outside the field should be blank, got %q", c.Rune)
	}

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should show the pause box")
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionAny))

	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}, {200, 2}} {
		screen := core.NewScreen(size[0], size[1])
		g.Render(screen)
	}
}

func TestNewPalette(t *testing.T) {
	if p := NewPalette(config.DefaultDescentConfig().Theme); p != DefaultPalette() {
		t.Errorf("default theme palette = %+v, expected %+v", p, DefaultPalette())
	}

	p := NewPalette(config.ThemeConfig{Barrier: "cyan", Wall: "nope", Token: "Orange", HUD: ""})
	expected := Palette{
		Barrier: core.ColorCyan,
		Wall:    core.ColorGray,
		Token:   core.ColorOrange,
		HUD:     core.ColorBrightYellow,
	}
	if p != expected {
		t.Errorf("NewPalette() = %+v, expected %+v", p, expected)
	}
}

func TestGameRenderUsesTheme(t *testing.T) {
	cfg := config.DefaultDescentConfig()
	cfg.Theme.Token = "green"
	g := New(cfg)
	g.Reset(core.DefaultConfig())
	g.Step(frame(core.ActionAny))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if c := screen.GetCell(40, 5); c.Rune != TokenChar || c.Color != core.ColorGreen {
		t.Errorf("token cell = %+v, expected green token", c)
	}
}

package tui

import "github.com/vovakirdan/tui-descent/internal/core"

// Game is what the terminal loop drives: one Step per tick, one Render per frame.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// RunReporter is implemented by games that can describe the run that just
// ended, for the run history.
type RunReporter interface {
	Mileage() float64
	RunTicks() int
}

// SceneReporter is implemented by games with named scenes; transitions are
// logged at debug level.
type SceneReporter interface {
	SceneName() string
}

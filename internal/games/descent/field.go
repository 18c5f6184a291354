package descent

import (
	"math"

	"github.com/vovakirdan/tui-descent/internal/config"
	"github.com/vovakirdan/tui-descent/internal/core"
)

// Visual characters for rendering
const (
	BarrierChar = '█'
	WallChar    = '▓'
	TokenChar   = '▼'
)

// Palette holds the colours of the game elements.
type Palette struct {
	Barrier core.Color
	Wall    core.Color
	Token   core.Color
	HUD     core.Color
}

// DefaultPalette returns the built-in colours.
func DefaultPalette() Palette {
	return Palette{
		Barrier: core.ColorWhite,
		Wall:    core.ColorGray,
		Token:   core.ColorBrightRed,
		HUD:     core.ColorBrightYellow,
	}
}

// NewPalette resolves the theme's colour names. Unknown names keep the
// default colour for that element.
func NewPalette(theme config.ThemeConfig) Palette {
	p := DefaultPalette()
	resolve := func(name string, dst *core.Color) {
		if c, err := core.ParseColor(name); err == nil {
			*dst = c
		}
	}
	resolve(theme.Barrier, &p.Barrier)
	resolve(theme.Wall, &p.Wall)
	resolve(theme.Token, &p.Token)
	resolve(theme.HUD, &p.HUD)
	return p
}

// Field maps normalized playfield coordinates (0..1 on both axes) onto a
// rectangle of screen cells.
type Field struct {
	core.Rect
}

// PlayField returns the playfield for a screen: everything below the HUD row,
// narrowed so that terminal cells (roughly twice as tall as wide) give a
// square-looking field.
func PlayField(dst *core.Screen) Field {
	h := dst.Height() - 1
	if h < 1 {
		return Field{}
	}
	w := core.Clamp(2*h, 1, dst.Width())
	return Field{core.NewRect((dst.Width()-w)/2, 1, w, h)}
}

// ColX returns the normalized x of the center of a field column.
func (f Field) ColX(col int) float64 {
	return (float64(col) + 0.5) / float64(f.W)
}

// ToCol returns the field column containing normalized x.
func (f Field) ToCol(x float64) int {
	return core.Clamp(int(math.Floor(x*float64(f.W))), 0, f.W-1)
}

// ToRow returns the field row containing normalized y.
func (f Field) ToRow(y float64) int {
	return core.Clamp(int(math.Floor(y*float64(f.H))), 0, f.H-1)
}

// drawMessage draws a boxed two-line message in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string, titleColor core.Color) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDefault)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, titleColor)
	if subtitle != "" {
		dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorDefault)
	}
}

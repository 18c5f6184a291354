package descent

import (
	"math"

	"github.com/vovakirdan/tui-descent/internal/core"
)

// BarrierType determines which horizontal span of a barrier is solid.
type BarrierType int

const (
	BarrierLeft  BarrierType = iota // Solid from the left wall up to LeftToHole
	BarrierRight                    // Solid from LeftToHole to the right wall
	BarrierSlit                     // Solid on both sides of a HoleWidth gap
)

// String returns a human-readable name for the barrier type.
func (t BarrierType) String() string {
	switch t {
	case BarrierLeft:
		return "Left"
	case BarrierRight:
		return "Right"
	case BarrierSlit:
		return "Slit"
	default:
		return "Unknown"
	}
}

// Barrier is one obstacle band. Only YPos changes after creation.
// All values are normalized to the playfield (0..1).
type Barrier struct {
	Type       BarrierType
	LeftToHole float64 // Hole boundary (Left/Right) or hole start (Slit)
	Height     float64
	YPos       float64 // Top edge; decreases as the level scrolls
	HoleWidth  float64 // Gap width, only meaningful for Slit
}

// Solid reports whether horizontal position x lies in the solid region.
func (b Barrier) Solid(x float64) bool {
	switch b.Type {
	case BarrierLeft:
		return x <= b.LeftToHole
	case BarrierRight:
		return x >= b.LeftToHole
	case BarrierSlit:
		return x <= b.LeftToHole || x >= b.LeftToHole+b.HoleWidth
	default:
		return false
	}
}

// Hit reports whether a token at x on the horizontal line lineY collides
// with this barrier. The band test is strict on both edges.
func (b Barrier) Hit(x, lineY float64) bool {
	if !b.Solid(x) {
		return false
	}
	return b.YPos < lineY && lineY < b.YPos+b.Height
}

// IsVisible returns true until the barrier has scrolled fully off the top.
func (b Barrier) IsVisible() bool {
	return b.YPos > -b.Height
}

// Draw renders the solid cells of the barrier band inside the playfield.
func (b Barrier) Draw(dst *core.Screen, f Field, c core.Color) {
	top := int(math.Floor(b.YPos * float64(f.H)))
	bottom := int(math.Ceil((b.YPos + b.Height) * float64(f.H)))
	top = core.Clamp(top, 0, f.H)
	bottom = core.Clamp(bottom, 0, f.H)

	for row := top; row < bottom; row++ {
		for col := 0; col < f.W; col++ {
			if b.Solid(f.ColX(col)) {
				dst.SetColored(f.X+col, f.Y+row, BarrierChar, c)
			}
		}
	}
}

package descent

import (
	"math/rand"

	"github.com/vovakirdan/tui-descent/internal/config"
	"github.com/vovakirdan/tui-descent/internal/core"
)

// Level owns the sliding window of barriers for one run.
//
// Barriers live in a fixed ring: the constructor decides how many are needed
// to cover the visible height, and recycling overwrites the front slot with a
// freshly generated back barrier, so the count never changes.
type Level struct {
	params     config.LevelConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	barriers   []Barrier
	head       int // Index of the front (oldest, topmost) barrier
	mileage    float64
}

// NewLevel creates a level starting with a centered slit at the bottom edge
// of the visible area, followed by generated barriers until at least one
// playfield height is covered.
func NewLevel(params config.LevelConfig, rng *rand.Rand, diff *config.DifficultyManager) *Level {
	l := &Level{
		params:     params,
		rng:        rng,
		difficulty: diff,
	}

	l.barriers = append(l.barriers, Barrier{
		Type:       BarrierSlit,
		LeftToHole: 0.5 - params.HoleWidth/2,
		Height:     params.InitialBarrierHeight,
		YPos:       1.0,
		HoleWidth:  params.HoleWidth,
	})

	for span := 0.0; span < 1.0; span += params.BarrierInterval {
		l.barriers = append(l.barriers, l.generateNext())
	}

	return l
}

// Update scrolls the level by speedY (the vertical component of the token's
// travel this tick) and recycles the front barrier once it is out of sight.
func (l *Level) Update(speedY float64) {
	l.mileage += speedY

	for i := range l.barriers {
		l.barriers[i].YPos -= speedY
	}

	if !l.Front().IsVisible() {
		next := l.generateNext()
		l.barriers[l.head] = next
		l.head = (l.head + 1) % len(l.barriers)
	}
}

// generateNext derives a new barrier from the current back barrier.
// Left and Right never repeat back to back, which keeps a passable region
// around the center band.
func (l *Level) generateNext() Barrier {
	prev := l.Back()
	pos := l.params.SpawnMin + l.rng.Float64()*(l.params.SpawnMax-l.params.SpawnMin)

	var (
		typ        BarrierType
		leftToHole float64
	)
	switch prev.Type {
	case BarrierLeft:
		typ = BarrierRight
		if l.rng.Intn(2) == 1 {
			typ = BarrierSlit
		}
		leftToHole = pos
	case BarrierRight:
		typ = BarrierLeft
		if l.rng.Intn(2) == 1 {
			typ = BarrierSlit
		}
		leftToHole = 1.0 - pos
	default:
		typ = BarrierType(l.rng.Intn(3))
		leftToHole = pos - l.params.HoleWidth/2
	}

	return Barrier{
		Type:       typ,
		LeftToHole: leftToHole,
		Height:     l.BarrierHeight(),
		YPos:       prev.YPos + l.params.BarrierInterval,
		HoleWidth:  l.params.HoleWidth,
	}
}

// BarrierHeight returns the height newly generated barriers get at the
// current mileage.
func (l *Level) BarrierHeight() float64 {
	return l.difficulty.Lerp(l.params.InitialBarrierHeight, l.params.MaxBarrierHeight, l.mileage)
}

// Hit reports whether a token at posX collides with a side wall or any barrier.
func (l *Level) Hit(posX float64) bool {
	if posX < l.params.SideWallWidth || posX > 1.0-l.params.SideWallWidth {
		return true
	}
	for _, b := range l.barriers {
		if b.Hit(posX, l.params.TokenY) {
			return true
		}
	}
	return false
}

// Mileage returns the cumulative forward progress of this run.
func (l *Level) Mileage() float64 {
	return l.mileage
}

// Len returns the number of barriers in the window.
func (l *Level) Len() int {
	return len(l.barriers)
}

// Front returns the oldest, topmost barrier.
func (l *Level) Front() Barrier {
	return l.barriers[l.head]
}

// Back returns the newest, bottommost barrier.
func (l *Level) Back() Barrier {
	return l.barriers[(l.head+len(l.barriers)-1)%len(l.barriers)]
}

// Barriers returns a front-to-back copy of the barrier window.
func (l *Level) Barriers() []Barrier {
	out := make([]Barrier, 0, len(l.barriers))
	for i := range l.barriers {
		out = append(out, l.barriers[(l.head+i)%len(l.barriers)])
	}
	return out
}

// Draw renders the side walls and all barriers.
func (l *Level) Draw(dst *core.Screen, f Field, pal Palette) {
	for col := 0; col < f.W; col++ {
		x := f.ColX(col)
		if x >= l.params.SideWallWidth && x <= 1.0-l.params.SideWallWidth {
			continue
		}
		for row := 0; row < f.H; row++ {
			dst.SetColored(f.X+col, f.Y+row, WallChar, pal.Wall)
		}
	}

	for _, b := range l.barriers {
		b.Draw(dst, f, pal.Barrier)
	}
}

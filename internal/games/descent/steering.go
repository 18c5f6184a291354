package descent

import (
	"math"

	"github.com/vovakirdan/tui-descent/internal/config"
	"github.com/vovakirdan/tui-descent/internal/core"
)

// Steering turns left/right inputs into a heading for the token.
//
// The direction is a discrete tilt step in [-max, max]; each step maps to a
// target angle from a table, and the actual heading eases toward the target
// by a fixed fraction every tick.
type Steering struct {
	angles    []float64 // Radians, indexed by |direction|
	smoothing float64
	direction int
	angle     float64
}

// NewSteering creates a centered steering state from the physics config.
func NewSteering(p config.PhysicsConfig) Steering {
	angles := make([]float64, len(p.SteerAnglesDeg))
	for i, deg := range p.SteerAnglesDeg {
		angles[i] = deg * math.Pi / 180
	}
	return Steering{
		angles:    angles,
		smoothing: p.Smoothing,
	}
}

// MaxDirection returns the largest tilt step.
func (s Steering) MaxDirection() int {
	return len(s.angles) - 1
}

// Steer moves the direction one step when exactly one of left/right is
// active. Both or neither leave it unchanged.
func (s *Steering) Steer(left, right bool) {
	if left == right {
		return
	}
	step := 1
	if left {
		step = -1
	}
	s.direction = core.Clamp(s.direction+step, -s.MaxDirection(), s.MaxDirection())
}

// TargetAngle returns the table angle for the current direction, signed.
func (s Steering) TargetAngle() float64 {
	return float64(core.Sign(s.direction)) * s.angles[core.Abs(s.direction)]
}

// Advance eases the heading toward the target angle and returns it.
func (s *Steering) Advance() float64 {
	s.angle += s.smoothing * (s.TargetAngle() - s.angle)
	return s.angle
}

// Direction returns the current tilt step.
func (s Steering) Direction() int {
	return s.direction
}

// Angle returns the current heading in radians; 0 is straight down.
func (s Steering) Angle() float64 {
	return s.angle
}

// Speed returns the token's travel per tick at the given mileage.
func Speed(p config.PhysicsConfig, mileage float64) float64 {
	return p.SpeedPerMileage*mileage + p.BaseSpeed
}

// Package autopilot flies the lander without a keyboard by producing the same
// held-key state a pilot would.
package autopilot

import (
	"math"

	"github.com/automoto/rocket-lander/shared/rocket"
)

// Autopilot is a bang-bang controller over the Up/Left/Right keys. Away from
// the target it hovers and leans toward it; once settled above the target it
// descends inside a braking envelope.
type Autopilot struct {
	TargetX float64 // usually the pad center

	// Touchdown is the vertical speed it aims to reach at the floor.
	Touchdown float64
	// Brake is the net upward acceleration assumed while thrusting.
	Brake float64
	// Margin scales the braking envelope below the theoretical limit.
	Margin float64

	// Arrive and Settle bound the distance and horizontal speed at which
	// the descent starts.
	Arrive float64
	Settle float64

	// Clearance is the altitude kept while travelling; below it the
	// autopilot climbs at up to MaxClimb, Climb per unit of shortfall.
	Clearance float64
	Climb     float64
	MaxClimb  float64

	// Cruise caps the horizontal speed it commands toward TargetX.
	Cruise float64
	// Approach is the distance over which cruise speed ramps down.
	Approach float64
	// Gain converts horizontal speed error into a lean angle (degrees).
	Gain float64
	// MaxLean bounds the lean while travelling, LandingLean while descending.
	MaxLean     float64
	LandingLean float64

	// TiltDeadband is the attitude error (degrees, w-damped) it tolerates.
	TiltDeadband float64
	// Damping weights angular velocity into the attitude estimate.
	Damping float64
}

// New returns an autopilot tuned for the default flight model.
func New(targetX float64) *Autopilot {
	return &Autopilot{
		TargetX:      targetX,
		Touchdown:    1.5,
		Brake:        0.1,
		Margin:       0.8,
		Arrive:       10,
		Settle:       0.3,
		Clearance:    80,
		Climb:        0.05,
		MaxClimb:     1,
		Cruise:       1.5,
		Approach:     60,
		Gain:         2,
		MaxLean:      4,
		LandingLean:  1.5,
		TiltDeadband: 0.3,
		Damping:      8,
	}
}

// Descending reports whether the rocket is settled over the target.
func (a *Autopilot) Descending(s rocket.State) bool {
	return math.Abs(a.TargetX-s.X) < a.Arrive && math.Abs(s.VX) < a.Settle
}

// Keys decides the controls for the current tick.
func (a *Autopilot) Keys(s rocket.State, c rocket.Constants) rocket.KeyState {
	var keys rocket.KeyState

	altitude := s.Altitude(c)
	maxVY, lean := a.HoldLimit(altitude), a.MaxLean
	if a.Descending(s) {
		maxVY, lean = a.DescentLimit(altitude), a.LandingLean
	}

	keys.Up = s.VY > maxVY
	// Gimbal only has authority while the engine fires.
	if !keys.Up {
		return keys
	}

	// Positive tilt pushes toward +X.
	wantVX := clamp((a.TargetX-s.X)/a.Approach, -a.Cruise, a.Cruise)
	wantTilt := clamp(a.Gain*(wantVX-s.VX), -lean, lean)
	switch err := wantTilt - (s.Theta + a.Damping*s.W); {
	case err > a.TiltDeadband:
		keys.Left = true
	case err < -a.TiltDeadband:
		keys.Right = true
	}
	return keys
}

// HoldLimit is the downward speed allowed while travelling: zero at or
// above Clearance, an upward speed below it.
func (a *Autopilot) HoldLimit(altitude float64) float64 {
	return clamp((altitude-a.Clearance)*a.Climb, -a.MaxClimb, 0)
}

// DescentLimit is the fastest downward speed from which the rocket can still
// brake to Touchdown over the given altitude.
func (a *Autopilot) DescentLimit(altitude float64) float64 {
	limit := math.Sqrt(a.Touchdown*a.Touchdown + 2*a.Brake*math.Max(altitude, 0))
	return limit * a.Margin
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Package rocket holds the flight model of the lander: the state vector, the
// thrust model, the integrator, ground contact and the outcome machine.
// It has no dependencies on ebitengine, donburi or resolv.
package rocket

import (
	"errors"
	"math"
)

// State is the physical state vector of the rocket. Y grows toward the floor.
type State struct {
	X, Y   float64
	VX, VY float64
	Theta  float64 // degrees, 0 = upright, unwrapped
	W      float64 // degrees per tick

	// Derived every tick, never integrated.
	ThrustX, ThrustY float64
	ThrusterAngle    float64
	Thrust           float64
}

// Constants are the read-only parameters of one simulation.
type Constants struct {
	Mass       float64
	Gravity    float64 // positive magnitude, pulls toward +Y
	Inertia    float64
	BodyWidth  float64
	BodyHeight float64

	FloorY   float64
	PadX     float64
	PadWidth float64

	// ReferenceRate is the tick rate (Hz) that dt = 1 stands for.
	ReferenceRate float64

	MaxTilt float64 // degrees
	MaxVX   float64
	MaxVY   float64

	IndicatorScale float64
}

// DefaultConstants mirrors the original 800x600 scene.
func DefaultConstants() Constants {
	return Constants{
		Mass:           1,
		Gravity:        0.5,
		Inertia:        100,
		BodyWidth:      20,
		BodyHeight:     60,
		FloorY:         580,
		PadX:           350,
		PadWidth:       100,
		ReferenceRate:  30,
		MaxTilt:        5,
		MaxVX:          2,
		MaxVY:          5,
		IndicatorScale: 50,
	}
}

var (
	ErrMass          = errors.New("mass must be positive")
	ErrGravity       = errors.New("gravity must be a non-negative magnitude")
	ErrInertia       = errors.New("moment of inertia must be positive")
	ErrBodyHeight    = errors.New("body height must be positive")
	ErrPadWidth      = errors.New("pad width must not be negative")
	ErrReferenceRate = errors.New("reference rate must be positive")
)

// Validate reports the first constant that would make the model undefined.
func (c Constants) Validate() error {
	switch {
	case !(c.Mass > 0):
		return ErrMass
	case !(c.Gravity >= 0):
		return ErrGravity
	case !(c.Inertia > 0):
		return ErrInertia
	case !(c.BodyHeight > 0):
		return ErrBodyHeight
	case c.PadWidth < 0:
		return ErrPadWidth
	case !(c.ReferenceRate > 0):
		return ErrReferenceRate
	}
	return nil
}

// HoverThrust is the thrust that exactly cancels gravity when upright.
func (c Constants) HoverThrust() float64 {
	return c.Gravity * c.Mass
}

// NewState returns a state at rest at (x, y) with the thrust point placed.
func NewState(x, y float64, c Constants) State {
	s := State{X: x, Y: y}
	s.placeThrustPoint(s.Theta, c)
	return s
}

// placeThrustPoint puts the thrust point at the tail, half the body length
// from the center along the axis rotated by theta.
func (s *State) placeThrustPoint(theta float64, c Constants) {
	rad := Radians(theta)
	half := c.BodyHeight / 2
	s.ThrustX = s.X + math.Sin(rad)*(-half)
	s.ThrustY = s.Y + math.Cos(rad)*half
}

// Bottom returns the y of the body's lower edge used for floor contact.
func (s State) Bottom(c Constants) float64 {
	return s.Y + c.BodyHeight/2
}

// Altitude is the distance between the lower edge and the floor.
func (s State) Altitude(c Constants) float64 {
	return c.FloorY - s.Bottom(c)
}

// Radians converts degrees, the unit of Theta and W, to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

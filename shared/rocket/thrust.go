package rocket

import "math"

// MaxGimbal bounds the gimbal deflection in degrees.
const MaxGimbal = 15.0

// Command is one tick of pilot input.
type Command struct {
	Thrust float64 // >= 0
	Gimbal float64 // degrees, [-MaxGimbal, MaxGimbal]
}

// Clamp forces the command into its contract.
func (c Command) Clamp() Command {
	if !(c.Thrust > 0) {
		c.Thrust = 0
	}
	c.Gimbal = math.Max(-MaxGimbal, math.Min(MaxGimbal, c.Gimbal))
	return c
}

// Force is the world-frame contribution of the engine for one tick.
type Force struct {
	FX, FY        float64
	ThrusterAngle float64 // degrees
	Magnitude     float64
}

// Thrust converts a command into a world-frame force for a body at theta.
// FY is the axial component and FX the lateral one.
func Thrust(theta float64, cmd Command) Force {
	ta := theta - cmd.Gimbal
	rad := Radians(ta)
	return Force{
		FX:            math.Sin(rad) * cmd.Thrust,
		FY:            math.Cos(rad) * cmd.Thrust,
		ThrusterAngle: ta,
		Magnitude:     cmd.Thrust,
	}
}

// Indicator returns the end point of the thrust line drawn from the thrust
// point, pointing away from the thruster angle.
func Indicator(s State, c Constants) (x, y float64) {
	length := s.Thrust * c.IndicatorScale
	rad := Radians(s.ThrusterAngle)
	return s.ThrustX - length*math.Sin(rad), s.ThrustY + length*math.Cos(rad)
}

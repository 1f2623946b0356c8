package rocket

import "math"

// Touching reports whether the lower edge reached the floor.
func Touching(s State, c Constants) bool {
	return s.Bottom(c) >= c.FloorY
}

// ResolveGround clamps the body onto the floor on contact and classifies
// the touchdown. Velocities are left as they were.
func ResolveGround(s *State, c Constants) Outcome {
	if !Touching(*s, c) {
		return Continue
	}

	s.Y = c.FloorY - c.BodyHeight/2
	s.placeThrustPoint(s.Theta, c)

	if Landed(*s, c) {
		return Win
	}
	return Lose
}

// Landed applies the touchdown criteria. Every bound is strict.
func Landed(s State, c Constants) bool {
	return OverPad(s, c) &&
		math.Abs(s.Theta) < c.MaxTilt &&
		math.Abs(s.VX) < c.MaxVX &&
		math.Abs(s.VY) < c.MaxVY
}

// OverPad reports whether the center is strictly inside the pad's x range.
func OverPad(s State, c Constants) bool {
	return s.X > c.PadX && s.X < c.PadX+c.PadWidth
}

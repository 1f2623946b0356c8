package rocket

// Integrate advances s by dt reference ticks with explicit Euler.
// dt = 1 is exactly one tick at Constants.ReferenceRate.
func Integrate(s *State, c Constants, f Force, dt float64) {
	s.ThrusterAngle = f.ThrusterAngle
	s.Thrust = f.Magnitude

	ax := f.FX / c.Mass
	ay := -f.FY/c.Mass + c.Gravity

	s.VX += ax * dt
	s.VY += ay * dt
	s.X += s.VX * dt
	s.Y += s.VY * dt

	// Thrust point uses the orientation from before this tick.
	s.placeThrustPoint(s.Theta, c)
	leverX := s.ThrustX - s.X
	leverY := s.ThrustY - s.Y

	alpha := (leverX*f.FY + leverY*f.FX) / c.Inertia
	s.W += alpha * dt
	s.Theta += s.W * dt
}

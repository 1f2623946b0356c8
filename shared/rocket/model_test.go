package rocket

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThrust(t *testing.T) {
	tests := []struct {
		name   string
		theta  float64
		cmd    Command
		fx, fy float64
		angle  float64
	}{
		{name: "upright axial", theta: 0, cmd: Command{Thrust: 0.7}, fx: 0, fy: 0.7, angle: 0},
		{name: "gimbal right", theta: 0, cmd: Command{Thrust: 1, Gimbal: 15}, fx: math.Sin(-15 * math.Pi / 180), fy: math.Cos(15 * math.Pi / 180), angle: -15},
		{name: "tilted body", theta: 90, cmd: Command{Thrust: 2}, fx: 2, fy: 0, angle: 90},
		{name: "gimbal cancels tilt", theta: 15, cmd: Command{Thrust: 1, Gimbal: 15}, fx: 0, fy: 1, angle: 0},
		{name: "no thrust", theta: 30, cmd: Command{Gimbal: -15}, fx: 0, fy: 0, angle: 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Thrust(tt.theta, tt.cmd)
			assert.InDelta(t, tt.fx, f.FX, eps)
			assert.InDelta(t, tt.fy, f.FY, eps)
			assert.InDelta(t, tt.angle, f.ThrusterAngle, eps)
			assert.Equal(t, tt.cmd.Thrust, f.Magnitude)
		})
	}
}

func TestCommand_Clamp(t *testing.T) {
	assert.Equal(t, Command{Thrust: 0, Gimbal: 15}, Command{Thrust: -1, Gimbal: 40}.Clamp())
	assert.Equal(t, Command{Thrust: 0.6, Gimbal: -15}, Command{Thrust: 0.6, Gimbal: -15.5}.Clamp())
	assert.Equal(t, Command{Thrust: 0, Gimbal: 3}, Command{Thrust: math.NaN(), Gimbal: 3}.Clamp())
}

func TestIntegrate_ThrustPointUsesPreviousTheta(t *testing.T) {
	c := DefaultConstants()
	s := NewState(400, 150, c)
	s.Theta = 90
	s.W = 10

	Integrate(&s, c, Force{}, 1)

	// Tail sits half a body length to the left when lying at 90 degrees.
	assert.InDelta(t, s.X-c.BodyHeight/2, s.ThrustX, eps)
	assert.InDelta(t, s.Y, s.ThrustY, eps)
	assert.Equal(t, 100.0, s.Theta)
}

func TestNewState_ThrustPointAtTail(t *testing.T) {
	c := DefaultConstants()
	s := NewState(400, 150, c)

	assert.InDelta(t, 400, s.ThrustX, eps)
	assert.InDelta(t, 180, s.ThrustY, eps)
	assert.InDelta(t, 400, s.Altitude(c), eps)
}

func TestIndicator(t *testing.T) {
	c := DefaultConstants()
	s := NewState(400, 150, c)
	s.Thrust = 0.6

	x, y := Indicator(s, c)
	assert.InDelta(t, 400, x, eps)
	assert.InDelta(t, 210, y, eps)

	s.ThrusterAngle = 90
	x, y = Indicator(s, c)
	assert.InDelta(t, 370, x, eps)
	assert.InDelta(t, 180, y, eps)
}

func TestResolveGround_Clamp(t *testing.T) {
	c := DefaultConstants()
	for _, overshoot := range []float64{0, 0.001, 12.5, 400} {
		s := State{X: 400, Y: c.FloorY - c.BodyHeight/2 + overshoot, VY: 30, VX: 4}

		got := ResolveGround(&s, c)

		assert.Equal(t, Lose, got)
		assert.Equal(t, c.FloorY-c.BodyHeight/2, s.Y)
		assert.Equal(t, 30.0, s.VY, "velocities are not touched")
		assert.Equal(t, 4.0, s.VX, "velocities are not touched")
	}
}

func TestResolveGround_NoContact(t *testing.T) {
	c := DefaultConstants()
	s := State{X: 400, Y: c.FloorY - c.BodyHeight/2 - 0.001, VY: 3}
	before := s

	assert.Equal(t, Continue, ResolveGround(&s, c))
	assert.Equal(t, before, s)
}

func TestResolveGround_Classification(t *testing.T) {
	c := DefaultConstants()
	ground := c.FloorY - c.BodyHeight/2

	tests := []struct {
		name  string
		state State
		want  Outcome
	}{
		{name: "clean landing", state: State{X: 400, Y: ground}, want: Win},
		{name: "just inside limits", state: State{X: 350.01, Y: ground, Theta: -4.99, VX: 1.99, VY: 4.99}, want: Win},
		{name: "pad left edge", state: State{X: 350, Y: ground}, want: Lose},
		{name: "pad right edge", state: State{X: 450, Y: ground}, want: Lose},
		{name: "tilt at limit", state: State{X: 400, Y: ground, Theta: 5}, want: Lose},
		{name: "negative tilt at limit", state: State{X: 400, Y: ground, Theta: -5}, want: Lose},
		{name: "vx at limit", state: State{X: 400, Y: ground, VX: -2}, want: Lose},
		{name: "positive vx at limit", state: State{X: 400, Y: ground, VX: 2}, want: Lose},
		{name: "vy at limit", state: State{X: 400, Y: ground, VY: 5}, want: Lose},
		{name: "negative vy at limit", state: State{X: 400, Y: ground, VY: -5}, want: Lose},
		{name: "full turn is not upright", state: State{X: 400, Y: ground, Theta: 360}, want: Lose},
		{name: "off pad", state: State{X: 100, Y: ground}, want: Lose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.state
			assert.Equal(t, tt.want, ResolveGround(&s, c))
		})
	}
}

func TestMachine(t *testing.T) {
	var m Machine
	assert.Equal(t, Continue, m.Current())
	assert.Equal(t, Continue, m.Apply(Continue))
	assert.Equal(t, Win, m.Apply(Win))
	assert.Equal(t, Win, m.Apply(Lose))
	assert.Equal(t, Win, m.Apply(Continue))
	assert.Equal(t, Win, m.Current())

	m.Reset()
	assert.Equal(t, Lose, m.Apply(Lose))
	assert.Equal(t, Lose, m.Apply(Win))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "win", Win.String())
	assert.Equal(t, "lose", Lose.String())
	assert.False(t, Continue.Terminal())
	assert.True(t, Win.Terminal())
	assert.True(t, Lose.Terminal())
}

func TestControls_Command(t *testing.T) {
	ctl := NewControls(DefaultConstants(), 0.1)

	tests := []struct {
		name string
		keys KeyState
		want Command
	}{
		{name: "idle", keys: KeyState{}, want: Command{}},
		{name: "up", keys: KeyState{Up: true}, want: Command{Thrust: 0.6}},
		{name: "left", keys: KeyState{Left: true}, want: Command{Gimbal: -15}},
		{name: "right", keys: KeyState{Right: true}, want: Command{Gimbal: 15}},
		{name: "right wins", keys: KeyState{Left: true, Right: true}, want: Command{Gimbal: 15}},
		{name: "all", keys: KeyState{Up: true, Left: true, Right: true}, want: Command{Thrust: 0.6, Gimbal: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ctl.Command(tt.keys)
			assert.InDelta(t, tt.want.Thrust, got.Thrust, eps)
			assert.Equal(t, tt.want.Gimbal, got.Gimbal)
		})
	}
}

func TestConstants_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Constants)
		want   error
	}{
		{name: "defaults", modify: func(*Constants) {}, want: nil},
		{name: "zero mass", modify: func(c *Constants) { c.Mass = 0 }, want: ErrMass},
		{name: "negative gravity", modify: func(c *Constants) { c.Gravity = -0.5 }, want: ErrGravity},
		{name: "zero inertia", modify: func(c *Constants) { c.Inertia = 0 }, want: ErrInertia},
		{name: "zero height", modify: func(c *Constants) { c.BodyHeight = 0 }, want: ErrBodyHeight},
		{name: "negative pad", modify: func(c *Constants) { c.PadWidth = -1 }, want: ErrPadWidth},
		{name: "zero rate", modify: func(c *Constants) { c.ReferenceRate = 0 }, want: ErrReferenceRate},
		{name: "nan mass", modify: func(c *Constants) { c.Mass = math.NaN() }, want: ErrMass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConstants()
			tt.modify(&c)
			assert.Equal(t, tt.want, c.Validate())
		})
	}
}

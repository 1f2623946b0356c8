package rocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func scenarioConstants() Constants {
	c := DefaultConstants()
	c.Mass = 1
	c.Gravity = 0.5
	c.Inertia = 50
	c.BodyHeight = 60
	return c
}

func TestSimulation_UprightAxialThrust(t *testing.T) {
	sim, err := NewSimulation(scenarioConstants(), 200, 150)
	require.NoError(t, err)

	cmd := Command{Thrust: 0.7}

	assert.Equal(t, Continue, sim.Tick(cmd))
	s := sim.State()
	assert.InDelta(t, 200, s.X, eps)
	assert.InDelta(t, 149.8, s.Y, eps)
	assert.InDelta(t, 0, s.VX, eps)
	assert.InDelta(t, -0.2, s.VY, eps)
	assert.Zero(t, s.Theta)
	assert.Zero(t, s.W)

	assert.Equal(t, Continue, sim.Tick(cmd))
	s = sim.State()
	assert.InDelta(t, 200, s.X, eps)
	assert.InDelta(t, 149.4, s.Y, eps)
	assert.InDelta(t, 0, s.VX, eps)
	assert.InDelta(t, -0.4, s.VY, eps)
	assert.Zero(t, s.Theta)
	assert.Zero(t, s.W)
	assert.Equal(t, 2, sim.Ticks())
}

func TestSimulation_FreeFall(t *testing.T) {
	c := DefaultConstants()
	sim, err := NewSimulation(c, 400, 150)
	require.NoError(t, err)

	prevY := sim.State().Y
	for n := 1; n <= 39; n++ {
		require.Equal(t, Continue, sim.Tick(Command{}))
		s := sim.State()

		assert.Zero(t, s.Theta, "tick %d", n)
		assert.Zero(t, s.W, "tick %d", n)
		assert.InDelta(t, c.Gravity*float64(n), s.VY, eps, "tick %d", n)
		assert.Greater(t, s.Y, prevY, "tick %d", n)
		prevY = s.Y
	}
}

func TestSimulation_Hover(t *testing.T) {
	c := DefaultConstants()
	sim, err := NewSimulation(c, 400, 150)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		sim.Tick(Command{Thrust: c.HoverThrust()})
	}

	s := sim.State()
	assert.Equal(t, 150.0, s.Y)
	assert.Equal(t, 0.0, s.VY)
	assert.Equal(t, 400.0, s.X)
	assert.Zero(t, s.Theta)
}

func TestSimulation_Deterministic(t *testing.T) {
	c := DefaultConstants()
	cmds := []Command{
		{Thrust: 0.6, Gimbal: 15},
		{Thrust: 0.6},
		{Thrust: 0, Gimbal: -15},
		{Thrust: 0.6, Gimbal: -15},
		{Thrust: 0.6, Gimbal: 7.5},
	}

	run := func() State {
		sim, err := NewSimulation(c, 400, 150)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			for _, cmd := range cmds {
				sim.Tick(cmd)
			}
		}
		return sim.State()
	}

	assert.Equal(t, run(), run())
}

func TestSimulation_GimbalRotates(t *testing.T) {
	sim, err := NewSimulation(DefaultConstants(), 400, 150)
	require.NoError(t, err)

	sim.Tick(Command{Thrust: 0.6, Gimbal: 15})
	s := sim.State()

	assert.Less(t, s.VX, 0.0)
	assert.Less(t, s.W, 0.0)
	assert.Less(t, s.Theta, 0.0)
	assert.Equal(t, -15.0, s.ThrusterAngle)
}

func TestSimulation_Landing(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		want    Outcome
		atTicks int
	}{
		{name: "gentle drop on pad", x: 400, y: 545, want: Win, atTicks: 4},
		{name: "gentle drop off pad", x: 100, y: 545, want: Lose, atTicks: 4},
		{name: "fall from spawn", x: 400, y: 150, want: Lose, atTicks: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConstants()
			sim, err := NewSimulation(c, tt.x, tt.y)
			require.NoError(t, err)

			var got Outcome
			for i := 0; i < 1000 && !got.Terminal(); i++ {
				got = sim.Tick(Command{})
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.atTicks, sim.Ticks())
			assert.Equal(t, c.FloorY-c.BodyHeight/2, sim.State().Y)
		})
	}
}

func TestSimulation_TerminalIsFrozen(t *testing.T) {
	sim, err := NewSimulation(DefaultConstants(), 100, 545)
	require.NoError(t, err)

	for !sim.Outcome().Terminal() {
		sim.Tick(Command{})
	}
	frozen := sim.State()
	ticks := sim.Ticks()

	for i := 0; i < 10; i++ {
		assert.Equal(t, Lose, sim.Tick(Command{Thrust: 5, Gimbal: 15}))
		assert.Equal(t, Lose, sim.Outcome())
	}
	assert.Equal(t, frozen, sim.State())
	assert.Equal(t, ticks, sim.Ticks())
}

func TestSimulation_Reset(t *testing.T) {
	sim, err := NewSimulation(DefaultConstants(), 400, 545)
	require.NoError(t, err)

	for !sim.Outcome().Terminal() {
		sim.Tick(Command{})
	}
	sim.Reset()

	assert.Equal(t, Continue, sim.Outcome())
	assert.Equal(t, 0, sim.Ticks())
	assert.Equal(t, NewState(400, 545, DefaultConstants()), sim.State())
}

func TestSimulation_AdvanceMatchesTick(t *testing.T) {
	c := DefaultConstants()
	ticked, err := NewSimulation(c, 400, 150)
	require.NoError(t, err)
	advanced, err := NewSimulation(c, 400, 150)
	require.NoError(t, err)

	cmd := Command{Thrust: 0.6, Gimbal: 15}
	ticked.Tick(cmd)
	advanced.Advance(cmd, time.Second/30)

	a, b := ticked.State(), advanced.State()
	assert.InDelta(t, a.X, b.X, 1e-6)
	assert.InDelta(t, a.Y, b.Y, 1e-6)
	assert.InDelta(t, a.VY, b.VY, 1e-6)
	assert.InDelta(t, a.Theta, b.Theta, 1e-6)
}

func TestSimulation_HalfStep(t *testing.T) {
	sim, err := NewSimulation(DefaultConstants(), 400, 150)
	require.NoError(t, err)

	sim.Step(Command{}, 0.5)
	s := sim.State()

	assert.InDelta(t, 0.25, s.VY, eps)
	assert.InDelta(t, 150.125, s.Y, eps)
}

func TestNewSimulation_InvalidConstants(t *testing.T) {
	c := DefaultConstants()
	c.Mass = 0

	sim, err := NewSimulation(c, 0, 0)
	assert.Nil(t, sim)
	assert.ErrorIs(t, err, ErrMass)
}

package rocket

import (
	"fmt"
	"time"
)

// Simulation owns the single state vector of one round and runs the tick
// sequence: command, thrust, integrate, ground contact, outcome.
type Simulation struct {
	consts  Constants
	spawnX  float64
	spawnY  float64
	state   State
	machine Machine
	ticks   int
}

// NewSimulation creates a round with the rocket at rest at (x, y).
func NewSimulation(c Constants, x, y float64) (*Simulation, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid constants: %w", err)
	}
	sim := &Simulation{consts: c, spawnX: x, spawnY: y}
	sim.Reset()
	return sim, nil
}

// Tick advances exactly one reference tick.
func (sim *Simulation) Tick(cmd Command) Outcome {
	return sim.Step(cmd, 1)
}

// Advance converts wall-clock elapsed time into reference ticks.
func (sim *Simulation) Advance(cmd Command, elapsed time.Duration) Outcome {
	return sim.Step(cmd, elapsed.Seconds()*sim.consts.ReferenceRate)
}

// Step advances dt reference ticks. Once the round is over the state is
// frozen and the terminal outcome is returned unchanged.
func (sim *Simulation) Step(cmd Command, dt float64) Outcome {
	if sim.machine.Current().Terminal() {
		return sim.machine.Current()
	}

	force := Thrust(sim.state.Theta, cmd.Clamp())
	Integrate(&sim.state, sim.consts, force, dt)
	sim.ticks++

	return sim.machine.Apply(ResolveGround(&sim.state, sim.consts))
}

// Reset puts the rocket back at its spawn point and reopens the round.
func (sim *Simulation) Reset() {
	sim.state = NewState(sim.spawnX, sim.spawnY, sim.consts)
	sim.machine.Reset()
	sim.ticks = 0
}

// State returns a copy of the current state for readers.
func (sim *Simulation) State() State {
	return sim.state
}

func (sim *Simulation) Outcome() Outcome {
	return sim.machine.Current()
}

func (sim *Simulation) Constants() Constants {
	return sim.consts
}

// Ticks counts steps taken since the last reset.
func (sim *Simulation) Ticks() int {
	return sim.ticks
}

package components

import (
	"github.com/automoto/rocket-lander/shared/rocket"
	"github.com/yohamta/donburi"
)

// FlightData binds the rocket entity to its simulation.
type FlightData struct {
	Sim      *rocket.Simulation
	Controls rocket.Controls

	// Keys is the key state sampled for the last tick.
	Keys rocket.KeyState
	// Reported is the outcome last logged, used to detect transitions.
	Reported rocket.Outcome
	// OverPad is the result of the last resolv pad check.
	OverPad bool
}

var Flight = donburi.NewComponentType[FlightData]()

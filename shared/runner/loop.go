// Package runner drives a simulation without a window: a fixed-rate loop
// that samples a pilot, ticks the flight model and stops on touchdown.
package runner

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/automoto/rocket-lander/shared/rocket"
	"github.com/rs/zerolog"
)

// ErrTickBudget is returned when the round is still open after MaxTicks.
var ErrTickBudget = errors.New("tick budget exhausted")

// Pilot is the input collaborator sampled once per tick.
type Pilot interface {
	Keys(s rocket.State, c rocket.Constants) rocket.KeyState
}

// PilotFunc adapts a function to Pilot.
type PilotFunc func(s rocket.State, c rocket.Constants) rocket.KeyState

func (f PilotFunc) Keys(s rocket.State, c rocket.Constants) rocket.KeyState {
	return f(s, c)
}

type GameLoop struct {
	sim      *rocket.Simulation
	controls rocket.Controls
	pilot    Pilot
	log      zerolog.Logger

	// TickRate paces the loop in ticks/second; <= 0 runs unpaced.
	TickRate int
	// MaxTicks bounds the round; <= 0 means unbounded.
	MaxTicks int
	// Trace logs every tick at debug level when set.
	Trace bool
}

// NewGameLoop paces the loop at the simulation's reference rate, rounded to
// whole ticks per second and at least one.
func NewGameLoop(sim *rocket.Simulation, controls rocket.Controls, pilot Pilot, log zerolog.Logger) *GameLoop {
	rate := int(math.Round(sim.Constants().ReferenceRate))
	if rate < 1 {
		rate = 1
	}
	return &GameLoop{
		sim:      sim,
		controls: controls,
		pilot:    pilot,
		log:      log,
		TickRate: rate,
	}
}

// Run ticks until the round ends, the budget is spent or ctx is done.
// The returned outcome is the machine's state at exit.
func (g *GameLoop) Run(ctx context.Context) (rocket.Outcome, error) {
	g.log.Info().
		Int("tick_rate", g.TickRate).
		Int("max_ticks", g.MaxTicks).
		Msg("game loop started")

	var pace <-chan time.Time
	if g.TickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(g.TickRate))
		defer ticker.Stop()
		pace = ticker.C
	}

	for {
		if g.MaxTicks > 0 && g.sim.Ticks() >= g.MaxTicks {
			g.log.Warn().Int("ticks", g.sim.Ticks()).Msg("game loop stopped without touchdown")
			return g.sim.Outcome(), ErrTickBudget
		}

		if pace != nil {
			select {
			case <-ctx.Done():
				g.log.Info().Msg("game loop stopped")
				return g.sim.Outcome(), ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return g.sim.Outcome(), err
		}

		if outcome := g.tick(); outcome.Terminal() {
			s := g.sim.State()
			g.log.Info().
				Stringer("outcome", outcome).
				Int("ticks", g.sim.Ticks()).
				Float64("x", s.X).
				Float64("vx", s.VX).
				Float64("vy", s.VY).
				Float64("theta", s.Theta).
				Msg("touchdown")
			return outcome, nil
		}
	}
}

func (g *GameLoop) tick() rocket.Outcome {
	keys := g.pilot.Keys(g.sim.State(), g.sim.Constants())
	outcome := g.sim.Tick(g.controls.Command(keys))

	if g.Trace {
		s := g.sim.State()
		g.log.Debug().
			Int("tick", g.sim.Ticks()).
			Bool("up", keys.Up).
			Bool("left", keys.Left).
			Bool("right", keys.Right).
			Float64("x", s.X).
			Float64("y", s.Y).
			Float64("vy", s.VY).
			Float64("theta", s.Theta).
			Msg("tick")
	}
	return outcome
}

package systems

import (
	"github.com/automoto/rocket-lander/components"
	cfg "github.com/automoto/rocket-lander/config"
	"github.com/automoto/rocket-lander/shared/rocket"
	"github.com/automoto/rocket-lander/systems/factory"
	"github.com/automoto/rocket-lander/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRocket samples the flight keys and advances the simulation one tick.
// Once the round is over the simulation ignores commands, so this keeps
// running and the rocket stays frozen until a restart.
func UpdateRocket(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Rocket.Each(ecs.World, func(e *donburi.Entry) {
		flight := components.Flight.Get(e)

		flight.Keys = rocket.KeyState{
			Up:    input.Pressed(cfg.ActionThrust),
			Left:  input.Pressed(cfg.ActionGimbalLeft),
			Right: input.Pressed(cfg.ActionGimbalRight),
		}
		outcome := flight.Sim.Tick(flight.Controls.Command(flight.Keys))

		if outcome != flight.Reported {
			reportOutcome(flight, outcome)
			factory.CreateBanner(ecs, outcome)
		}
	})
}

// UpdateRestart puts every rocket back on its spawn point. It runs while
// paused too and unpauses.
func UpdateRestart(ecs *ecs.ECS) {
	if !getOrCreateInput(ecs).JustPressed(cfg.ActionRestart) {
		return
	}

	tags.Rocket.Each(ecs.World, func(e *donburi.Entry) {
		flight := components.Flight.Get(e)
		flight.Sim.Reset()
		flight.Reported = flight.Sim.Outcome()
		flight.Keys = rocket.KeyState{}
	})

	var banners []donburi.Entity
	components.Banner.Each(ecs.World, func(e *donburi.Entry) {
		banners = append(banners, e.Entity())
	})
	for _, b := range banners {
		ecs.World.Remove(b)
	}

	GetOrCreateSettings(ecs).Paused = false
	log.Info().Msg("Flight restarted")
}

func reportOutcome(flight *components.FlightData, outcome rocket.Outcome) {
	s := flight.Sim.State()
	c := flight.Sim.Constants()

	ev := log.Info()
	if outcome == rocket.Lose {
		ev = log.Warn()
	}
	ev.Stringer("outcome", outcome).
		Int("ticks", flight.Sim.Ticks()).
		Float64("x", s.X).
		Float64("vx", s.VX).
		Float64("vy", s.VY).
		Float64("theta", s.Theta).
		Bool("on_pad", rocket.OverPad(s, c)).
		Msg("Touchdown")

	flight.Reported = outcome
}

// Command lander-sim flies a landing site headless with the autopilot and
// reports the outcome. Exit status is 0 on a win and 2 on a loss.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/rocket-lander/assets"
	"github.com/automoto/rocket-lander/config"
	"github.com/automoto/rocket-lander/shared/autopilot"
	"github.com/automoto/rocket-lander/shared/logging"
	"github.com/automoto/rocket-lander/shared/rocket"
	"github.com/automoto/rocket-lander/shared/runner"
	"github.com/spf13/pflag"
)

const exitLose = 2

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := config.Flags("lander-sim")
	tickRate := fs.Int("tickrate", 0, "Ticks per second (0 = as fast as possible)")
	maxTicks := fs.Int("max-ticks", 20000, "Give up after this many ticks")
	trace := fs.Bool("trace", false, "Log every tick at debug level")
	jsonLogs := fs.Bool("json", false, "Log JSON instead of console lines")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	path, _ := fs.GetString("config")
	if err := config.Load(path, fs); err != nil {
		fmt.Fprintf(os.Stderr, "lander-sim: %v\n", err)
		return 1
	}

	log := logging.New(os.Stderr, config.Log.Level)
	if *jsonLogs {
		log = logging.NewJSON(os.Stderr, config.Log.Level)
	}

	site, err := assets.Site(config.C.Site)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load landing site")
		return 1
	}

	c := config.Constants(site)
	sim, err := rocket.NewSimulation(c, site.SpawnX, site.SpawnY)
	if err != nil {
		log.Error().Err(err).Str("site", site.Name).Msg("Failed to create simulation")
		return 1
	}

	loop := runner.NewGameLoop(sim, config.FlightControls(c), autopilot.New(site.PadCenter()), log.With().Str("site", site.Name).Logger())
	loop.TickRate = *tickRate
	loop.MaxTicks = *maxTicks
	loop.Trace = *trace

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	outcome, err := loop.Run(ctx)
	if err != nil {
		log.Error().Err(err).Int("ticks", sim.Ticks()).Msg("Flight aborted")
		return 1
	}

	fmt.Println(outcome)
	if outcome != rocket.Win {
		return exitLose
	}
	return 0
}

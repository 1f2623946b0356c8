package main

import (
	"errors"
	"image"
	"os"

	"github.com/automoto/rocket-lander/assets"
	"github.com/automoto/rocket-lander/config"
	"github.com/automoto/rocket-lander/fonts"
	"github.com/automoto/rocket-lander/scenes"
	"github.com/automoto/rocket-lander/shared/leveldata"
	"github.com/automoto/rocket-lander/shared/logging"
	"github.com/automoto/rocket-lander/shared/settings"
	"github.com/automoto/rocket-lander/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(sites []*leveldata.Site) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	site, ok := leveldata.Find(sites, config.C.Site)
	if config.Debug.SkipMenu && ok {
		g.scene = scenes.NewFlightScene(g, sites, site)
	} else {
		if config.Debug.SkipMenu {
			log.Warn().Str("site", config.C.Site).Msg("Unknown site, showing menu")
		}
		g.scene = scenes.NewMenuScene(g, sites)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	fs := config.Flags("rocket-lander")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	path, _ := fs.GetString("config")
	if err := config.Load(path, fs); err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Logger = logging.New(os.Stderr, config.Log.Level)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("rocket-lander"); err != nil {
		log.Warn().Err(err).Msg("Could not initialize persistence")
	}
	systems.ApplySavedSettings(settings.Explicit{
		Site:     fs.Changed("site"),
		Hitboxes: fs.Changed("hitboxes"),
	})

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load fonts")
	}
	sites, err := assets.LoadSites()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load landing sites")
	}
	log.Info().Int("count", len(sites)).Msg("Loaded landing sites")

	ebiten.SetTPS(config.TicksPerSecond())
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(sites)); err != nil {
		log.Fatal().Err(err).Msg("Game exited")
	}
}

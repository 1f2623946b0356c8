package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/rocket-lander/components"
	"github.com/automoto/rocket-lander/shared/leveldata"
	"github.com/automoto/rocket-lander/systems"
	"github.com/automoto/rocket-lander/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FlightScene flies one rocket over one landing site.
type FlightScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	sites        []*leveldata.Site
	site         *leveldata.Site
	once         sync.Once
	failed       bool
}

func NewFlightScene(sc SceneChanger, sites []*leveldata.Site, site *leveldata.Site) *FlightScene {
	return &FlightScene{sceneChanger: sc, sites: sites, site: site}
}

func (fs *FlightScene) Update() {
	fs.once.Do(fs.configure)
	if fs.failed {
		fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger, fs.sites))
		return
	}

	fs.ecs.Update()

	if systems.MenuRequested(fs.ecs) {
		fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger, fs.sites))
	}
}

func (fs *FlightScene) Draw(screen *ebiten.Image) {
	if fs.ecs == nil {
		screen.Fill(color.Black)
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FlightScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateRestart)

	// Flight systems stop while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateRocket))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBeacon))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBanner))

	ecs.AddRenderer(components.LayerWorld, systems.DrawSite)
	ecs.AddRenderer(components.LayerWorld, systems.DrawRocket)
	ecs.AddRenderer(components.LayerWorld, systems.DrawDebug)
	ecs.AddRenderer(components.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(components.LayerHUD, systems.DrawBanner)
	ecs.AddRenderer(components.LayerHUD, systems.DrawPause)

	fs.ecs = ecs

	// The space must exist before anything that registers collision objects.
	factory.CreateSpace(fs.ecs, fs.site)
	factory.CreateSite(fs.ecs, fs.site)
	if _, err := factory.CreateRocket(fs.ecs, fs.site); err != nil {
		log.Error().Err(err).Msg("Could not start flight")
		fs.failed = true
		return
	}

	log.Info().
		Str("site", fs.site.Name).
		Float64("spawn_x", fs.site.SpawnX).
		Float64("spawn_y", fs.site.SpawnY).
		Msg("Flight started")
}

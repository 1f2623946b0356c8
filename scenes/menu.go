package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/rocket-lander/shared/leveldata"
	"github.com/automoto/rocket-lander/systems"
	"github.com/automoto/rocket-lander/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene lets the player pick a landing site
type MenuScene struct {
	sceneChanger SceneChanger
	sites        []*leveldata.Site
	picker       *ui.SitePickerUI
	once         sync.Once
}

func NewMenuScene(sc SceneChanger, sites []*leveldata.Site) *MenuScene {
	return &MenuScene{sceneChanger: sc, sites: sites}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.picker.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.picker == nil {
		return
	}
	ms.picker.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	picker, err := ui.NewSitePickerUI(ms.sites, ms.startFlight, func() {
		log.Info().Msg("Quit from menu")
		os.Exit(0)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build menu")
	}
	ms.picker = picker
}

func (ms *MenuScene) startFlight(site *leveldata.Site) {
	systems.SaveLastSite(site.Name)
	ms.sceneChanger.ChangeScene(NewFlightScene(ms.sceneChanger, ms.sites, site))
}

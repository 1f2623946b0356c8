package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/rocket-lander/components"
	cfg "github.com/automoto/rocket-lander/config"
	"github.com/automoto/rocket-lander/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the flight telemetry in the top-left corner and the
// site name in the top-right.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	rocketEntry, ok := components.Flight.First(ecs.World)
	if !ok {
		return
	}
	flight := components.Flight.Get(rocketEntry)
	s := flight.Sim.State()
	c := flight.Sim.Constants()

	pad := "off pad"
	if flight.OverPad {
		pad = "over pad"
	}

	lines := []struct {
		text string
		clr  color.Color
	}{
		{fmt.Sprintf("ALT   %7.1f", s.Altitude(c)), cfg.UI.HUDTextColor},
		{fmt.Sprintf("VX    %+7.2f", s.VX), limitColor(s.VX, c.MaxVX)},
		{fmt.Sprintf("VY    %+7.2f", s.VY), limitColor(s.VY, c.MaxVY)},
		{fmt.Sprintf("TILT  %+7.2f", s.Theta), limitColor(s.Theta, c.MaxTilt)},
		{fmt.Sprintf("SPIN  %+7.3f", s.W), cfg.UI.HUDTextColor},
		{fmt.Sprintf("THR   %7.2f", s.Thrust), cfg.UI.HUDTextColor},
		{pad, cfg.UI.HUDTextColor},
		{flight.Sim.Outcome().String(), cfg.UI.HUDTextColor},
	}

	face := fonts.Mono.Get()
	x := int(cfg.UI.HUDMargin)
	for i, l := range lines {
		y := int(cfg.UI.HUDMargin + cfg.UI.HUDLineHeight*float64(i+1))
		text.Draw(screen, l.text, face, x, y, l.clr)
	}

	if siteEntry, ok := components.Site.First(ecs.World); ok {
		title := components.Site.Get(siteEntry).Site.Title
		titleX := screen.Bounds().Dx() - int(cfg.UI.HUDMargin) - fonts.Width(fonts.Regular, title)
		text.Draw(screen, title, fonts.Regular.Get(), titleX, int(cfg.UI.HUDMargin+cfg.UI.HUDLineHeight), cfg.UI.HUDTextColor)
	}
}

// limitColor flags a readout that would fail touchdown.
func limitColor(v, limit float64) color.Color {
	if v < 0 {
		v = -v
	}
	if v >= limit {
		return cfg.UI.LoseColor
	}
	return cfg.UI.HUDTextColor
}

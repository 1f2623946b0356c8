package systems

import (
	"image/color"

	"github.com/automoto/rocket-lander/components"
	cfg "github.com/automoto/rocket-lander/config"
	"github.com/automoto/rocket-lander/shared/rocket"
	"github.com/automoto/rocket-lander/systems/factory"
	"github.com/automoto/rocket-lander/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	// pixel is scaled and rotated to draw the rocket body.
	pixel *ebiten.Image
)

// UpdateBeacon advances the pad beacon pulse, restarting it when done.
func UpdateBeacon(ecs *ecs.ECS) {
	dt := float32(1 / cfg.C.ReferenceRate)
	components.Beacon.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Beacon.Get(e)
		glow, _, done := b.Pulse.Update(dt)
		b.Glow = glow
		if done {
			b.Pulse = factory.NewBeaconPulse()
		}
	})
}

// DrawSite renders the background, the floor and the pad.
func DrawSite(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	siteEntry, ok := components.Site.First(ecs.World)
	if !ok {
		return
	}
	site := components.Site.Get(siteEntry).Site

	vector.FillRect(screen,
		float32(site.FloorX), float32(site.FloorY),
		float32(site.FloorWidth), float32(site.FloorHeight()),
		cfg.UI.FloorColor, false)

	glow := float32(1)
	if beacon, ok := components.Beacon.First(ecs.World); ok {
		glow = components.Beacon.Get(beacon).Glow
	}
	vector.FillRect(screen,
		float32(site.PadX), float32(site.FloorY-cfg.UI.PadThickness),
		float32(site.PadWidth), float32(cfg.UI.PadThickness),
		dim(cfg.UI.PadColor, glow), false)
}

// DrawRocket renders each rocket body rotated by theta and its thrust line.
func DrawRocket(ecs *ecs.ECS, screen *ebiten.Image) {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}

	tags.Rocket.Each(ecs.World, func(e *donburi.Entry) {
		flight := components.Flight.Get(e)
		s := flight.Sim.State()
		c := flight.Sim.Constants()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(c.BodyWidth, c.BodyHeight)
		drawOp.GeoM.Translate(-c.BodyWidth/2, -c.BodyHeight/2)
		drawOp.GeoM.Rotate(rocket.Radians(s.Theta))
		drawOp.GeoM.Translate(s.X, s.Y)
		drawOp.ColorScale.ScaleWithColor(cfg.UI.RocketColor)
		screen.DrawImage(pixel, drawOp)

		if s.Thrust <= 0 {
			return
		}
		ix, iy := rocket.Indicator(s, c)
		vector.StrokeLine(screen,
			float32(s.ThrustX), float32(s.ThrustY),
			float32(ix), float32(iy),
			2, cfg.UI.ThrustColor, true)
	})
}

// dim scales the color channels of c by f, leaving alpha alone.
func dim(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}

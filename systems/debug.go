package systems

import (
	"image/color"

	"github.com/automoto/rocket-lander/components"
	"github.com/automoto/rocket-lander/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPad) {
			c = color.RGBA{0, 200, 0, 255}
		} else if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvRocket) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	}

	// Column searched for the pad.
	if rocketEntry, ok := components.Flight.First(ecs.World); ok {
		flight := components.Flight.Get(rocketEntry)
		s := flight.Sim.State()
		c := color.RGBA{255, 0, 0, 255}
		if flight.OverPad {
			c = color.RGBA{0, 200, 0, 255}
		}
		floorY := flight.Sim.Constants().FloorY
		vector.StrokeLine(screen, float32(s.X), float32(s.Y), float32(s.X), float32(floorY), 1, c, false)
	}
}

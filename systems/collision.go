package systems

import (
	"github.com/automoto/rocket-lander/components"
	"github.com/automoto/rocket-lander/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves each rocket's resolv object to the simulated body
// and looks straight down for the pad. Touchdown itself is decided by the
// simulation; the check only feeds the HUD.
func UpdateCollisions(ecs *ecs.ECS) {
	siteEntry, ok := components.Site.First(ecs.World)
	if !ok {
		return
	}
	site := components.Site.Get(siteEntry).Site

	tags.Rocket.Each(ecs.World, func(e *donburi.Entry) {
		flight := components.Flight.Get(e)
		obj := components.Object.Get(e)
		s := flight.Sim.State()

		obj.X = s.X - obj.W/2
		obj.Y = s.Y - obj.H/2
		obj.Update()

		flight.OverPad = padBelow(obj.Object, s.X, site.FloorY)
	})
}

// padBelow reports whether a pad lies below the rocket whose center is x.
// The check looks at the cells the body would occupy resting on the floor.
func padBelow(obj *resolv.Object, x, floorY float64) bool {
	dy := floorY - (obj.Y + obj.H)
	if dy < 0 {
		dy = 0
	}

	check := obj.Check(0, dy, tags.ResolvPad)
	if check == nil {
		return false
	}
	for _, pad := range check.ObjectsByTags(tags.ResolvPad) {
		if pad.X < x && x < pad.X+pad.W {
			return true
		}
	}
	return false
}

package factory

import (
	"fmt"

	"github.com/automoto/rocket-lander/archetypes"
	"github.com/automoto/rocket-lander/components"
	cfg "github.com/automoto/rocket-lander/config"
	"github.com/automoto/rocket-lander/shared/leveldata"
	"github.com/automoto/rocket-lander/shared/rocket"
	"github.com/automoto/rocket-lander/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRocket spawns the rocket at the site's spawn point.
func CreateRocket(ecs *ecs.ECS, site *leveldata.Site) (*donburi.Entry, error) {
	c := cfg.Constants(site)
	sim, err := rocket.NewSimulation(c, site.SpawnX, site.SpawnY)
	if err != nil {
		return nil, fmt.Errorf("create rocket for site %s: %w", site.Name, err)
	}

	r := archetypes.Rocket.Spawn(ecs)

	s := sim.State()
	obj := resolv.NewObject(s.X-c.BodyWidth/2, s.Y-c.BodyHeight/2, c.BodyWidth, c.BodyHeight, tags.ResolvRocket)
	obj.SetShape(resolv.NewRectangle(0, 0, c.BodyWidth, c.BodyHeight))
	obj.Data = r
	addToSpace(ecs, obj)

	components.Object.SetValue(r, components.ObjectData{Object: obj})
	components.Flight.SetValue(r, components.FlightData{
		Sim:      sim,
		Controls: cfg.FlightControls(c),
		Reported: rocket.Continue,
	})

	return r, nil
}

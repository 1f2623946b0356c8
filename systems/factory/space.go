package factory

import (
	"github.com/automoto/rocket-lander/archetypes"
	"github.com/automoto/rocket-lander/components"
	"github.com/automoto/rocket-lander/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CellSize is the resolv grid cell edge, one TMX tile.
const CellSize = 20

func CreateSpace(ecs *ecs.ECS, site *leveldata.Site) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(site.MapWidth, site.MapHeight, CellSize, CellSize)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the world's space, if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

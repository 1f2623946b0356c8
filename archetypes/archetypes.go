package archetypes

import (
	"github.com/automoto/rocket-lander/components"
	"github.com/automoto/rocket-lander/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Rocket = newArchetype(
		tags.Rocket,
		components.Flight,
		components.Object,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Object,
	)
	Pad = newArchetype(
		tags.Pad,
		components.Object,
	)
	Beacon = newArchetype(
		tags.Beacon,
		components.Beacon,
	)
	Banner = newArchetype(
		components.Banner,
	)
	Space = newArchetype(
		components.Space,
	)
	Site = newArchetype(
		components.Site,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		components.LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}

package factory

import (
	"github.com/automoto/rocket-lander/archetypes"
	"github.com/automoto/rocket-lander/components"
	cfg "github.com/automoto/rocket-lander/config"
	"github.com/automoto/rocket-lander/shared/leveldata"
	"github.com/automoto/rocket-lander/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSite spawns the site entity with its floor, pad and pad beacon.
// The collision space must exist first.
func CreateSite(ecs *ecs.ECS, site *leveldata.Site) *donburi.Entry {
	entry := archetypes.Site.Spawn(ecs)
	components.Site.SetValue(entry, components.SiteData{Site: site})

	createStatic(ecs, archetypes.Floor.Spawn(ecs), site.FloorX, site.FloorY, site.FloorWidth, site.FloorHeight(), tags.ResolvSolid)

	padH := site.PadHeight
	if padH <= 0 {
		padH = cfg.UI.PadThickness
	}
	createStatic(ecs, archetypes.Pad.Spawn(ecs), site.PadX, site.FloorY-padH, site.PadWidth, padH, tags.ResolvSolid, tags.ResolvPad)

	CreateBeacon(ecs)
	return entry
}

func createStatic(ecs *ecs.ECS, e *donburi.Entry, x, y, w, h float64, resolvTags ...string) *donburi.Entry {
	obj := resolv.NewObject(x, y, w, h, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e

	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return e
}

// CreateBeacon spawns the pad beacon. Its brightness pulses back and forth
// on a *gween.Sequence that UpdateBeacon restarts when it finishes.
func CreateBeacon(ecs *ecs.ECS) *donburi.Entry {
	beacon := archetypes.Beacon.Spawn(ecs)
	components.Beacon.SetValue(beacon, components.BeaconData{
		Pulse: NewBeaconPulse(),
		Glow:  1,
	})
	return beacon
}

func NewBeaconPulse() *gween.Sequence {
	half := cfg.UI.BeaconPulseSecs
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0.3, 1, half, ease.InOutSine),
		gween.New(1, 0.3, half, ease.InOutSine),
	)
	return tw
}

package factory

import (
	"github.com/automoto/rocket-lander/archetypes"
	"github.com/automoto/rocket-lander/components"
	cfg "github.com/automoto/rocket-lander/config"
	"github.com/automoto/rocket-lander/shared/rocket"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBanner spawns the outcome banner, fading in from transparent.
func CreateBanner(ecs *ecs.ECS, outcome rocket.Outcome) *donburi.Entry {
	banner := archetypes.Banner.Spawn(ecs)
	components.Banner.SetValue(banner, components.BannerData{
		Outcome: outcome,
		Fade:    gween.New(0, 1, cfg.UI.BannerFadeSecs, ease.OutQuad),
	})
	return banner
}

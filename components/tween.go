package components

import (
	"github.com/automoto/rocket-lander/shared/rocket"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BeaconData pulses the pad marker. Glow is the current brightness in [0,1].
type BeaconData struct {
	Pulse *gween.Sequence
	Glow  float32
}

var Beacon = donburi.NewComponentType[BeaconData]()

// BannerData fades in the outcome text once the round ends.
type BannerData struct {
	Outcome rocket.Outcome
	Fade    *gween.Tween
	Alpha   float32
}

var Banner = donburi.NewComponentType[BannerData]()

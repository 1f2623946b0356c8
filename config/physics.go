package config

import (
	"github.com/automoto/rocket-lander/shared/leveldata"
	"github.com/automoto/rocket-lander/shared/rocket"
)

// Constants builds the flight model parameters for a landing site.
func Constants(site *leveldata.Site) rocket.Constants {
	return rocket.Constants{
		Mass:           Rocket.Mass,
		Gravity:        Rocket.Gravity,
		Inertia:        Rocket.Inertia,
		BodyWidth:      Rocket.BodyWidth,
		BodyHeight:     Rocket.BodyHeight,
		FloorY:         site.FloorY,
		PadX:           site.PadX,
		PadWidth:       site.PadWidth,
		ReferenceRate:  C.ReferenceRate,
		MaxTilt:        Landing.MaxTilt,
		MaxVX:          Landing.MaxVX,
		MaxVY:          Landing.MaxVY,
		IndicatorScale: UI.IndicatorScale,
	}
}

// FlightControls builds the key mapping for the given constants.
func FlightControls(c rocket.Constants) rocket.Controls {
	ctl := rocket.NewControls(c, Controls.ThrustMargin)
	ctl.Gimbal = Controls.Gimbal
	return ctl
}

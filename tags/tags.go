package tags

import "github.com/yohamta/donburi"

var (
	Rocket = donburi.NewTag().SetName("Rocket")
	Floor  = donburi.NewTag().SetName("Floor")
	Pad    = donburi.NewTag().SetName("Pad")
	Beacon = donburi.NewTag().SetName("Beacon")
)

// Resolv tags for the collision space
const (
	ResolvSolid  = "solid"
	ResolvPad    = "pad"
	ResolvRocket = "Rocket"
)

package components

import "github.com/yohamta/donburi"

// SettingsData holds the per-session toggles.
type SettingsData struct {
	Paused bool
	Debug  bool // resolv overlay
}

var Settings = donburi.NewComponentType[SettingsData]()

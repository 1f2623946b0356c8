package components

import (
	cfg "github.com/automoto/rocket-lander/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Pressed reports whether the action is held this frame.
func (i *InputData) Pressed(action cfg.ActionID) bool {
	return i.Current[action]
}

// JustPressed reports whether the action went down this frame.
func (i *InputData) JustPressed(action cfg.ActionID) bool {
	return i.Current[action] && !i.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()

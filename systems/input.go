package systems

import (
	"github.com/automoto/rocket-lander/components"
	cfg "github.com/automoto/rocket-lander/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Bindings maps each action to the keys that trigger it.
var Bindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionThrust:      {ebiten.KeyUp, ebiten.KeyW},
	cfg.ActionGimbalLeft:  {ebiten.KeyLeft, ebiten.KeyA},
	cfg.ActionGimbalRight: {ebiten.KeyRight, ebiten.KeyD},
	cfg.ActionRestart:     {ebiten.KeyR},
	cfg.ActionPause:       {ebiten.KeyP, ebiten.KeyEscape},
	cfg.ActionDebug:       {ebiten.KeyF3},
	cfg.ActionMenu:        {ebiten.KeyM},
}

// UpdateInput polls the keyboard and updates the Input component.
// Must run BEFORE UpdateRocket in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range Bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// MenuRequested reports whether the return-to-menu key went down this frame.
func MenuRequested(ecs *ecs.ECS) bool {
	return getOrCreateInput(ecs).JustPressed(cfg.ActionMenu)
}

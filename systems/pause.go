package systems

import (
	"github.com/automoto/rocket-lander/components"
	cfg "github.com/automoto/rocket-lander/config"
	"github.com/automoto/rocket-lander/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the pause and debug overlay toggles.
// This system should run AFTER UpdateInput but BEFORE the flight systems.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if input.JustPressed(cfg.ActionPause) {
		settings.Paused = !settings.Paused
		log.Debug().Bool("paused", settings.Paused).Msg("Pause toggled")
	}

	if input.JustPressed(cfg.ActionDebug) {
		settings.Debug = !settings.Debug
		SaveShowHitboxes(settings.Debug)
	}
}

// WithPauseCheck wraps a system so it is skipped while paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if GetOrCreateSettings(ecs).Paused {
			return
		}
		system(ecs)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug: cfg.Debug.ShowHitboxes,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

// DrawPause dims the scene and shows the pause hint.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).Paused {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.UI.OverlayColor, false)

	title := "PAUSED"
	titleX := (width - fonts.Width(fonts.Title, title)) / 2
	text.Draw(screen, title, fonts.Title.Get(), titleX, height/2, cfg.White)

	hint := "P / ESC resume    R restart    M menu"
	hintX := (width - fonts.Width(fonts.Small, hint)) / 2
	text.Draw(screen, hint, fonts.Small.Get(), hintX, height/2+30, cfg.White)
}

package systems

import (
	cfg "github.com/automoto/rocket-lander/config"
	"github.com/automoto/rocket-lander/shared/settings"
	"github.com/rs/zerolog/log"
)

var store *settings.Store

// InitPersistence opens the settings storage. The game runs without
// persistence if this fails.
func InitPersistence(appName string) error {
	s, err := settings.Open(appName)
	if err != nil {
		return err
	}
	store = s
	return nil
}

// ApplySavedSettings overlays saved preferences onto the configuration.
// Explicit flags win over anything saved.
func ApplySavedSettings(explicit settings.Explicit) {
	if store == nil {
		return
	}

	saved, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Could not load settings")
		return
	}
	if saved == nil {
		return
	}

	merged := saved.Overlay(settings.Saved{
		ShowHitboxes: cfg.Debug.ShowHitboxes,
		LastSite:     cfg.C.Site,
	}, explicit)
	cfg.Debug.ShowHitboxes = merged.ShowHitboxes
	cfg.C.Site = merged.LastSite
	log.Debug().
		Bool("hitboxes", merged.ShowHitboxes).
		Str("site", merged.LastSite).
		Msg("Applied saved settings")
}

func SaveShowHitboxes(show bool) {
	saveSettings(func(s *settings.Saved) { s.ShowHitboxes = show })
}

func SaveLastSite(name string) {
	saveSettings(func(s *settings.Saved) { s.LastSite = name })
}

func saveSettings(fn func(*settings.Saved)) {
	if store == nil {
		return
	}
	if err := store.Update(fn); err != nil {
		log.Warn().Err(err).Msg("Could not save settings")
	}
}

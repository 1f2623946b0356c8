// Package settings persists player preferences between sessions. Scores and
// replays are never stored.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const itemKey = "settings"

// Saved is the settings document stored on disk.
type Saved struct {
	ShowHitboxes bool   `json:"showHitboxes"`
	LastSite     string `json:"lastSite"`
}

// Explicit marks the preferences given on the command line for this run.
type Explicit struct {
	Site     bool
	Hitboxes bool
}

// Overlay returns current with the saved preferences applied. Explicit
// preferences are kept as given, and an empty saved site is ignored.
func (s *Saved) Overlay(current Saved, explicit Explicit) Saved {
	if s == nil {
		return current
	}
	if !explicit.Hitboxes {
		current.ShowHitboxes = s.ShowHitboxes
	}
	if !explicit.Site && s.LastSite != "" {
		current.LastSite = s.LastSite
	}
	return current
}

// ItemStore is the subset of *gdata.Manager the store needs.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

type Store struct {
	items ItemStore
}

// Open opens the per-user data directory for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return NewStore(m), nil
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

// Load returns the saved settings, or nil when nothing was saved yet.
func (s *Store) Load() (*Saved, error) {
	data, err := s.items.LoadItem(itemKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var saved Saved
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &saved, nil
}

func (s *Store) Save(saved *Saved) error {
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.items.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Update loads the current settings, applies fn and saves the result.
func (s *Store) Update(fn func(*Saved)) error {
	saved, err := s.Load()
	if err != nil {
		return err
	}
	if saved == nil {
		saved = &Saved{}
	}
	fn(saved)
	return s.Save(saved)
}

package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings holds the small amount of state that survives restarts:
// display preference and the class the player last entered the game with.
// Gameplay progression is deliberately not persisted here.
type GameSettings struct {
	Fullscreen  bool   `yaml:"fullscreen"`  // Start in fullscreen
	LastClassID string `yaml:"lastClassId"` // Class chosen in the previous session ("" for none)
}

// DefaultSettings returns the settings for a fresh install.
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Fullscreen:  false,
		LastClassID: "",
	}
}

// SettingsManager loads and saves GameSettings through gdata's
// cross-platform storage. A nil gdata manager puts it in degraded mode:
// settings live in memory only and Save is a silent no-op.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
}

// Storage location constants.
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager creates a settings manager and loads any previously
// saved settings. A load failure is not fatal; defaults are used.
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load reads settings from gdata. Missing storage or a missing settings
// object falls back to defaults without error.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded GameSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	return nil
}

// Save writes the current settings to gdata. In degraded mode it does
// nothing and returns nil.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings returns the in-memory settings instance.
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetLastClass records the class id chosen this session.
// Only the in-memory settings change; call Save to persist.
func (sm *SettingsManager) SetLastClass(classID string) {
	sm.settings.LastClassID = classID
}

// LastClass returns the class id chosen in the previous session, or "".
func (sm *SettingsManager) LastClass() string {
	return sm.settings.LastClassID
}

// SetFullscreen records the fullscreen preference.
// Only the in-memory settings change; call Save to persist.
func (sm *SettingsManager) SetFullscreen(fullscreen bool) {
	sm.settings.Fullscreen = fullscreen
}

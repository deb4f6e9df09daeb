package celebrate

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Preferences are the user-facing toggles persisted between runs.
type Preferences struct {
	// ReducedMotion limits Celebrate to its opening confetti burst.
	ReducedMotion bool `yaml:"reducedMotion"`
	ShowHUD       bool `yaml:"showHUD"`
}

// DefaultPreferences returns the preferences used on first run.
func DefaultPreferences() *Preferences {
	return &Preferences{}
}

const (
	prefsObject   = "preferences"
	prefsProperty = "global"
)

// PreferenceStore loads and saves Preferences through gdata. A store without
// a gdata manager keeps preferences in memory only.
type PreferenceStore struct {
	manager *gdata.Manager // nil means memory only
	prefs   *Preferences
}

// NewPreferenceStore returns a store over manager and loads any saved
// preferences. Load failures are logged and the defaults are kept.
func NewPreferenceStore(manager *gdata.Manager) *PreferenceStore {
	ps := &PreferenceStore{manager: manager, prefs: DefaultPreferences()}
	if err := ps.Load(); err != nil {
		log.Printf("[Preferences] Warning: %v (using defaults)", err)
	}
	return ps
}

// OpenPreferenceStore opens the per-user data directory for appName. When the
// directory cannot be opened the store falls back to memory only.
func OpenPreferenceStore(appName string) *PreferenceStore {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Preferences] Warning: open %q: %v (preferences will not persist)", appName, err)
		manager = nil
	}
	return NewPreferenceStore(manager)
}

// Load replaces the in-memory preferences with the saved ones. Missing data
// yields the defaults.
func (ps *PreferenceStore) Load() error {
	if ps.manager == nil || !ps.manager.ObjectPropExists(prefsObject, prefsProperty) {
		ps.prefs = DefaultPreferences()
		return nil
	}

	data, err := ps.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		ps.prefs = DefaultPreferences()
		return fmt.Errorf("load preferences: %w", err)
	}

	loaded := DefaultPreferences()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		ps.prefs = DefaultPreferences()
		return fmt.Errorf("unmarshal preferences: %w", err)
	}
	ps.prefs = loaded
	log.Printf("[Preferences] Loaded")
	return nil
}

// Save writes the in-memory preferences. It is a no-op for a memory-only
// store.
func (ps *PreferenceStore) Save() error {
	if ps.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(ps.prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := ps.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	log.Printf("[Preferences] Saved")
	return nil
}

// Preferences returns the live preferences. Setters modify memory only; call
// Save to persist.
func (ps *PreferenceStore) Preferences() *Preferences {
	return ps.prefs
}

// SetReducedMotion sets the reduced-motion toggle.
func (ps *PreferenceStore) SetReducedMotion(enabled bool) {
	ps.prefs.ReducedMotion = enabled
}

// SetShowHUD sets the stats overlay toggle.
func (ps *PreferenceStore) SetShowHUD(enabled bool) {
	ps.prefs.ShowHUD = enabled
}

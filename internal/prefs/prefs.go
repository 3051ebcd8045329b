// Package prefs handles user preferences persistence.
// Preferences are a loosely typed JSON object stored under the userPreferences
// storage key; fields this package does not know about survive a load/save
// cycle untouched.
package prefs

import (
	"context"
	"maps"
	"strings"

	"github.com/five82/studio/internal/storage"
)

// Known preference fields.
const (
	FieldDarkMode      = "darkMode"
	FieldHighContrast  = "highContrast"
	FieldNotifications = "notifications"
	FieldAutosave      = "autosave"
	FieldTheme         = "theme"
)

// Prefs is an immutable view of the preferences object.
type Prefs struct {
	values map[string]any
}

// New wraps values. The map is copied.
func New(values map[string]any) Prefs {
	return Prefs{values: maps.Clone(values)}
}

// Values returns a copy of the underlying object, never nil.
func (p Prefs) Values() map[string]any {
	if p.values == nil {
		return map[string]any{}
	}
	return maps.Clone(p.values)
}

// Bool reports a boolean field, or def when the field is absent or not a
// boolean.
func (p Prefs) Bool(field string, def bool) bool {
	b, ok := p.values[field].(bool)
	if !ok {
		return def
	}
	return b
}

func (p Prefs) DarkMode() bool      { return p.Bool(FieldDarkMode, false) }
func (p Prefs) HighContrast() bool  { return p.Bool(FieldHighContrast, false) }
func (p Prefs) Notifications() bool { return p.Bool(FieldNotifications, false) }

// Autosave defaults to on.
func (p Prefs) Autosave() bool { return p.Bool(FieldAutosave, true) }

// Theme returns the explicit theme name, or "" when unset.
func (p Prefs) Theme() string {
	s, _ := p.values[FieldTheme].(string)
	return strings.TrimSpace(s)
}

// With returns a copy with field set to v.
func (p Prefs) With(field string, v any) Prefs {
	next := p.Values()
	next[field] = v
	return Prefs{values: next}
}

// Equal reports whether both views have the same keys and the same scalar
// values. Nested objects are only compared by presence.
func (p Prefs) Equal(other Prefs) bool {
	if len(p.values) != len(other.values) {
		return false
	}
	for k, v := range p.values {
		ov, ok := other.values[k]
		if !ok {
			return false
		}
		switch v.(type) {
		case bool, string, float64, nil:
			if v != ov {
				return false
			}
		}
	}
	return true
}

// Load reads preferences from kv. A malformed stored value is returned as an
// error alongside empty preferences so callers can keep running.
func Load(ctx context.Context, kv storage.KV) (Prefs, error) {
	values, err := storage.UserPreferences(ctx, kv)
	return Prefs{values: values}, err
}

// Save writes p to kv.
func Save(ctx context.Context, kv storage.KV, p Prefs) error {
	return storage.SaveToStorage(ctx, kv, storage.KeyUserPreferences, p.Values())
}

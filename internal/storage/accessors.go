package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// RecentDesigns returns the recentDesigns list, or an empty list when the key
// is absent. A malformed value yields the empty list and a *DecodeError.
func RecentDesigns(ctx context.Context, kv KV) ([]json.RawMessage, error) {
	return readList(ctx, kv, KeyRecentDesigns)
}

// TemplateCategories returns the templateCategories list with the same
// fallback rules as RecentDesigns.
func TemplateCategories(ctx context.Context, kv KV) ([]json.RawMessage, error) {
	return readList(ctx, kv, KeyTemplateCategories)
}

// UserPreferences returns the userPreferences object, or an empty object when
// the key is absent or malformed.
func UserPreferences(ctx context.Context, kv KV) (map[string]any, error) {
	out := map[string]any{}
	raw, ok, err := kv.Get(ctx, KeyUserPreferences)
	if err != nil {
		return out, fmt.Errorf("read %s: %w", KeyUserPreferences, err)
	}
	if !ok {
		return out, nil
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return out, &DecodeError{Key: KeyUserPreferences, Err: err}
	}
	if decoded == nil {
		// JSON null
		return out, nil
	}
	return decoded, nil
}

// SaveToStorage JSON-encodes data and stores it under key.
func SaveToStorage(ctx context.Context, kv KV, key string, data any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(encoded)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func readList(ctx context.Context, kv KV, key string) ([]json.RawMessage, error) {
	out := []json.RawMessage{}
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return out, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return out, nil
	}
	var decoded []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return out, &DecodeError{Key: key, Err: err}
	}
	if decoded == nil {
		return out, nil
	}
	return decoded, nil
}

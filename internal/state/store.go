package state

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/five82/studio/internal/prefs"
)

// Data is one read of the storage-backed landing page data. A value that
// failed to decode holds its documented default.
type Data struct {
	RecentDesigns      []json.RawMessage
	TemplateCategories []json.RawMessage
	Preferences        prefs.Prefs
	// PreferencesErr is set when the stored preferences could not be read;
	// Preferences is then the empty default and must not be written back.
	PreferencesErr error
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Data
	HasData             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive refresh failures
}

// IsDegraded returns true when storage has failed on several refreshes in a row.
func (s Snapshot) IsDegraded() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored data. When err is non-nil and data is nil the
// previous data is kept; with both set the partial data replaces it. Either
// way the error is recorded for visibility.
func (s *Store) Update(data *Data, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		if data != nil {
			s.snapshot.Data = cloneData(*data)
			s.snapshot.HasData = true
		}
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if data != nil {
		s.snapshot.Data = cloneData(*data)
		s.snapshot.HasData = true
	} else {
		s.snapshot.Data = Data{}
		s.snapshot.HasData = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Data = cloneData(s.snapshot.Data)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneData(d Data) Data {
	return Data{
		RecentDesigns:      cloneList(d.RecentDesigns),
		TemplateCategories: cloneList(d.TemplateCategories),
		Preferences:        prefs.New(d.Preferences.Values()),
		PreferencesErr:     d.PreferencesErr,
	}
}

func cloneList(items []json.RawMessage) []json.RawMessage {
	if len(items) == 0 {
		return nil
	}
	dup := make([]json.RawMessage, len(items))
	for i, item := range items {
		dup[i] = append(json.RawMessage(nil), item...)
	}
	return dup
}

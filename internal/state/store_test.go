package state

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/studio/internal/prefs"
)

func sampleData() *Data {
	return &Data{
		RecentDesigns:      []json.RawMessage{json.RawMessage(`{"title":"Poster"}`), json.RawMessage(`{"title":"Deck"}`)},
		TemplateCategories: []json.RawMessage{json.RawMessage(`{"name":"Social media"}`)},
		Preferences:        prefs.New(map[string]any{prefs.FieldDarkMode: true}),
	}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update(sampleData(), nil)

	snap := s.Snapshot()
	if !snap.HasData {
		t.Fatal("HasData = false, want true")
	}
	if len(snap.RecentDesigns) != 2 || string(snap.RecentDesigns[0]) != `{"title":"Poster"}` {
		t.Fatalf("RecentDesigns = %s, want 2 items", snap.RecentDesigns)
	}
	if !snap.Preferences.DarkMode() {
		t.Fatal("Preferences.DarkMode() = false, want true")
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.RecentDesigns[0][2] = 'X'
	snap2 := s.Snapshot()
	if string(snap2.RecentDesigns[0]) != `{"title":"Poster"}` {
		t.Fatalf("Snapshot should clone entries; got %s", snap2.RecentDesigns[0])
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(sampleData(), nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if snap.HasData != prev.HasData {
		t.Fatalf("HasData changed on error: got %v want %v", snap.HasData, prev.HasData)
	}
	if !reflect.DeepEqual(snap.TemplateCategories, prev.TemplateCategories) {
		t.Fatalf("categories changed on error: got %s want %s", snap.TemplateCategories, prev.TemplateCategories)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatal("cloned error should wrap the original")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsDegraded() {
		t.Fatalf("initial failures = %d degraded = %v, want 0/false", snap.ConsecutiveFailures, snap.IsDegraded())
	}

	s.Update(nil, errors.New("fail 1"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 1 || snap.IsDegraded() {
		t.Fatalf("after one failure: failures = %d degraded = %v, want 1/false", snap.ConsecutiveFailures, snap.IsDegraded())
	}

	s.Update(nil, errors.New("fail 2"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 2 || !snap.IsDegraded() {
		t.Fatalf("after two failures: failures = %d degraded = %v, want 2/true", snap.ConsecutiveFailures, snap.IsDegraded())
	}

	s.Update(sampleData(), nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsDegraded() {
		t.Fatalf("after success: failures = %d degraded = %v, want 0/false", snap.ConsecutiveFailures, snap.IsDegraded())
	}
}

func TestStore_NilDataClearsHasData(t *testing.T) {
	var s Store
	s.Update(sampleData(), nil)
	s.Update(nil, nil)

	snap := s.Snapshot()
	if snap.HasData {
		t.Fatal("HasData = true after nil update")
	}
	if len(snap.RecentDesigns) != 0 {
		t.Fatalf("RecentDesigns = %s, want empty", snap.RecentDesigns)
	}
}

func TestStore_PartialUpdateReplacesDataAndRecordsError(t *testing.T) {
	var s Store
	s.Update(sampleData(), nil)

	readErr := errors.New("recentDesigns: bad json")
	s.Update(&Data{
		TemplateCategories: []json.RawMessage{json.RawMessage(`{"name":"Video"}`)},
		Preferences:        prefs.New(map[string]any{"fontSize": 14.0}),
	}, readErr)

	snap := s.Snapshot()
	if !snap.HasData {
		t.Fatal("HasData = false after partial update")
	}
	if len(snap.RecentDesigns) != 0 {
		t.Fatalf("RecentDesigns = %s, want default empty list", snap.RecentDesigns)
	}
	if len(snap.TemplateCategories) != 1 {
		t.Fatalf("TemplateCategories = %s, want 1 entry", snap.TemplateCategories)
	}
	if got := snap.Preferences.Values()["fontSize"]; got != 14.0 {
		t.Fatalf("fontSize = %v, want 14", got)
	}
	if !errors.Is(snap.LastError, readErr) || snap.ConsecutiveFailures != 1 {
		t.Fatalf("LastError = %v failures = %d, want recorded error and 1", snap.LastError, snap.ConsecutiveFailures)
	}
}

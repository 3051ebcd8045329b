// Package state provides thread-safe state management for studio.
//
// # Overview
//
// The Store shares the storage-backed landing page data (recent designs,
// template categories and user preferences) between the background poller
// and the UI. The poller is the only writer; the UI reads snapshots on its
// own tick.
//
//	Producer (poller):             Consumer (UI):
//	┌────────────────────┐        ┌──────────────────┐
//	│ storage accessors  │        │                  │
//	│        ↓           │        │                  │
//	│ store.Update()     │───────→│ store.Snapshot() │
//	│        ↓           │ (mutex)│        ↓         │
//	│  wait / back off   │        │   render view    │
//	└────────────────────┘        └──────────────────┘
//
// # Update Semantics
//
//	// Success: replace data, clear error, reset failure count
//	store.Update(&data, nil)
//
//	// Failure: keep previous data, record error, count the failure
//	store.Update(nil, err)
//
//	// Partial read: replace data, record error, count the failure
//	store.Update(&data, err)
//
// A malformed stored value therefore never blanks the page. The keys that
// still decode are shown, the broken one falls back to its default and the
// error surfaces in the header.
//
// # Defensive Copying
//
// Update and Snapshot both deep copy the lists and the preferences object,
// so neither side can observe the other's mutations. Errors are re-wrapped
// so errors.Is still matches the original.
//
// The zero Store is ready to use.
package state

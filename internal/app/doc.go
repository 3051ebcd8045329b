// Package app provides the orchestration layer for the studio application.
//
// # Overview
//
// This package wires together configuration, logging, storage, the page
// template, polling and the UI. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
//  1. Load ~/.config/studio/config.toml and apply command line overrides
//  2. Open the log file (the TUI owns the terminal)
//  3. Open the SQLite key-value store, or an in-memory one with --ephemeral
//  4. Load and parse the landing page template
//  5. Create the shared state.Store and launch the background poller
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Components
//
//   - app.go: Resolve, OpenStorage and the main Run function
//   - poller.go: Background goroutine that re-reads storage periodically
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> Resolve()           Config file + overrides
//	       ├─────> logging.Open()      Log file
//	       ├─────> OpenStorage()       SQLite or memory
//	       ├─────> page.Load()         Landing page template
//	       ├─────> StartPoller()       Launch background refresh
//	       └─────> ui.Run()            Start TUI (blocks)
//
//	Background Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│                                         │
//	│  refresh() ─> recentDesigns             │
//	│            ─> templateCategories        │
//	│            ─> userPreferences           │
//	│            ─> store.Update()            │
//	│                                         │
//	│  on error: back off exponentially,      │
//	│  capped at 30s, previous data kept      │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// Startup errors (config, log file, storage, page template) abort Run.
// Storage read errors during polling are recorded on the snapshot and the
// UI shows them in the header.
package app

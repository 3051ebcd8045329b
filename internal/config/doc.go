// Package config handles loading and parsing the studio configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/studio/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty/non-positive, use defaults
//
// # Default Values
//
//   - Storage database: ~/.local/share/studio/storage.db
//   - Page template: embedded landing page
//   - Log file: ~/.local/state/studio/studio.log (level info)
//   - Search debounce: 300ms
//   - Delay before post-dialog alerts: 300ms
//   - Storage refresh: every 2s
//
// # TOML Format
//
//	storage_path = "~/.local/share/studio/storage.db"
//	page_path = "~/sites/landing/index.html"
//	log_path = "~/.local/state/studio/studio.log"
//	log_level = "debug"
//	search_debounce_ms = 300
//	action_delay_ms = 300
//	refresh_seconds = 2
//
// All fields are optional. Tilde expansion is performed for every path.
//
// # Error Handling
//
// Missing config files are NOT an error. Load returns errors for path
// expansion failures, read errors, invalid TOML and unknown log levels.
// Command-line flags are applied by the caller after Load.
package config

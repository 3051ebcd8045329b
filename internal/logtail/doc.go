// Package logtail reads the tail of the studio log file and turns its records
// into activity console lines.
//
// # Reading
//
// Read scans the file once and keeps at most 2×maxLines lines in memory,
// compacting to the newest maxLines whenever the buffer doubles. A missing
// file is not an error; a fresh install simply starts with an empty console.
//
//	lines, err := logtail.Read("~/.local/state/studio/studio.log", 200)
//
// # Console format
//
// The log file is written by a slog text handler:
//
//	time=2025-10-08T21:01:05.123+02:00 level=INFO msg="Searching for" query=logo
//
// ConsoleLine rewrites such a record into the compact form the console shows:
//
//	21:01:05 INFO  Searching for query=logo
//
// Quoted values keep their quotes except for the message itself. Lines that
// do not look like slog records (panics, output of other tools) pass through
// unchanged. The UI formats its own live log lines with FormatRecord so that
// seeded and live lines look the same.
package logtail

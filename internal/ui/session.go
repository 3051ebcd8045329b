package ui

import "github.com/five82/studio/internal/design"

// session is the per-run UI state. It lives on the Model and is never persisted.
type session struct {
	tab   design.Tab
	query string

	// searchSeq identifies the latest pending suggestion lookup. A lookup
	// whose sequence number is older than this is stale.
	searchSeq int
}

func newSession() session {
	return session{tab: design.TabTemplates}
}

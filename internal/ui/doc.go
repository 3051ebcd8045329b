// Package ui provides the terminal rendition of the Studio landing page.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. The page layout comes from the HTML
// template in package page; every interactive element of the template is
// bound to a listener when the Model is built (see bindings.go). Binding
// fails when the template lacks an element a listener needs.
//
// # Package Structure
//
//   - app.go: Model, Update loop, document keyboard shortcuts and Run
//   - bindings.go: listener table, focus handling and event dispatch
//   - search.go: search box, debounced suggestions and mock results
//   - tabs.go, navigation.go, cards.go, actions.go: element handlers
//   - modal*.go: dialog stack and the create, upgrade, settings and alert dialogs
//   - console.go: in-app activity log
//   - header.go, view.go, help.go: rendering
//
// # Event Mapping
//
// Focus stands in for the mouse: focusing an element fires mouseenter on it
// and mouseleave on the element that lost focus. Enter or space fires click.
// Text typed into the focused search box fires input; every key typed there
// also fires keypress. All keys pass the document shortcuts first.
//
// # Key Bindings
//
//   - Tab/Shift+Tab, arrows: Move focus
//   - Enter/Space: Click the focused element
//   - Ctrl+K: Focus search
//   - Esc: Clear and leave search, or close the top dialog
//   - Ctrl+N: Create a design
//   - L: Toggle the activity console
//   - y: Copy the editor location
//   - D: Toggle debug logging
//   - T: Cycle theme
//   - ?: Toggle help
//   - Ctrl+C: Exit
//
// # External Dependencies
//
//   - state.Store: storage snapshots refreshed by the app poller
//   - storage.KV: preferences and recent designs written by the handlers
//   - page: the parsed landing page template
package ui

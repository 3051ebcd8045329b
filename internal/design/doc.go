// Package design holds the domain vocabulary of the studio landing page.
//
// Everything here is pure: tab and destination resolution, the mock search
// backend, the suggestion list, slugs and editor location fragments, and the
// records the create flow writes to storage. The UI controller and the CLI
// both build on these functions so the two surfaces agree on behavior.
//
// # Tabs
//
// A tab element resolves to one of three states. The data-tab attribute wins
// when present; otherwise the visible text is matched by substring, checking
// "Your designs", "Templates" and "Canva AI" in that order:
//
//	ParseTab("", "Your designs")  // TabDesigns, true
//	ParseTab("ai", "Whatever")    // TabAI, true
//	ParseTab("", "Docs")          // TabTemplates, false
//
// # Destinations
//
// Navigation buttons resolve through data-nav or their icon classes. The
// destination order (home, projects, images, brand, apps, settings) decides
// which class wins when an icon carries several.
//
// # Editor fragments
//
// The editor is not part of this program. Opening one only produces a
// location fragment such as "#editor/social-media" or
// "#editor/existing/summer-flyer".
package design

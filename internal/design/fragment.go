package design

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug lowercases s and replaces each run of whitespace with a single dash.
func Slug(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(s), "-")
}

// EditorFragment is the location fragment for a new design of designType.
func EditorFragment(designType string) string {
	return "#editor/" + Slug(designType)
}

// ExistingEditorFragment is the location fragment for an existing design.
func ExistingEditorFragment(title string) string {
	return "#editor/existing/" + Slug(title)
}

package design

import (
	"fmt"
	"strings"
)

// Result is one entry of the mock search backend.
type Result struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Premium bool   `json:"premium"`
}

// Suggestions is the fixed list the search box filters while typing.
var Suggestions = []string{
	"Resume templates",
	"Business cards",
	"Social media posts",
	"Flyers",
	"Presentations",
}

// MockResults returns the four canned results for query. The query is used
// verbatim; callers decide whether a blank query is worth searching.
func MockResults(query string) []Result {
	return []Result{
		{Title: fmt.Sprintf("%s Template 1", query), Type: "template", Premium: false},
		{Title: fmt.Sprintf("%s Template 2", query), Type: "template", Premium: true},
		{Title: fmt.Sprintf("Professional %s", query), Type: "template", Premium: false},
		{Title: fmt.Sprintf("Modern %s Design", query), Type: "template", Premium: true},
	}
}

// Suggest filters Suggestions by case-insensitive substring. The result is
// never nil.
func Suggest(query string) []string {
	needle := strings.ToLower(query)
	out := make([]string, 0, len(Suggestions))
	for _, s := range Suggestions {
		if strings.Contains(strings.ToLower(s), needle) {
			out = append(out, s)
		}
	}
	return out
}

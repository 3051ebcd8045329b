package design

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Choice is one entry of the create-a-design dialog.
type Choice struct {
	Type  string
	Label string
	Icon  string
}

// CreateChoices lists the design types offered by the create dialog.
var CreateChoices = []Choice{
	{Type: "presentation", Label: "Presentation", Icon: "▤"},
	{Type: "social-media", Label: "Social Media Post", Icon: "◎"},
	{Type: "flyer", Label: "Flyer", Icon: "▯"},
	{Type: "resume", Label: "Resume", Icon: "☰"},
}

// ProFeatures is the static feature list of the upgrade dialog.
var ProFeatures = []string{
	"Unlimited premium templates",
	"Advanced photo editing tools",
	"Brand kit and team collaboration",
	"Priority support",
}

// MaxRecentDesigns bounds the recentDesigns list written by the create flow.
const MaxRecentDesigns = 20

// RecentDesign is the record the create flow stores under recentDesigns.
type RecentDesign struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRecentDesign builds a record for a freshly created design.
func NewRecentDesign(designType string, now time.Time) RecentDesign {
	title := designType
	for _, c := range CreateChoices {
		if c.Type == designType {
			title = "Untitled " + c.Label
			break
		}
	}
	return RecentDesign{
		ID:        uuid.NewString(),
		Title:     title,
		Type:      designType,
		CreatedAt: now.UTC(),
	}
}

// PrependRecent puts rec at the head of existing and trims the list to
// MaxRecentDesigns. Existing entries are kept verbatim.
func PrependRecent(existing []json.RawMessage, rec RecentDesign) ([]json.RawMessage, error) {
	encoded, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	out := make([]json.RawMessage, 0, len(existing)+1)
	out = append(out, encoded)
	out = append(out, existing...)
	if len(out) > MaxRecentDesigns {
		out = out[:MaxRecentDesigns]
	}
	return out, nil
}

// EntryLabel renders a stored list element for display: its title or name
// field when it has one, otherwise its compact JSON.
func EntryLabel(raw json.RawMessage) string {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err == nil {
		for _, field := range []string{"title", "name"} {
			if s, ok := obj[field].(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

package model

import "strings"

// Recommendation is one turn of the recommender: a short summary plus the
// bullet points shown under it.
type Recommendation struct {
	Summary string   `json:"summary"`
	Bullets []string `json:"bullets"`
}

// Passage is the text handed to the extractor for this turn.
func (r Recommendation) Passage() string {
	parts := make([]string, 0, len(r.Bullets)+1)
	if s := strings.TrimSpace(r.Summary); s != "" {
		parts = append(parts, s)
	}
	for _, b := range r.Bullets {
		if b = strings.TrimSpace(b); b != "" {
			parts = append(parts, b)
		}
	}
	return strings.Join(parts, "\n")
}

// Verdict is the outcome of question validation.
type Verdict struct {
	Allowed bool   `json:"allowed"`
	Message string `json:"message,omitempty"`
}

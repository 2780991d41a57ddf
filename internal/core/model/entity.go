package model

// EntityName is a candidate customer found in a passage. Canonical is the
// identity used for matching and deduping; Display is only ever shown.
type EntityName struct {
	Display   string `json:"display"`
	Canonical string `json:"canonical"`
}

// ExtractionResult lists the customers a passage affirmatively mentions, in
// candidate-list order, unique by Canonical.
type ExtractionResult []EntityName

// Displays returns the display strings in order.
func (r ExtractionResult) Displays() []string {
	out := make([]string, 0, len(r))
	for _, e := range r {
		out = append(out, e.Display)
	}
	return out
}

// Canonicals returns the canonical forms in order.
func (r ExtractionResult) Canonicals() []string {
	out := make([]string, 0, len(r))
	for _, e := range r {
		out = append(out, e.Canonical)
	}
	return out
}

package model

// DeltaResult is the set difference between an initial and a revised
// extraction. A name never appears in both lists.
type DeltaResult struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

// Empty reports whether the two extractions named the same customers.
func (d DeltaResult) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Comparison bundles both extractions with their delta.
type Comparison struct {
	Initial ExtractionResult `json:"initial"`
	Revised ExtractionResult `json:"revised"`
	DeltaResult
}

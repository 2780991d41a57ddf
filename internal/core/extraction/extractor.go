package extraction

import (
	"strings"

	"github.com/samber/lo"

	"github.com/agenthands/shortlist/internal/config"
	"github.com/agenthands/shortlist/internal/core/common"
	"github.com/agenthands/shortlist/internal/core/model"
)

// Extractor finds which candidate customers a passage affirmatively mentions.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	WindowPadding int
}

// NewExtractor returns an Extractor using cfg's window padding; non-positive
// values fall back to DefaultWindowPadding.
func NewExtractor(cfg config.ExtractionConfig) *Extractor {
	padding := cfg.WindowPadding
	if padding <= 0 {
		padding = DefaultWindowPadding
	}
	return &Extractor{WindowPadding: padding}
}

var defaultExtractor = &Extractor{WindowPadding: DefaultWindowPadding}

// Extract runs the default extractor.
func Extract(passage string, candidates []string) model.ExtractionResult {
	return defaultExtractor.Extract(passage, candidates)
}

// Extract returns the candidates mentioned in passage, in candidate order and
// unique by canonical form. A candidate is dropped entirely when any of its
// occurrences sits within len(canonical)+WindowPadding of a cue.
func (e *Extractor) Extract(passage string, candidates []string) model.ExtractionResult {
	result := model.ExtractionResult{}

	text := common.Canonicalize(passage)
	if text == "" {
		return result
	}
	cueOffsets := cueOffsets(text)

	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		display := strings.TrimSpace(candidate)
		canonical := common.Canonicalize(display)
		if canonical == "" {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		if !strings.Contains(text, canonical) {
			continue
		}
		if e.negated(text, canonical, cueOffsets) {
			continue
		}

		seen[canonical] = struct{}{}
		result = append(result, model.EntityName{Display: display, Canonical: canonical})
	}

	return result
}

func cueOffsets(text string) []int {
	var offsets []int
	for _, cue := range defaultCues {
		offsets = append(offsets, common.FindAll(text, cue)...)
	}
	return lo.Uniq(offsets)
}

func (e *Extractor) negated(text, canonical string, cues []int) bool {
	if len(cues) == 0 {
		return false
	}
	threshold := len(canonical) + e.WindowPadding
	for _, i := range common.FindAll(text, canonical) {
		for _, c := range cues {
			if abs(c-i) <= threshold {
				return true
			}
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

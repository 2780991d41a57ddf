package delta

import (
	"github.com/samber/lo"

	"github.com/agenthands/shortlist/internal/core/model"
)

// Compute returns the customers that appear only in revised (Added, in revised
// order) and only in initial (Removed, in initial order). Both slices are
// non-nil.
func Compute(initial, revised model.ExtractionResult) model.DeltaResult {
	initialOrder, initialDisplay := index(initial)
	revisedOrder, revisedDisplay := index(revised)

	added := lo.FilterMap(revisedOrder, func(canonical string, _ int) (string, bool) {
		_, known := initialDisplay[canonical]
		return revisedDisplay[canonical], !known
	})
	removed := lo.FilterMap(initialOrder, func(canonical string, _ int) (string, bool) {
		_, kept := revisedDisplay[canonical]
		return initialDisplay[canonical], !kept
	})

	if added == nil {
		added = []string{}
	}
	if removed == nil {
		removed = []string{}
	}
	return model.DeltaResult{Added: added, Removed: removed}
}

// Compare bundles both results with their delta.
func Compare(initial, revised model.ExtractionResult) model.Comparison {
	return model.Comparison{
		Initial:     initial,
		Revised:     revised,
		DeltaResult: Compute(initial, revised),
	}
}

// index maps canonical form to display string. A repeated canonical keeps its
// first position and takes the later display.
func index(result model.ExtractionResult) ([]string, map[string]string) {
	order := make([]string, 0, len(result))
	displays := make(map[string]string, len(result))
	for _, e := range result {
		if _, ok := displays[e.Canonical]; !ok {
			order = append(order, e.Canonical)
		}
		displays[e.Canonical] = e.Display
	}
	return order, displays
}

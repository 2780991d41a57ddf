package recommend

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	DefaultWordCap  = 80
	FallbackSummary = "no recommendations available at this time."
)

// ApplyWordCap keeps the first limit words of text and marks the cut with an
// ellipsis. Whitespace runs collapse to a single space only when text is cut.
func ApplyWordCap(text string, limit int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if limit <= 0 {
		limit = DefaultWordCap
	}
	words := strings.Fields(text)
	if len(words) <= limit {
		return text
	}
	return strings.Join(words[:limit], " ") + "…"
}

// SummarizePriorities joins the first three non-empty bullets as prose,
// e.g. "A, B and C".
func SummarizePriorities(bullets []string) string {
	items := lo.Compact(lo.Map(bullets, func(b string, _ int) string {
		return strings.TrimSpace(b)
	}))
	if len(items) > 3 {
		items = items[:3]
	}

	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

// BuildRevisitSummary is the second-turn text used when no model revisit is
// available. It restates the first suggestion and its top priorities.
func BuildRevisitSummary(base string, bullets []string) string {
	prioritized := SummarizePriorities(bullets)
	base = strings.TrimSpace(base)

	switch {
	case prioritized != "" && base != "":
		return fmt.Sprintf("Revisiting the first suggestion (\"%s\"), the data still points to %s.", base, prioritized)
	case prioritized != "":
		return fmt.Sprintf("After reflecting on the data, %s remain the strongest candidates.", prioritized)
	case base != "":
		return fmt.Sprintf("After reassessing the initial recommendation (\"%s\"), stay with that prioritization because it best fits the evidence.", base)
	default:
		return "After reflecting on the available data, continue with the suggested priorities."
	}
}

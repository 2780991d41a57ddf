package extraction

import "github.com/agenthands/shortlist/internal/core/common"

// DefaultWindowPadding is added to a name's canonical length to get the
// distance within which a cue withdraws the mention.
const DefaultWindowPadding = 20

// cuePhrases signal that a nearby customer is being withdrawn rather than
// recommended.
var cuePhrases = []string{
	"removed",
	"remove",
	"remove from",
	"dropped",
	"drop",
	"dropped from",
	"exclude",
	"excluded",
	"eliminate",
	"eliminated",
	"deprioritize",
	"deprioritized",
	"no longer prioritize",
	"not prioritize",
	"not recommending",
	"no longer recommend",
	"no longer recommending",
}

// defaultCues is cuePhrases in canonical form. Read-only after init.
var defaultCues = canonicalizeAll(cuePhrases)

func canonicalizeAll(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if c := common.Canonicalize(p); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Cues returns a copy of the canonical cue table.
func Cues() []string {
	return append([]string(nil), defaultCues...)
}

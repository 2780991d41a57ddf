package extraction

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/shortlist/internal/config"
	"github.com/agenthands/shortlist/internal/core/common"
	"github.com/agenthands/shortlist/internal/core/model"
)

func TestExtractRemovalScenario(t *testing.T) {
	names := []string{"MediCore Clinics", "FinSure Partners", "SolarEdge Europe"}

	initial := Extract("I recommend MediCore Clinics, FinSure Partners, and SolarEdge Europe because of their steady performance.", names)
	assert.Equal(t, names, initial.Displays())

	revised := Extract("I would prioritize MediCore Clinics and FinSure Partners due to their high YTD spend. SolarEdge Europe is removed as its YTD purchase amount is significantly lower.", names)
	assert.Equal(t, []string{"MediCore Clinics", "FinSure Partners"}, revised.Displays())
	assert.Equal(t, []string{"medicoreclinics", "finsurepartners"}, revised.Canonicals())
}

func TestExtractAdditionScenario(t *testing.T) {
	names := []string{"AgroGrowth BV", "ArtisPrint Design", "MediCore Clinics"}

	initial := Extract("Start with AgroGrowth BV and ArtisPrint Design for their growth potential.", names)
	assert.Equal(t, []string{"AgroGrowth BV", "ArtisPrint Design"}, initial.Displays())

	revised := Extract("Updating my view: add MediCore Clinics alongside AgroGrowth BV and ArtisPrint Design.", names)
	assert.Equal(t, names, revised.Displays())
}

func TestExtractEmptyPassage(t *testing.T) {
	got := Extract("", []string{"MediCore Clinics", "FinSure Partners"})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, Extract("?!  ...", []string{"MediCore Clinics"}))
	assert.Empty(t, Extract("MediCore Clinics", nil))
}

func TestExtractPreservesCandidateOrder(t *testing.T) {
	names := []string{"Zeta Foods", "Alpha Tools", "Mid Corp"}
	passage := "Alpha Tools first, then Mid Corp, and finally Zeta Foods."

	got := Extract(passage, names)
	assert.Equal(t, names, got.Displays())
}

func TestExtractDedupesByCanonicalForm(t *testing.T) {
	names := []string{"  MediCore Clinics ", "medicore clinics", "MEDICORE-CLINICS", "Médicore Clinics"}

	got := Extract("Keep MediCore Clinics on the list.", names)
	assert.Equal(t, model.ExtractionResult{{Display: "MediCore Clinics", Canonical: "medicoreclinics"}}, got)
}

func TestExtractSkipsBlankCandidates(t *testing.T) {
	got := Extract("FinSure Partners is strong.", []string{"", "   ", "!!!", "FinSure Partners"})
	assert.Equal(t, []string{"FinSure Partners"}, got.Displays())
}

func TestExtractMatchesAccentedNames(t *testing.T) {
	got := Extract("I suggest cafe lumiere for next quarter.", []string{"Café Lumière"})
	assert.Equal(t, []string{"Café Lumière"}, got.Displays())
}

func TestExtractHasNoWordBoundaryGuard(t *testing.T) {
	got := Extract("Prioritize MediCore Clinics.", []string{"MediCore Clinics", "Core"})
	assert.Equal(t, []string{"MediCore Clinics", "Core"}, got.Displays())
}

func TestExtractNegationSuppressesWholeEntity(t *testing.T) {
	names := []string{"Acme", "Globex"}
	// The first Acme mention is far from any cue, the second is right next to one.
	passage := "Acme and Globex look strong. " + strings.Repeat("Lorem ipsum ", 10) + "Acme is dropped."

	got := Extract(passage, names)
	assert.Equal(t, []string{"Globex"}, got.Displays())
}

func TestExtractNegationWindowBoundary(t *testing.T) {
	names := []string{"Acme"}
	// "acme" has length 4, so the window is 4+20 = 24 characters of canonical text.
	atEdge := "Acme " + strings.Repeat("x", 20) + " drop"
	pastEdge := "Acme " + strings.Repeat("x", 21) + " drop"
	before := "Drop " + strings.Repeat("x", 20) + " Acme"

	assert.Equal(t, []int{24}, common.FindAll(common.Canonicalize(atEdge), "drop"))
	assert.Empty(t, Extract(atEdge, names))
	assert.Equal(t, []string{"Acme"}, Extract(pastEdge, names).Displays())
	assert.Empty(t, Extract(before, names))
}

func TestExtractMultiWordCues(t *testing.T) {
	names := []string{"FinSure Partners", "SolarEdge Europe"}
	passage := "We are no longer recommending FinSure Partners. " + strings.Repeat("Filler text ", 6) + "SolarEdge Europe stays."

	got := Extract(passage, names)
	assert.Equal(t, []string{"SolarEdge Europe"}, got.Displays())
}

func TestNewExtractorWindowPadding(t *testing.T) {
	passage := "Acme " + strings.Repeat("x", 20) + " drop"

	narrow := NewExtractor(config.ExtractionConfig{WindowPadding: 5})
	assert.Equal(t, []string{"Acme"}, narrow.Extract(passage, []string{"Acme"}).Displays())

	fallback := NewExtractor(config.ExtractionConfig{})
	assert.Equal(t, DefaultWindowPadding, fallback.WindowPadding)
	assert.Empty(t, fallback.Extract(passage, []string{"Acme"}))
}

func TestCuesAreCanonicalCopies(t *testing.T) {
	cues := Cues()
	assert.Contains(t, cues, "nolongerrecommend")
	assert.Contains(t, cues, "removefrom")
	assert.Len(t, cues, len(cuePhrases))

	cues[0] = "mutated"
	assert.Equal(t, "removed", Cues()[0])
}

func TestExtractConcurrentUse(t *testing.T) {
	names := []string{"MediCore Clinics", "FinSure Partners", "SolarEdge Europe"}
	passage := "I would prioritize MediCore Clinics and FinSure Partners. SolarEdge Europe is removed."
	want := Extract(passage, names)

	var wg sync.WaitGroup
	results := make([]model.ExtractionResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Extract(passage, names)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

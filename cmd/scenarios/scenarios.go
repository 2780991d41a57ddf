package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/agenthands/shortlist/internal/core/delta"
	"github.com/agenthands/shortlist/internal/core/extraction"
	"github.com/agenthands/shortlist/internal/core/model"
)

type Scenario struct {
	Label   string `toml:"label"`
	Initial string `toml:"initial"`
	Revised string `toml:"revised"`
}

type scenarioFile struct {
	Scenarios []Scenario `toml:"scenario"`
}

var builtinScenarios = []Scenario{
	{
		Label:   "Removal noted explicitly",
		Initial: "I recommend MediCore Clinics, FinSure Partners, and SolarEdge Europe because of their steady performance and purchase volumes.",
		Revised: "Revisiting my earlier recommendation. I would prioritize MediCore Clinics and FinSure Partners due to their high YTD spend. SolarEdge Europe is removed as its YTD purchase amount is significantly lower.",
	},
	{
		Label:   "New customer added",
		Initial: "Start with AgroGrowth BV and ArtisPrint Design for their growth potential.",
		Revised: "Updating my view: add MediCore Clinics alongside AgroGrowth BV and ArtisPrint Design.",
	},
}

// LoadScenarios reads [[scenario]] tables from a TOML file.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file '%s': %w", path, err)
	}

	var f scenarioFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("no [[scenario]] entries in %s", path)
	}
	for i := range f.Scenarios {
		if f.Scenarios[i].Label == "" {
			f.Scenarios[i].Label = fmt.Sprintf("Scenario %d", i+1)
		}
	}
	return f.Scenarios, nil
}

func runScenario(e *extraction.Extractor, s Scenario, names []string) model.DeltaResult {
	return delta.Compute(e.Extract(s.Initial, names), e.Extract(s.Revised, names))
}

type printer struct {
	w       io.Writer
	title   lipgloss.Style
	label   lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
}

func newPrinter(w io.Writer, plain bool) *printer {
	p := &printer{
		w:       w,
		title:   lipgloss.NewStyle(),
		label:   lipgloss.NewStyle(),
		added:   lipgloss.NewStyle(),
		removed: lipgloss.NewStyle(),
	}
	if plain {
		return p
	}

	p.title = p.title.Bold(true).Foreground(lipgloss.Color("12"))
	p.label = p.label.Foreground(lipgloss.Color("8"))
	p.added = p.added.Foreground(lipgloss.Color("10"))
	p.removed = p.removed.Foreground(lipgloss.Color("9"))
	return p
}

func (p *printer) print(s Scenario, d model.DeltaResult) {
	fmt.Fprintf(p.w, "\n%s\n", p.title.Render("Scenario: "+s.Label))
	fmt.Fprintf(p.w, "  %s %s\n", p.label.Render("Initial:"), s.Initial)
	fmt.Fprintf(p.w, "  %s %s\n", p.label.Render("Revised:"), s.Revised)
	fmt.Fprintf(p.w, "  %s %s\n", p.label.Render("Added:"), p.added.Render(joinOrNone(d.Added)))
	fmt.Fprintf(p.w, "  %s %s\n", p.label.Render("Removed:"), p.removed.Render(joinOrNone(d.Removed)))
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}

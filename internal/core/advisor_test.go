package core

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/shortlist/internal/config"
	"github.com/agenthands/shortlist/internal/core/model"
	"github.com/agenthands/shortlist/internal/dataset"
)

func customers() *dataset.Table {
	return &dataset.Table{
		Header: []string{"Customer ID", "Customer Name", "Country", "YTD Purchases (EUR)"},
		Rows: [][]string{
			{"C001", "MediCore Clinics", "Germany", "182000"},
			{"C002", "FinSure Partners", "Netherlands", "164500"},
			{"C003", "SolarEdge Europe", "Spain", "48200"},
			{"C004", "AgroGrowth BV", "Netherlands", "91000"},
			{"C005", "ArtisPrint Design", "Belgium", "73400"},
		},
	}
}

func newTestAdvisor(llmClient *MockLLM, history HistoryStore) *Advisor {
	a := NewAdvisor(config.Default(), llmClient, &MockSource{Data: customers()}, history, nil)

	counter := 0
	a.UUIDGenerator = func() string {
		counter++
		return fmt.Sprintf("run-%d", counter)
	}
	a.Now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	return a
}

func TestRun(t *testing.T) {
	mockLLM := &MockLLM{ResponseQueue: []string{
		`{"summary": "I recommend MediCore Clinics, FinSure Partners, and SolarEdge Europe because of their steady performance.", "bullets": []}`,
		`{"summary": "I would prioritize MediCore Clinics and FinSure Partners due to their high YTD spend. SolarEdge Europe is removed as its YTD purchase amount is significantly lower.", "bullets": []}`,
	}}
	history := &MockHistory{}
	a := newTestAdvisor(mockLLM, history)

	run, err := a.Run(context.Background(), "  Which customers should we prioritize?  ")
	require.NoError(t, err)

	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, "Which customers should we prioritize?", run.Question)
	assert.Equal(t, []string{"MediCore Clinics", "FinSure Partners", "SolarEdge Europe"}, run.Customers.Initial.Displays())
	assert.Equal(t, []string{"MediCore Clinics", "FinSure Partners"}, run.Customers.Revised.Displays())
	assert.Equal(t, []string{}, run.Customers.Added)
	assert.Equal(t, []string{"SolarEdge Europe"}, run.Customers.Removed)
	assert.Equal(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), run.CreatedAt)

	require.Len(t, history.Saved, 1)
	assert.Same(t, run, history.Saved[0])
}

func TestRunRevisitFallbackKeepsCustomers(t *testing.T) {
	mockLLM := &MockLLM{ResponseQueue: []string{
		`{"summary": "Start with AgroGrowth BV.", "bullets": ["ArtisPrint Design: growth potential"]}`,
		"",
	}}
	a := newTestAdvisor(mockLLM, nil)

	run, err := a.Run(context.Background(), "Who has growth potential?")
	require.NoError(t, err)

	assert.Contains(t, run.Revised.Summary, "Revisiting the first suggestion")
	assert.Equal(t, run.Customers.Initial, run.Customers.Revised)
	assert.True(t, run.Customers.Empty())
}

func TestRunRejected(t *testing.T) {
	a := newTestAdvisor(&MockLLM{}, nil)

	_, err := a.Run(context.Background(), "   ")
	var rejected *model.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "Please provide a question to run the flow.", rejected.Message)
}

func TestRunErrors(t *testing.T) {
	a := newTestAdvisor(&MockLLM{Err: errors.New("llm down")}, nil)
	_, err := a.Run(context.Background(), "Who first?")
	assert.ErrorContains(t, err, "llm down")

	a = newTestAdvisor(&MockLLM{}, nil)
	a.Source = &MockSource{Data: &dataset.Table{}}
	_, err = a.Run(context.Background(), "Who first?")
	assert.ErrorIs(t, err, model.ErrNoCandidates)

	a.Source = &MockSource{Err: errors.New("disk")}
	_, err = a.Run(context.Background(), "Who first?")
	assert.ErrorContains(t, err, "failed to load customer names")
}

func TestRunHistoryFailureIsNotFatal(t *testing.T) {
	mockLLM := &MockLLM{Response: `{"summary": "MediCore Clinics.", "bullets": []}`}
	history := &MockHistory{Err: errors.New("memgraph unavailable")}

	run, err := newTestAdvisor(mockLLM, history).Run(context.Background(), "Who first?")
	require.NoError(t, err)
	assert.Equal(t, []string{"MediCore Clinics"}, run.Customers.Initial.Displays())
	assert.Len(t, history.Saved, 1)
}

func TestRecommendEmptyQuestion(t *testing.T) {
	_, err := newTestAdvisor(&MockLLM{}, nil).Recommend(context.Background(), " ")
	assert.ErrorIs(t, err, model.ErrEmptyQuestion)
}

func TestCompareAdditionScenario(t *testing.T) {
	a := newTestAdvisor(&MockLLM{}, nil)

	cmp, err := a.Compare(
		"Start with AgroGrowth BV and ArtisPrint Design for their growth potential.",
		"Updating my view: add MediCore Clinics alongside AgroGrowth BV and ArtisPrint Design.",
		nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"MediCore Clinics"}, cmp.Added)
	assert.Equal(t, []string{}, cmp.Removed)
}

func TestCompareWithExplicitNames(t *testing.T) {
	a := newTestAdvisor(&MockLLM{}, nil)
	a.Source = &MockSource{Err: errors.New("should not be read")}

	cmp, err := a.Compare(
		"Acme and Globex.",
		"Globex stays on the list, while after a long review of every number we have Acme dropped.",
		[]string{"Acme", "Globex"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme"}, cmp.Removed)

	got, err := a.Extract("Globex is great", []string{"Acme", "Globex"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Globex"}, got.Displays())
}

func TestRecentRuns(t *testing.T) {
	_, err := newTestAdvisor(&MockLLM{}, nil).RecentRuns(context.Background(), 5)
	assert.ErrorIs(t, err, model.ErrHistoryDisabled)

	history := &MockHistory{Runs: []model.RunSummary{{ID: "run-9"}}}
	runs, err := newTestAdvisor(&MockLLM{}, history).RecentRuns(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "run-9", runs[0].ID)
}

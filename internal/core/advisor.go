package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/agenthands/shortlist/internal/config"
	"github.com/agenthands/shortlist/internal/core/delta"
	"github.com/agenthands/shortlist/internal/core/extraction"
	"github.com/agenthands/shortlist/internal/core/model"
	"github.com/agenthands/shortlist/internal/core/recommend"
	"github.com/agenthands/shortlist/internal/dataset"
	"github.com/agenthands/shortlist/internal/llm"
	"github.com/agenthands/shortlist/internal/logging"
)

// CustomerSource supplies the reference customer list.
type CustomerSource interface {
	Names() ([]string, error)
	Table() (*dataset.Table, error)
}

// HistoryStore persists completed runs.
type HistoryStore interface {
	Save(ctx context.Context, run *model.Run) error
	Recent(ctx context.Context, limit int) ([]model.RunSummary, error)
}

// Advisor runs the two-turn recommendation flow and compares the customers
// each turn names. History is optional.
type Advisor struct {
	Source      CustomerSource
	Validator   *recommend.Validator
	Recommender *recommend.Recommender
	Extractor   *extraction.Extractor
	History     HistoryStore
	Logger      *log.Logger

	UUIDGenerator func() string
	Now           func() time.Time
}

func NewAdvisor(cfg *config.Config, client llm.LLMClient, source CustomerSource, history HistoryStore, logger *log.Logger) *Advisor {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Advisor{
		Source:        source,
		Validator:     recommend.NewValidator(client, cfg.Recommendation),
		Recommender:   recommend.NewRecommender(client, cfg.Recommendation, logging.For(logger, "recommend")),
		Extractor:     extraction.NewExtractor(cfg.Extraction),
		History:       history,
		Logger:        logger,
		UUIDGenerator: func() string { return uuid.New().String() },
		Now:           func() time.Time { return time.Now().UTC() },
	}
}

func (a *Advisor) Validate(ctx context.Context, question string) (model.Verdict, error) {
	return a.Validator.Validate(ctx, question)
}

// Recommend produces the first-turn recommendation for question.
func (a *Advisor) Recommend(ctx context.Context, question string) (model.Recommendation, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return model.Recommendation{}, model.ErrEmptyQuestion
	}
	data, err := a.renderedData()
	if err != nil {
		return model.Recommendation{}, err
	}
	return a.Recommender.Recommend(ctx, question, data)
}

// Revisit produces the second-turn recommendation from the first one.
func (a *Advisor) Revisit(ctx context.Context, question string, initial model.Recommendation) (model.Recommendation, error) {
	data, err := a.renderedData()
	if err != nil {
		return model.Recommendation{}, err
	}
	return a.Recommender.Revisit(ctx, strings.TrimSpace(question), data, initial), nil
}

// Run executes the whole flow: validation, both turns, extraction, delta and,
// when configured, persistence. A rejected question yields *model.RejectedError.
func (a *Advisor) Run(ctx context.Context, question string) (*model.Run, error) {
	question = strings.TrimSpace(question)

	verdict, err := a.Validate(ctx, question)
	if err != nil {
		return nil, err
	}
	if !verdict.Allowed {
		return nil, &model.RejectedError{Message: verdict.Message}
	}

	names, err := a.CustomerNames()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, model.ErrNoCandidates
	}

	initial, err := a.Recommend(ctx, question)
	if err != nil {
		return nil, err
	}
	revised, err := a.Revisit(ctx, question, initial)
	if err != nil {
		return nil, err
	}

	run := &model.Run{
		ID:        a.UUIDGenerator(),
		Question:  question,
		Initial:   initial,
		Revised:   revised,
		Customers: a.compare(initial.Passage(), revised.Passage(), names),
		CreatedAt: a.Now(),
	}

	a.Logger.Info("flow completed",
		"run", run.ID,
		"initial", len(run.Customers.Initial),
		"revised", len(run.Customers.Revised),
		"added", len(run.Customers.Added),
		"removed", len(run.Customers.Removed))

	if a.History != nil {
		if err := a.History.Save(ctx, run); err != nil {
			a.Logger.Error("failed to save run", "run", run.ID, "err", err)
		}
	}

	return run, nil
}

// Extract lists the customers passage affirmatively mentions. A nil names
// slice means the loaded dataset.
func (a *Advisor) Extract(passage string, names []string) (model.ExtractionResult, error) {
	names, err := a.candidates(names)
	if err != nil {
		return nil, err
	}
	return a.Extractor.Extract(passage, names), nil
}

// Compare extracts both passages and computes what changed between them.
func (a *Advisor) Compare(initial, revised string, names []string) (model.Comparison, error) {
	names, err := a.candidates(names)
	if err != nil {
		return model.Comparison{}, err
	}
	return a.compare(initial, revised, names), nil
}

func (a *Advisor) compare(initial, revised string, names []string) model.Comparison {
	return delta.Compare(a.Extractor.Extract(initial, names), a.Extractor.Extract(revised, names))
}

func (a *Advisor) CustomerNames() ([]string, error) {
	names, err := a.Source.Names()
	if err != nil {
		return nil, fmt.Errorf("failed to load customer names: %w", err)
	}
	return names, nil
}

func (a *Advisor) RecentRuns(ctx context.Context, limit int) ([]model.RunSummary, error) {
	if a.History == nil {
		return nil, model.ErrHistoryDisabled
	}
	return a.History.Recent(ctx, limit)
}

func (a *Advisor) candidates(names []string) ([]string, error) {
	if names != nil {
		return names, nil
	}
	return a.CustomerNames()
}

func (a *Advisor) renderedData() (string, error) {
	table, err := a.Source.Table()
	if err != nil {
		return "", fmt.Errorf("failed to load customer data: %w", err)
	}
	return table.Render(), nil
}

package history

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/agenthands/shortlist/internal/core/model"
	"github.com/agenthands/shortlist/internal/driver"
	"github.com/agenthands/shortlist/internal/logging"
)

const DefaultLimit = 20

// Store keeps completed runs in the graph: one Recommendation node per run,
// linked to Customer nodes by MENTIONS, ADDED and REMOVED edges.
type Store struct {
	Driver driver.GraphDriver
	Logger *log.Logger
}

func NewStore(d driver.GraphDriver, logger *log.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{Driver: d, Logger: logger}
}

func (s *Store) BuildIndices(ctx context.Context) error {
	return s.Driver.BuildIndices(ctx)
}

func (s *Store) Save(ctx context.Context, run *model.Run) error {
	_, err := s.Driver.ExecuteQuery(ctx, driver.SaveRecommendationQuery, map[string]any{
		"uuid":       run.ID,
		"question":   run.Question,
		"initial":    run.Initial.Passage(),
		"revised":    run.Revised.Passage(),
		"created_at": run.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("failed to save recommendation: %w", err)
	}

	initial, revised := run.Customers.Initial, run.Customers.Revised

	all := append(append(model.ExtractionResult{}, initial...), revised...)
	for _, c := range lo.UniqBy(all, func(e model.EntityName) string { return e.Canonical }) {
		params := map[string]any{"canonical": c.Canonical, "name": c.Display}
		if _, err := s.Driver.ExecuteQuery(ctx, driver.SaveCustomerQuery, params); err != nil {
			return fmt.Errorf("failed to save customer %s: %w", c.Display, err)
		}
	}

	for turn, result := range []model.ExtractionResult{initial, revised} {
		for pos, e := range result {
			params := map[string]any{
				"uuid":      run.ID,
				"canonical": e.Canonical,
				"turn":      turn + 1,
				"position":  pos,
			}
			if _, err := s.Driver.ExecuteQuery(ctx, driver.SaveMentionQuery, params); err != nil {
				return fmt.Errorf("failed to link %s to run %s: %w", e.Display, run.ID, err)
			}
		}
	}

	if err := s.saveDelta(ctx, run.ID, driver.SaveAddedQuery, run.Customers.Added, revised); err != nil {
		return err
	}
	return s.saveDelta(ctx, run.ID, driver.SaveRemovedQuery, run.Customers.Removed, initial)
}

// saveDelta links names back to their canonical form through source, the
// extraction the names were taken from.
func (s *Store) saveDelta(ctx context.Context, runID, query string, names []string, source model.ExtractionResult) error {
	canonicals := lo.SliceToMap(source, func(e model.EntityName) (string, string) {
		return e.Display, e.Canonical
	})
	for _, name := range names {
		canonical, ok := canonicals[name]
		if !ok {
			s.Logger.Warn("delta entry missing from its extraction", "run", runID, "name", name)
			continue
		}
		params := map[string]any{"uuid": runID, "canonical": canonical}
		if _, err := s.Driver.ExecuteQuery(ctx, query, params); err != nil {
			return fmt.Errorf("failed to save delta for %s: %w", name, err)
		}
	}
	return nil
}

// Recent returns the latest runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]model.RunSummary, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	res, err := s.Driver.ExecuteQuery(ctx, driver.GetRecentRecommendationsQuery, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}

	runs := make([]model.RunSummary, 0, len(res.Records))
	for _, rec := range res.Records {
		id, _ := rec.Get("uuid")
		question, _ := rec.Get("question")
		createdAt, _ := rec.Get("created_at")
		added, _ := rec.Get("added")
		removed, _ := rec.Get("removed")

		run := model.RunSummary{
			ID:       asString(id),
			Question: asString(question),
			Added:    asStrings(added),
			Removed:  asStrings(removed),
		}
		if ts, err := time.Parse(time.RFC3339Nano, asString(createdAt)); err == nil {
			run.CreatedAt = ts
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStrings(v any) []string {
	out := []string{}
	items, _ := v.([]any)
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

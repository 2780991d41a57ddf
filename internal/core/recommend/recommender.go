package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/agenthands/shortlist/internal/config"
	"github.com/agenthands/shortlist/internal/core/common"
	"github.com/agenthands/shortlist/internal/core/model"
	"github.com/agenthands/shortlist/internal/llm"
	"github.com/agenthands/shortlist/internal/logging"
)

type Recommender struct {
	LLM           llm.LLMClient
	InitialPrompt string
	RevisitPrompt string
	WordCap       int
	MaxBullets    int
	Logger        *log.Logger
}

func NewRecommender(client llm.LLMClient, cfg config.RecommendationConfig, logger *log.Logger) *Recommender {
	r := &Recommender{
		LLM:           client,
		InitialPrompt: cfg.Initial,
		RevisitPrompt: cfg.Revisit,
		WordCap:       cfg.WordCap,
		MaxBullets:    cfg.MaxBullets,
		Logger:        logger,
	}
	if r.InitialPrompt == "" {
		r.InitialPrompt = DefaultInitialPrompt
	}
	if r.RevisitPrompt == "" {
		r.RevisitPrompt = DefaultRevisitPrompt
	}
	if r.Logger == nil {
		r.Logger = logging.Discard()
	}
	return r
}

// Recommend asks the model for the first-turn recommendation over data, the
// rendered customer table.
func (r *Recommender) Recommend(ctx context.Context, question, data string) (model.Recommendation, error) {
	response, err := r.LLM.Generate(ctx, fmt.Sprintf(r.InitialPrompt, data, question))
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("failed to generate recommendation: %w", err)
	}
	if strings.TrimSpace(response) == "" {
		return model.Recommendation{}, model.ErrNoRecommendation
	}
	return r.shape(r.parse(response)), nil
}

// Revisit asks the model to re-check the initial recommendation. When the
// model fails or says nothing, the deterministic revisit text over the initial
// bullets is returned instead.
func (r *Recommender) Revisit(ctx context.Context, question, data string, initial model.Recommendation) model.Recommendation {
	fallback := model.Recommendation{
		Summary: BuildRevisitSummary(initial.Summary, initial.Bullets),
		Bullets: initial.Bullets,
	}

	response, err := r.LLM.Generate(ctx, fmt.Sprintf(r.RevisitPrompt, data, question, initial.Passage()))
	if err != nil {
		r.Logger.Warn("revisit failed, using fallback summary", "err", err)
		return fallback
	}
	if strings.TrimSpace(response) == "" {
		r.Logger.Warn("revisit returned nothing, using fallback summary")
		return fallback
	}

	return r.shape(r.parse(response))
}

func (r *Recommender) parse(response string) model.Recommendation {
	rec, err := common.ParseJSON[model.Recommendation](response)
	if err != nil {
		r.Logger.Debug("reply is not JSON, using raw text as summary", "err", err)
		return model.Recommendation{Summary: response}
	}
	return rec
}

func (r *Recommender) shape(rec model.Recommendation) model.Recommendation {
	bullets := lo.Compact(lo.Map(rec.Bullets, func(b string, _ int) string {
		return strings.TrimSpace(b)
	}))
	if r.MaxBullets > 0 && len(bullets) > r.MaxBullets {
		bullets = bullets[:r.MaxBullets]
	}

	summary := ApplyWordCap(rec.Summary, r.WordCap)
	if summary == "" {
		summary = FallbackSummary
	}
	return model.Recommendation{Summary: summary, Bullets: bullets}
}

package recommend

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agenthands/shortlist/internal/config"
	"github.com/agenthands/shortlist/internal/core/common"
	"github.com/agenthands/shortlist/internal/core/model"
	"github.com/agenthands/shortlist/internal/llm"
)

const (
	EmptyQuestionMessage = "Please provide a question to run the flow."
	OffTopicMessage      = "This question is outside the scope of the customer recommendation flow."
)

// Validator screens questions before the flow runs. Prompt is optional; with
// no prompt only the empty and length checks apply.
type Validator struct {
	LLM       llm.LLMClient
	Prompt    string
	MaxLength int
}

func NewValidator(client llm.LLMClient, cfg config.RecommendationConfig) *Validator {
	return &Validator{
		LLM:       client,
		Prompt:    cfg.Validate,
		MaxLength: cfg.MaxQuestionLength,
	}
}

func (v *Validator) Validate(ctx context.Context, question string) (model.Verdict, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return model.Verdict{Message: EmptyQuestionMessage}, nil
	}
	if v.MaxLength > 0 && utf8.RuneCountInString(question) > v.MaxLength {
		return model.Verdict{
			Message: fmt.Sprintf("Please keep the question under %d characters.", v.MaxLength),
		}, nil
	}
	if v.Prompt == "" || v.LLM == nil {
		return model.Verdict{Allowed: true}, nil
	}

	response, err := v.LLM.Generate(ctx, fmt.Sprintf(v.Prompt, question))
	if err != nil {
		return model.Verdict{}, fmt.Errorf("failed to validate question: %w", err)
	}

	verdict, err := common.ParseJSON[model.Verdict](response)
	if err != nil {
		return model.Verdict{}, fmt.Errorf("failed to parse validation result: %w", err)
	}
	if !verdict.Allowed && strings.TrimSpace(verdict.Message) == "" {
		verdict.Message = OffTopicMessage
	}
	if verdict.Allowed {
		verdict.Message = ""
	}
	return verdict, nil
}

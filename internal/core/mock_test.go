package core

import (
	"context"

	"github.com/agenthands/shortlist/internal/core/model"
	"github.com/agenthands/shortlist/internal/dataset"
)

type MockSource struct {
	Data *dataset.Table
	Err    error
}

func (m *MockSource) Names() ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Data.Column(1), nil
}

func (m *MockSource) Table() (*dataset.Table, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Data, nil
}

type MockHistory struct {
	Saved []*model.Run
	Runs  []model.RunSummary
	Err   error
}

func (m *MockHistory) Save(ctx context.Context, run *model.Run) error {
	m.Saved = append(m.Saved, run)
	return m.Err
}

func (m *MockHistory) Recent(ctx context.Context, limit int) ([]model.RunSummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Runs, nil
}

type MockLLM struct {
	Response      string
	ResponseQueue []string
	Err           error
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}

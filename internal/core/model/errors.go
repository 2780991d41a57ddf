package model

import "errors"

var (
	ErrEmptyQuestion    = errors.New("question is empty")
	ErrNoCandidates     = errors.New("no candidate customer names available")
	ErrHistoryDisabled  = errors.New("run history is not configured")
	ErrNoRecommendation = errors.New("recommender returned no content")
)

// RejectedError is returned when a question fails validation.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "question rejected"
	}
	return "question rejected: " + e.Message
}

package model

import "time"

// Run is one complete pass of the chat flow: question, both turns, and what
// changed between them.
type Run struct {
	ID        string         `json:"id"`
	Question  string         `json:"question"`
	Initial   Recommendation `json:"initial"`
	Revised   Recommendation `json:"revised"`
	Customers Comparison     `json:"customers"`
	CreatedAt time.Time      `json:"created_at"`
}

// RunSummary is the history view of a stored run.
type RunSummary struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Added     []string  `json:"added"`
	Removed   []string  `json:"removed"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import (
	"time"
)

// IntentStatus represents the lifecycle state of an intent
type IntentStatus string

const (
	// IntentStatusCreated is the initial state after creation
	IntentStatusCreated IntentStatus = "created"
	// IntentStatusFindingSolutions is set while discovery strategies run
	IntentStatusFindingSolutions IntentStatus = "finding_solutions"
	// IntentStatusSolutionsFound is set once discovery completes, even with zero solutions
	IntentStatusSolutionsFound IntentStatus = "solutions_found"
	// IntentStatusExecuting is set while a chosen solution is being executed
	IntentStatusExecuting IntentStatus = "executing"
	// IntentStatusCompleted is terminal and never overwritten
	IntentStatusCompleted IntentStatus = "completed"
	// IntentStatusFailed is set when a step of the chosen solution fails
	IntentStatusFailed IntentStatus = "failed"
	// IntentStatusExpired is set by the reaper once the deadline elapses
	IntentStatusExpired IntentStatus = "expired"
)

// Intent represents a user request to convert an amount of one token on one
// chain into a minimum amount of another token on another chain
type Intent struct {
	ID              string       `json:"id"`
	User            string       `json:"user"`
	InputToken      string       `json:"input_token"`
	OutputToken     string       `json:"output_token"`
	InputAmount     string       `json:"input_amount"`
	MinOutputAmount string       `json:"min_output_amount"`
	InputChain      int          `json:"input_chain"`
	OutputChain     int          `json:"output_chain"`
	Deadline        time.Time    `json:"deadline"`
	Recipient       string       `json:"recipient,omitempty"`
	Status          IntentStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
}

// SameChain returns true when input and output live on the same chain
func (i *Intent) SameChain() bool {
	return i.InputChain == i.OutputChain
}

// ExpiredAt returns true when the deadline has passed at the given time
func (i *Intent) ExpiredAt(now time.Time) bool {
	return now.After(i.Deadline)
}

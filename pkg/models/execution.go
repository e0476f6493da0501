package models

import (
	"time"
)

// ExecutedStep records the realized outcome of a single dispatched step
type ExecutedStep struct {
	StepNumber   int       `json:"step_number"`
	TxHash       string    `json:"tx_hash"`
	GasUsed      string    `json:"gas_used"`
	ActualOutput string    `json:"actual_output"`
	Timestamp    time.Time `json:"timestamp"`
}

// ExecutionResult is the outcome of executing a solution. A new execution
// attempt for the same intent overwrites the prior result. ExecutedSteps may
// be a prefix of the solution's steps when execution stops at a failure.
type ExecutionResult struct {
	IntentID      string         `json:"intent_id"`
	SolutionID    string         `json:"solution_id"`
	Success       bool           `json:"success"`
	ActualOutput  string         `json:"actual_output,omitempty"`
	ExecutedSteps []ExecutedStep `json:"executed_steps"`
	TotalGasUsed  string         `json:"total_gas_used"`
	Error         string         `json:"error,omitempty"`
}

package models

import (
	"time"
)

// StepType represents the kind of operation an execution step performs
type StepType string

const (
	// StepTypeSwap exchanges one token for another on a single chain
	StepTypeSwap StepType = "swap"
	// StepTypeBridge moves a token across chains
	StepTypeBridge StepType = "bridge"
	// StepTypeWrap wraps a native asset (not currently executable)
	StepTypeWrap StepType = "wrap"
	// StepTypeUnwrap unwraps a wrapped asset (not currently executable)
	StepTypeUnwrap StepType = "unwrap"
)

// ExecutionStep is a single operation inside a solution. Steps are immutable
// once produced by a discovery strategy and are owned by their solution.
type ExecutionStep struct {
	StepType        StepType `json:"step_type"`
	ChainID         int      `json:"chain_id"`
	Protocol        string   `json:"protocol"`
	InputToken      string   `json:"input_token"`
	OutputToken     string   `json:"output_token"`
	EstimatedInput  string   `json:"estimated_input"`
	EstimatedOutput string   `json:"estimated_output"`
	GasEstimate     string   `json:"gas_estimate"`
}

// Solution is a concrete, priced, ordered execution plan proposed to satisfy
// an intent. Many solutions may exist per intent.
type Solution struct {
	ID              string          `json:"id"`
	IntentID        string          `json:"intent_id"`
	Solver          string          `json:"solver"`
	Steps           []ExecutionStep `json:"steps"`
	EstimatedOutput string          `json:"estimated_output"`
	TotalGasCost    string          `json:"total_gas_cost"`
	ExecutionTime   int             `json:"execution_time"` // seconds
	Confidence      float64         `json:"confidence"`     // in [0,1]
	CreatedAt       time.Time       `json:"created_at"`
}

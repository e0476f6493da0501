package engine

import (
	"context"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/routeforge-hq/routeforge-engine/pkg/metrics"
	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// CreateIntentParams carries the user-supplied intent parameters. Deadline
// and Recipient are optional.
type CreateIntentParams struct {
	InputToken      string
	OutputToken     string
	InputAmount     string
	MinOutputAmount string
	InputChain      int
	OutputChain     int
	User            string
	Recipient       string
	Deadline        time.Time
}

// CreateIntent validates and stores a new intent, runs solution discovery as
// a side effect of creation, and returns the new intent id. By the time it
// returns, discovery has completed and the intent is in the solutions_found
// state.
func (e *Engine) CreateIntent(ctx context.Context, params CreateIntentParams) (string, error) {
	now := time.Now()

	if err := validateCreateParams(params, now); err != nil {
		metrics.IntentValidationErrors.Inc()
		return "", err
	}

	deadline := params.Deadline
	if deadline.IsZero() {
		deadline = now.Add(e.cfg.DefaultDeadline)
	}

	intent := &models.Intent{
		ID:              uuid.NewString(),
		User:            params.User,
		InputToken:      params.InputToken,
		OutputToken:     params.OutputToken,
		InputAmount:     params.InputAmount,
		MinOutputAmount: params.MinOutputAmount,
		InputChain:      params.InputChain,
		OutputChain:     params.OutputChain,
		Deadline:        deadline,
		Recipient:       params.Recipient,
		Status:          models.IntentStatusCreated,
		CreatedAt:       now,
	}
	e.store.PutIntent(intent)
	metrics.IntentsCreated.Inc()
	e.updateActiveGauge()

	e.logger.InfoWithChain(intent.InputChain, "Created intent %s: %s %s on chain %d -> min %s %s on chain %d",
		intent.ID, intent.InputAmount, intent.InputToken, intent.InputChain,
		intent.MinOutputAmount, intent.OutputToken, intent.OutputChain)

	// Discovery runs synchronously as part of creation
	if _, err := e.FindSolutions(ctx, intent.ID); err != nil {
		e.logger.Error("Solution discovery failed for intent %s: %v", intent.ID, err)
	}

	return intent.ID, nil
}

// validateCreateParams checks the intent invariants: positive decimal input
// amount, positive chain ids, deadline after creation
func validateCreateParams(params CreateIntentParams, now time.Time) error {
	if params.InputToken == "" {
		return &ValidationError{Field: "input token", Reason: "must not be empty"}
	}
	if params.OutputToken == "" {
		return &ValidationError{Field: "output token", Reason: "must not be empty"}
	}

	amount, ok := new(big.Float).SetString(params.InputAmount)
	if !ok {
		return &ValidationError{Field: "input amount", Reason: "must be a decimal number"}
	}
	if amount.Sign() <= 0 {
		return &ValidationError{Field: "input amount", Reason: "must be greater than 0"}
	}

	if params.MinOutputAmount != "" {
		minOut, ok := new(big.Float).SetString(params.MinOutputAmount)
		if !ok {
			return &ValidationError{Field: "min output amount", Reason: "must be a decimal number"}
		}
		if minOut.Sign() < 0 {
			return &ValidationError{Field: "min output amount", Reason: "must not be negative"}
		}
	}

	if params.InputChain <= 0 {
		return &ValidationError{Field: "input chain", Reason: "must be a positive chain id"}
	}
	if params.OutputChain <= 0 {
		return &ValidationError{Field: "output chain", Reason: "must be a positive chain id"}
	}

	if !params.Deadline.IsZero() && !params.Deadline.After(now) {
		return &ValidationError{Field: "deadline", Reason: "must be in the future"}
	}

	return nil
}

package engine

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/routeforge-hq/routeforge-engine/pkg/aggregator"
	"github.com/routeforge-hq/routeforge-engine/pkg/metrics"
	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// ExecuteIntent executes the chosen solution's steps strictly in order,
// threading each step's actual output into the next step's input. Execution
// stops at the first failing step; already-executed steps are final and are
// not rolled back. The returned result, success or failure, overwrites any
// prior result for the intent — step failures are reported through the
// result's Success flag, not as a returned error.
func (e *Engine) ExecuteIntent(ctx context.Context, intentID, solutionID string, signer models.Signer) (*models.ExecutionResult, error) {
	intent, exists := e.store.GetIntent(intentID)
	if !exists {
		return nil, &NotFoundError{Kind: "intent", ID: intentID}
	}

	var solution *models.Solution
	for _, s := range e.store.GetSolutions(intentID) {
		if s.ID == solutionID {
			solution = s
			break
		}
	}
	if solution == nil {
		return nil, &NotFoundError{Kind: "solution", ID: solutionID}
	}

	// Claim the intent; a second concurrent attempt for the same id is
	// rejected rather than queued
	mu := e.locks.get(intentID)
	mu.Lock()
	current, _ := e.store.GetIntent(intentID)
	if current != nil && current.Status == models.IntentStatusExecuting {
		mu.Unlock()
		return nil, &AlreadyExecutingError{IntentID: intentID}
	}
	e.store.UpdateIntentStatus(intentID, models.IntentStatusExecuting)
	mu.Unlock()

	e.logger.Info("Executing intent %s with solution %s (%d steps)",
		intentID, solutionID, len(solution.Steps))

	start := time.Now()
	result := &models.ExecutionResult{
		IntentID:      intentID,
		SolutionID:    solutionID,
		ExecutedSteps: []models.ExecutedStep{},
		TotalGasUsed:  "0",
	}

	// Steps run strictly sequentially: step i+1's input is step i's output
	input := intent.InputAmount
	var stepErr error
	for i, step := range solution.Steps {
		executed, err := e.executeStep(ctx, intent, step, i+1, input, signer)
		if err != nil {
			stepErr = fmt.Errorf("step %d (%s) failed: %v", i+1, step.StepType, err)
			metrics.StepFailures.WithLabelValues(string(step.StepType)).Inc()
			e.logger.ErrorWithChain(step.ChainID, "Intent %s: %v", intentID, stepErr)
			break
		}

		result.ExecutedSteps = append(result.ExecutedSteps, *executed)
		if gas, err := strconv.ParseFloat(executed.GasUsed, 64); err == nil {
			metrics.GasUsed.WithLabelValues(strconv.Itoa(step.ChainID)).Observe(gas)
		}
		input = executed.ActualOutput
	}

	gasValues := make([]string, 0, len(result.ExecutedSteps))
	for _, executed := range result.ExecutedSteps {
		gasValues = append(gasValues, executed.GasUsed)
	}
	if totalGas, err := sumGas(gasValues...); err == nil {
		result.TotalGasUsed = totalGas
	} else {
		e.logger.Error("Intent %s: failed to total gas: %v", intentID, err)
	}

	status := "completed"
	if stepErr != nil {
		result.Success = false
		result.Error = stepErr.Error()
		e.setStatus(intentID, models.IntentStatusFailed)
		status = "failed"
	} else {
		result.Success = true
		if n := len(result.ExecutedSteps); n > 0 {
			result.ActualOutput = result.ExecutedSteps[n-1].ActualOutput
		}
		e.setStatus(intentID, models.IntentStatusCompleted)
	}

	metrics.Executions.WithLabelValues(status).Inc()
	metrics.ExecutionTime.WithLabelValues(status).Observe(time.Since(start).Seconds())

	e.store.PutExecution(intentID, result)

	e.logger.Info("Execution of intent %s %s: %d step(s) executed, gas used %s",
		intentID, status, len(result.ExecutedSteps), result.TotalGasUsed)
	return result, nil
}

// executeStep dispatches one step to the collaborator matching its type.
// The realized gas of a dispatched step is its estimate; neither
// collaborator reports actual gas.
func (e *Engine) executeStep(ctx context.Context, intent *models.Intent, step models.ExecutionStep, number int, input string, signer models.Signer) (*models.ExecutedStep, error) {
	cb := e.breaker(step.ChainID)
	if cb.IsOpen() {
		return nil, fmt.Errorf("circuit breaker open for chain %d", step.ChainID)
	}

	sctx, cancel := context.WithTimeout(ctx, e.cfg.StepTimeout)
	defer cancel()

	switch step.StepType {
	case models.StepTypeSwap:
		swap, err := e.aggregator.ExecuteSwap(sctx, step.ChainID, step.InputToken, step.OutputToken, input, signer, aggregator.SwapOptions{
			Slippage: e.cfg.DefaultSlippage,
		})
		if err != nil {
			cb.RecordFailure()
			return nil, err
		}
		cb.RecordSuccess()

		return &models.ExecutedStep{
			StepNumber:   number,
			TxHash:       swap.TxHash,
			GasUsed:      step.GasEstimate,
			ActualOutput: swap.OutputAmount,
			Timestamp:    time.Now(),
		}, nil

	case models.StepTypeBridge:
		recipient := intent.Recipient
		if recipient == "" {
			recipient = signer.Address().Hex()
		}

		bridged, err := e.bridge.BridgeTokens(sctx, step.ChainID, intent.OutputChain, step.InputToken, input, recipient, signer)
		if err != nil {
			cb.RecordFailure()
			return nil, err
		}
		cb.RecordSuccess()

		// Bridged amounts arrive 1:1 on the destination chain
		return &models.ExecutedStep{
			StepNumber:   number,
			TxHash:       bridged.LockTx,
			GasUsed:      step.GasEstimate,
			ActualOutput: input,
			Timestamp:    time.Now(),
		}, nil

	default:
		return nil, &UnsupportedStepTypeError{StepType: step.StepType}
	}
}

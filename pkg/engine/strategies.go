package engine

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/routeforge-hq/routeforge-engine/pkg/aggregator"
	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// Per-strategy heuristics. Confidence and execution time are fixed estimates
// rather than live data; scoring relies on these exact values.
const (
	sameChainConfidence  = 0.95
	sameChainExecSeconds = 30

	directBridgeConfidence  = 0.90
	directBridgeExecSeconds = 300

	multiHopConfidence  = 0.85
	multiHopExecSeconds = 360

	// bridgeGasEstimate is the fixed gas estimate for a bridge step; bridges
	// do not quote gas
	bridgeGasEstimate = "500000"

	swapProtocol   = "dex-aggregator"
	bridgeProtocol = "canonical-bridge"
)

// sameChainSwap builds a single-step plan swapping the input token directly
// into the output token on the intent's only chain
func (e *Engine) sameChainSwap(ctx context.Context, intent *models.Intent) (*models.Solution, error) {
	quote, err := e.quote(ctx, intent.InputChain, intent.InputToken, intent.OutputToken, intent.InputAmount)
	if err != nil {
		return nil, err
	}

	step := models.ExecutionStep{
		StepType:        models.StepTypeSwap,
		ChainID:         intent.InputChain,
		Protocol:        swapProtocol,
		InputToken:      intent.InputToken,
		OutputToken:     intent.OutputToken,
		EstimatedInput:  intent.InputAmount,
		EstimatedOutput: quote.ToTokenAmount,
		GasEstimate:     quote.EstimatedGas,
	}

	totalGas, err := sumGas(step.GasEstimate)
	if err != nil {
		return nil, err
	}

	return e.newSolution(intent, []models.ExecutionStep{step}, totalGas, sameChainConfidence, sameChainExecSeconds), nil
}

// directBridge builds a single-step plan moving the input token across
// chains 1:1 into its bridge-target equivalent
func (e *Engine) directBridge(_ context.Context, intent *models.Intent) (*models.Solution, error) {
	step := models.ExecutionStep{
		StepType:        models.StepTypeBridge,
		ChainID:         intent.InputChain,
		Protocol:        bridgeProtocol,
		InputToken:      intent.InputToken,
		OutputToken:     intent.OutputToken,
		EstimatedInput:  intent.InputAmount,
		EstimatedOutput: intent.InputAmount,
		GasEstimate:     bridgeGasEstimate,
	}

	return e.newSolution(intent, []models.ExecutionStep{step}, bridgeGasEstimate, directBridgeConfidence, directBridgeExecSeconds), nil
}

// swapBridgeSwap builds a three-step plan: swap into the source chain's
// intermediate stable token, bridge it across, then swap into the output
// token on the destination chain. Both chains must have an intermediate
// token configured.
func (e *Engine) swapBridgeSwap(ctx context.Context, intent *models.Intent) (*models.Solution, error) {
	sourceToken, exists := e.cfg.IntermediateToken(intent.InputChain)
	if !exists {
		return nil, fmt.Errorf("no intermediate token configured for chain %d", intent.InputChain)
	}
	destToken, exists := e.cfg.IntermediateToken(intent.OutputChain)
	if !exists {
		return nil, fmt.Errorf("no intermediate token configured for chain %d", intent.OutputChain)
	}

	sourceQuote, err := e.quote(ctx, intent.InputChain, intent.InputToken, sourceToken, intent.InputAmount)
	if err != nil {
		return nil, err
	}

	swapIn := models.ExecutionStep{
		StepType:        models.StepTypeSwap,
		ChainID:         intent.InputChain,
		Protocol:        swapProtocol,
		InputToken:      intent.InputToken,
		OutputToken:     sourceToken,
		EstimatedInput:  intent.InputAmount,
		EstimatedOutput: sourceQuote.ToTokenAmount,
		GasEstimate:     sourceQuote.EstimatedGas,
	}

	hop := models.ExecutionStep{
		StepType:        models.StepTypeBridge,
		ChainID:         intent.InputChain,
		Protocol:        bridgeProtocol,
		InputToken:      sourceToken,
		OutputToken:     destToken,
		EstimatedInput:  sourceQuote.ToTokenAmount,
		EstimatedOutput: sourceQuote.ToTokenAmount,
		GasEstimate:     bridgeGasEstimate,
	}

	destQuote, err := e.quote(ctx, intent.OutputChain, destToken, intent.OutputToken, sourceQuote.ToTokenAmount)
	if err != nil {
		return nil, err
	}

	swapOut := models.ExecutionStep{
		StepType:        models.StepTypeSwap,
		ChainID:         intent.OutputChain,
		Protocol:        swapProtocol,
		InputToken:      destToken,
		OutputToken:     intent.OutputToken,
		EstimatedInput:  sourceQuote.ToTokenAmount,
		EstimatedOutput: destQuote.ToTokenAmount,
		GasEstimate:     destQuote.EstimatedGas,
	}

	steps := []models.ExecutionStep{swapIn, hop, swapOut}

	// Exact integer summation; large gas values must not go through floats
	totalGas, err := sumGas(swapIn.GasEstimate, hop.GasEstimate, swapOut.GasEstimate)
	if err != nil {
		return nil, err
	}

	return e.newSolution(intent, steps, totalGas, multiHopConfidence, multiHopExecSeconds), nil
}

// quote prices a swap with the shared quote options and the per-chain
// circuit breaker applied
func (e *Engine) quote(ctx context.Context, chainID int, inputToken, outputToken, amount string) (*aggregator.Quote, error) {
	cb := e.breaker(chainID)
	if cb.IsOpen() {
		return nil, fmt.Errorf("circuit breaker open for chain %d", chainID)
	}

	qctx, cancel := context.WithTimeout(ctx, e.cfg.QuoteTimeout)
	defer cancel()

	quote, err := e.aggregator.GetQuote(qctx, chainID, inputToken, outputToken, amount, aggregator.QuoteOptions{
		Slippage:   e.cfg.DefaultSlippage,
		IncludeGas: true,
	})
	if err != nil {
		cb.RecordFailure()
		return nil, fmt.Errorf("quote failed on chain %d: %v", chainID, err)
	}
	cb.RecordSuccess()
	return quote, nil
}

// newSolution assembles a solution around an ordered step sequence. The
// solution's estimated output is the last step's estimated output.
func (e *Engine) newSolution(intent *models.Intent, steps []models.ExecutionStep, totalGas string, confidence float64, execSeconds int) *models.Solution {
	return &models.Solution{
		ID:              uuid.NewString(),
		IntentID:        intent.ID,
		Solver:          e.cfg.SolverID,
		Steps:           steps,
		EstimatedOutput: steps[len(steps)-1].EstimatedOutput,
		TotalGasCost:    totalGas,
		ExecutionTime:   execSeconds,
		Confidence:      confidence,
		CreatedAt:       time.Now(),
	}
}

// sumGas adds base-10 integer gas values exactly. Empty values count as
// zero.
func sumGas(values ...string) (string, error) {
	total := new(big.Int)
	for _, value := range values {
		if value == "" {
			continue
		}
		n, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return "", fmt.Errorf("invalid gas value: %s", value)
		}
		total.Add(total, n)
	}
	return total.String(), nil
}

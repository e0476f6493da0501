package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeforge-hq/routeforge-engine/pkg/aggregator"
	"github.com/routeforge-hq/routeforge-engine/pkg/engine/mocks"
	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

func TestFindSolutionsUnknownIntent(t *testing.T) {
	engine, _ := newTestEngine(mocks.NewMockAggregator(), mocks.NewMockBridge())

	_, err := engine.FindSolutions(context.Background(), "missing")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "intent", notFound.Kind)
}

func TestFindSolutionsSameChain(t *testing.T) {
	agg := mocks.NewMockAggregator()
	agg.QuoteFn = func(_ int, _, _, _ string) (*aggregator.Quote, error) {
		return &aggregator.Quote{ToTokenAmount: "2000000000000000000", EstimatedGas: "120000"}, nil
	}
	engine, st := newTestEngine(agg, mocks.NewMockBridge())
	st.PutIntent(testIntent("intent-1", 1, 1))

	solutions, err := engine.FindSolutions(context.Background(), "intent-1")
	require.NoError(t, err)
	require.Len(t, solutions, 1)

	solution := solutions[0]
	require.Len(t, solution.Steps, 1)
	assert.Equal(t, models.StepTypeSwap, solution.Steps[0].StepType)
	assert.Equal(t, "2000000000000000000", solution.EstimatedOutput)
	assert.Equal(t, "120000", solution.TotalGasCost)
	assert.Equal(t, 0.95, solution.Confidence)
	assert.Equal(t, 30, solution.ExecutionTime)
	assert.Equal(t, "intent-1", solution.IntentID)
}

func TestFindSolutionsCrossChain(t *testing.T) {
	agg := mocks.NewMockAggregator()
	agg.QuoteFn = func(_ int, _, _, amount string) (*aggregator.Quote, error) {
		return &aggregator.Quote{ToTokenAmount: amount, EstimatedGas: "100000"}, nil
	}
	engine, st := newTestEngine(agg, mocks.NewMockBridge())
	st.PutIntent(testIntent("intent-1", 1, 42))

	solutions, err := engine.FindSolutions(context.Background(), "intent-1")
	require.NoError(t, err)
	require.Len(t, solutions, 2)

	// Stored in strategy order: direct bridge first, multi hop second
	bridge := solutions[0]
	require.Len(t, bridge.Steps, 1)
	assert.Equal(t, models.StepTypeBridge, bridge.Steps[0].StepType)
	assert.Equal(t, 0.90, bridge.Confidence)
	// Bridging is 1:1
	assert.Equal(t, "1000000000000000000", bridge.EstimatedOutput)

	multiHop := solutions[1]
	require.Len(t, multiHop.Steps, 3)
	assert.Equal(t, models.StepTypeSwap, multiHop.Steps[0].StepType)
	assert.Equal(t, models.StepTypeBridge, multiHop.Steps[1].StepType)
	assert.Equal(t, models.StepTypeSwap, multiHop.Steps[2].StepType)
	assert.Equal(t, 0.85, multiHop.Confidence)
	// Two swap quotes at 100000 gas each plus the fixed bridge estimate
	assert.Equal(t, "700000", multiHop.TotalGasCost)

	// The route runs through the configured intermediate tokens
	assert.Equal(t, testUSDC1, multiHop.Steps[0].OutputToken)
	assert.Equal(t, testUSDC2, multiHop.Steps[2].InputToken)
}

func TestFindSolutionsStrategyFailureIsContained(t *testing.T) {
	agg := mocks.NewMockAggregator()
	agg.QuoteFn = func(_ int, _, _, _ string) (*aggregator.Quote, error) {
		return nil, errors.New("aggregator down")
	}
	engine, st := newTestEngine(agg, mocks.NewMockBridge())
	st.PutIntent(testIntent("intent-1", 1, 42))

	// Multi hop needs quotes and fails; direct bridge does not
	solutions, err := engine.FindSolutions(context.Background(), "intent-1")
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	assert.Equal(t, models.StepTypeBridge, solutions[0].Steps[0].StepType)

	intent, _ := engine.GetIntent("intent-1")
	assert.Equal(t, models.IntentStatusSolutionsFound, intent.Status)
}

func TestFindSolutionsEmptyStillCompletes(t *testing.T) {
	agg := mocks.NewMockAggregator()
	agg.QuoteFn = func(_ int, _, _, _ string) (*aggregator.Quote, error) {
		return nil, errors.New("aggregator down")
	}
	engine, st := newTestEngine(agg, mocks.NewMockBridge())
	st.PutIntent(testIntent("intent-1", 1, 1))

	solutions, err := engine.FindSolutions(context.Background(), "intent-1")
	require.NoError(t, err)
	assert.Empty(t, solutions)

	intent, _ := engine.GetIntent("intent-1")
	assert.Equal(t, models.IntentStatusSolutionsFound, intent.Status)
}

func TestFindSolutionsNoIntermediateToken(t *testing.T) {
	engine, st := newTestEngine(mocks.NewMockAggregator(), mocks.NewMockBridge())
	// Chain 7 has no intermediate token configured
	st.PutIntent(testIntent("intent-1", 1, 7))

	solutions, err := engine.FindSolutions(context.Background(), "intent-1")
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	assert.Equal(t, models.StepTypeBridge, solutions[0].Steps[0].StepType)
}

func TestFindSolutionsThreadsSourceQuoteIntoDestQuote(t *testing.T) {
	agg := mocks.NewMockAggregator()
	agg.QuoteFn = func(chainID int, _, _, amount string) (*aggregator.Quote, error) {
		if chainID == 1 {
			return &aggregator.Quote{ToTokenAmount: "555", EstimatedGas: "100000"}, nil
		}
		return &aggregator.Quote{ToTokenAmount: amount, EstimatedGas: "100000"}, nil
	}
	engine, st := newTestEngine(agg, mocks.NewMockBridge())
	st.PutIntent(testIntent("intent-1", 1, 42))

	_, err := engine.FindSolutions(context.Background(), "intent-1")
	require.NoError(t, err)

	// The destination-chain quote prices the source quote's output
	var destCall *mocks.QuoteCall
	for i := range agg.QuoteCalls {
		if agg.QuoteCalls[i].ChainID == 42 {
			destCall = &agg.QuoteCalls[i]
		}
	}
	require.NotNil(t, destCall)
	assert.Equal(t, "555", destCall.Amount)
	assert.Equal(t, testUSDC2, destCall.InputToken)
}

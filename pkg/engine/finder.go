package engine

import (
	"context"
	"sync"
	"time"

	"github.com/routeforge-hq/routeforge-engine/pkg/metrics"
	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// namedStrategy pairs a discovery strategy with its name for logging and
// metrics
type namedStrategy struct {
	name string
	run  func(ctx context.Context, intent *models.Intent) (*models.Solution, error)
}

// strategyOutcome is the explicit result of one strategy. Failed strategies
// contribute nothing to the solution list; they never abort the search.
type strategyOutcome struct {
	name     string
	solution *models.Solution
	err      error
}

// FindSolutions runs the discovery strategies applicable to the intent and
// stores whichever succeed. Strategies run concurrently; each failure is
// contained to its own strategy. Discovery always completes: the intent ends
// in the solutions_found state even when the resulting list is empty.
func (e *Engine) FindSolutions(ctx context.Context, intentID string) ([]*models.Solution, error) {
	intent, exists := e.store.GetIntent(intentID)
	if !exists {
		return nil, &NotFoundError{Kind: "intent", ID: intentID}
	}

	e.setStatus(intentID, models.IntentStatusFindingSolutions)

	var strategies []namedStrategy
	if intent.SameChain() {
		strategies = []namedStrategy{
			{name: "same_chain_swap", run: e.sameChainSwap},
		}
	} else {
		strategies = []namedStrategy{
			{name: "direct_bridge", run: e.directBridge},
			{name: "swap_bridge_swap", run: e.swapBridgeSwap},
		}
	}

	start := time.Now()

	// Fan out: strategies touch unrelated chains and services, with no data
	// dependency between them
	outcomes := make([]strategyOutcome, len(strategies))
	var wg sync.WaitGroup
	for i, strategy := range strategies {
		wg.Add(1)
		go func(i int, strategy namedStrategy) {
			defer wg.Done()
			solution, err := strategy.run(ctx, intent)
			outcomes[i] = strategyOutcome{name: strategy.name, solution: solution, err: err}
		}(i, strategy)
	}
	wg.Wait()

	solutions := make([]*models.Solution, 0, len(strategies))
	for _, outcome := range outcomes {
		if outcome.err != nil {
			e.logger.Debug("Strategy %s produced no solution for intent %s: %v",
				outcome.name, intentID, outcome.err)
			metrics.StrategyFailures.WithLabelValues(outcome.name).Inc()
			continue
		}
		metrics.SolutionsFound.WithLabelValues(outcome.name).Inc()
		solutions = append(solutions, outcome.solution)
	}
	metrics.DiscoveryTime.Observe(time.Since(start).Seconds())

	e.store.PutSolutions(intentID, solutions)

	// "No viable plan" is a valid discovery outcome, not an error
	e.setStatus(intentID, models.IntentStatusSolutionsFound)

	e.logger.Info("Found %d solution(s) for intent %s", len(solutions), intentID)
	return solutions, nil
}

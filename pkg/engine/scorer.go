package engine

import (
	"math/big"

	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// Scoring weights. Confidence dominates: a low-confidence plan must be
// substantially better on output, gas and time to win over a
// higher-confidence one.
const (
	outputScoreDivisor   = 1e18
	gasScoreDivisor      = 1e9
	timePenaltyPerMinute = 10.0
	confidenceWeight     = 1000.0
)

// GetBestSolution returns the stored solution with the highest score for an
// intent, or nil when no solutions were found. The fold is deterministic:
// on an exact tie the first-seen solution wins.
func (e *Engine) GetBestSolution(intentID string) (*models.Solution, error) {
	if _, exists := e.store.GetIntent(intentID); !exists {
		return nil, &NotFoundError{Kind: "intent", ID: intentID}
	}

	solutions := e.store.GetSolutions(intentID)
	if len(solutions) == 0 {
		return nil, nil
	}

	best := solutions[0]
	bestScore := scoreSolution(best)
	for _, solution := range solutions[1:] {
		if score := scoreSolution(solution); score > bestScore {
			best = solution
			bestScore = score
		}
	}
	return best, nil
}

// scoreSolution computes the weighted score of a solution: estimated output
// scaled to whole tokens, minus gas and time penalties, plus the dominant
// confidence term. Unparsable amounts contribute nothing rather than
// disqualifying the solution.
func scoreSolution(solution *models.Solution) float64 {
	var outputScore float64
	if output, ok := new(big.Float).SetString(solution.EstimatedOutput); ok {
		outputScore, _ = new(big.Float).Quo(output, big.NewFloat(outputScoreDivisor)).Float64()
	}

	var gasScore float64
	if gas, ok := new(big.Float).SetString(solution.TotalGasCost); ok {
		scaled, _ := new(big.Float).Quo(gas, big.NewFloat(gasScoreDivisor)).Float64()
		gasScore = -scaled
	}

	timeScore := -(float64(solution.ExecutionTime) / 60.0) * timePenaltyPerMinute
	confidenceScore := solution.Confidence * confidenceWeight

	return outputScore + gasScore + timeScore + confidenceScore
}

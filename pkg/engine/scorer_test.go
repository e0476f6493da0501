package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeforge-hq/routeforge-engine/pkg/engine/mocks"
	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

func solutionWith(id string, output, gas string, execSeconds int, confidence float64) *models.Solution {
	return &models.Solution{
		ID:              id,
		IntentID:        "intent-1",
		EstimatedOutput: output,
		TotalGasCost:    gas,
		ExecutionTime:   execSeconds,
		Confidence:      confidence,
	}
}

func TestGetBestSolutionUnknownIntent(t *testing.T) {
	engine, _ := newTestEngine(mocks.NewMockAggregator(), mocks.NewMockBridge())

	_, err := engine.GetBestSolution("missing")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetBestSolutionEmpty(t *testing.T) {
	engine, st := newTestEngine(mocks.NewMockAggregator(), mocks.NewMockBridge())
	st.PutIntent(testIntent("intent-1", 1, 42))
	st.PutSolutions("intent-1", nil)

	best, err := engine.GetBestSolution("intent-1")
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestGetBestSolutionSingle(t *testing.T) {
	engine, st := newTestEngine(mocks.NewMockAggregator(), mocks.NewMockBridge())
	st.PutIntent(testIntent("intent-1", 1, 42))
	st.PutSolutions("intent-1", []*models.Solution{
		solutionWith("only", "1000000000000000000", "100000", 30, 0.95),
	})

	best, err := engine.GetBestSolution("intent-1")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "only", best.ID)
}

func TestGetBestSolutionConfidenceDominates(t *testing.T) {
	engine, st := newTestEngine(mocks.NewMockAggregator(), mocks.NewMockBridge())
	st.PutIntent(testIntent("intent-1", 1, 42))

	// The low-confidence plan has double the output, but one whole token of
	// output is worth far less than five points of confidence
	st.PutSolutions("intent-1", []*models.Solution{
		solutionWith("risky", "2000000000000000000", "100000", 30, 0.85),
		solutionWith("safe", "1000000000000000000", "100000", 30, 0.95),
	})

	best, err := engine.GetBestSolution("intent-1")
	require.NoError(t, err)
	assert.Equal(t, "safe", best.ID)
}

func TestGetBestSolutionOutputBreaksEqualConfidence(t *testing.T) {
	engine, st := newTestEngine(mocks.NewMockAggregator(), mocks.NewMockBridge())
	st.PutIntent(testIntent("intent-1", 1, 42))

	st.PutSolutions("intent-1", []*models.Solution{
		solutionWith("smaller", "1000000000000000000", "100000", 30, 0.95),
		solutionWith("bigger", "3000000000000000000", "100000", 30, 0.95),
	})

	best, err := engine.GetBestSolution("intent-1")
	require.NoError(t, err)
	assert.Equal(t, "bigger", best.ID)
}

func TestGetBestSolutionTieKeepsFirst(t *testing.T) {
	engine, st := newTestEngine(mocks.NewMockAggregator(), mocks.NewMockBridge())
	st.PutIntent(testIntent("intent-1", 1, 42))

	// Identical scores: the first stored solution must win every time
	st.PutSolutions("intent-1", []*models.Solution{
		solutionWith("first", "1000000000000000000", "100000", 30, 0.95),
		solutionWith("second", "1000000000000000000", "100000", 30, 0.95),
	})

	for i := 0; i < 20; i++ {
		best, err := engine.GetBestSolution("intent-1")
		require.NoError(t, err)
		assert.Equal(t, "first", best.ID)
	}
}

func TestScoreSolution(t *testing.T) {
	tests := []struct {
		name     string
		solution *models.Solution
		want     float64
	}{
		{
			name:     "one token 30s full terms",
			solution: solutionWith("s", "1000000000000000000", "1000000000", 30, 0.95),
			// 1.0 - 1.0 - 5.0 + 950.0
			want: 945.0,
		},
		{
			name:     "unparsable output contributes nothing",
			solution: solutionWith("s", "???", "1000000000", 60, 0.90),
			// 0 - 1.0 - 10.0 + 900.0
			want: 889.0,
		},
		{
			name:     "zero everything",
			solution: solutionWith("s", "0", "0", 0, 0),
			want:     0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scoreSolution(tt.solution), 1e-9)
		})
	}
}

package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeforge-hq/routeforge-engine/pkg/engine/mocks"
	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

func validCreateParams() CreateIntentParams {
	return CreateIntentParams{
		InputToken:  testTokenA,
		OutputToken: testTokenB,
		InputAmount: "1000000000000000000",
		InputChain:  1,
		OutputChain: 42,
		User:        "0xcccccccccccccccccccccccccccccccccccccccc",
	}
}

func TestCreateIntentValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *CreateIntentParams)
		field  string
	}{
		{
			name:   "empty input token",
			mutate: func(p *CreateIntentParams) { p.InputToken = "" },
			field:  "input token",
		},
		{
			name:   "empty output token",
			mutate: func(p *CreateIntentParams) { p.OutputToken = "" },
			field:  "output token",
		},
		{
			name:   "non-numeric amount",
			mutate: func(p *CreateIntentParams) { p.InputAmount = "lots" },
			field:  "input amount",
		},
		{
			name:   "zero amount",
			mutate: func(p *CreateIntentParams) { p.InputAmount = "0" },
			field:  "input amount",
		},
		{
			name:   "negative amount",
			mutate: func(p *CreateIntentParams) { p.InputAmount = "-5" },
			field:  "input amount",
		},
		{
			name:   "negative min output",
			mutate: func(p *CreateIntentParams) { p.MinOutputAmount = "-1" },
			field:  "min output amount",
		},
		{
			name:   "zero input chain",
			mutate: func(p *CreateIntentParams) { p.InputChain = 0 },
			field:  "input chain",
		},
		{
			name:   "negative output chain",
			mutate: func(p *CreateIntentParams) { p.OutputChain = -1 },
			field:  "output chain",
		},
		{
			name:   "past deadline",
			mutate: func(p *CreateIntentParams) { p.Deadline = time.Now().Add(-time.Minute) },
			field:  "deadline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := newTestEngine(mocks.NewMockAggregator(), mocks.NewMockBridge())

			params := validCreateParams()
			tt.mutate(&params)

			_, err := engine.CreateIntent(context.Background(), params)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCreateIntentStoresAndDiscovers(t *testing.T) {
	engine, _ := newTestEngine(mocks.NewMockAggregator(), mocks.NewMockBridge())

	id, err := engine.CreateIntent(context.Background(), validCreateParams())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// Discovery runs before CreateIntent returns
	intent, err := engine.GetIntent(id)
	require.NoError(t, err)
	assert.Equal(t, models.IntentStatusSolutionsFound, intent.Status)

	solutions, err := engine.GetSolutions(id)
	require.NoError(t, err)
	assert.NotEmpty(t, solutions)
}

func TestCreateIntentUniqueIDs(t *testing.T) {
	engine, _ := newTestEngine(mocks.NewMockAggregator(), mocks.NewMockBridge())

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		id, err := engine.CreateIntent(context.Background(), validCreateParams())
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate intent id %s", id)
		seen[id] = true
	}
}

func TestCreateIntentDefaultDeadline(t *testing.T) {
	engine, _ := newTestEngine(mocks.NewMockAggregator(), mocks.NewMockBridge())

	before := time.Now()
	id, err := engine.CreateIntent(context.Background(), validCreateParams())
	require.NoError(t, err)

	intent, err := engine.GetIntent(id)
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(5*time.Minute), intent.Deadline, 5*time.Second)
}

func TestCreateIntentExplicitDeadlineKept(t *testing.T) {
	engine, _ := newTestEngine(mocks.NewMockAggregator(), mocks.NewMockBridge())

	deadline := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	params := validCreateParams()
	params.Deadline = deadline

	id, err := engine.CreateIntent(context.Background(), params)
	require.NoError(t, err)

	intent, err := engine.GetIntent(id)
	require.NoError(t, err)
	assert.True(t, intent.Deadline.Equal(deadline))
}

// Package store holds intents, their discovered solutions and the latest
// execution result, keyed by intent id. It is a pure data component; all
// business logic lives in the engine.
package store

import (
	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// Store is the repository contract for intent state. Implementations must
// make reads safe under concurrent writers; callers are responsible for
// serializing writes to the same intent id.
type Store interface {
	// PutIntent stores or replaces an intent
	PutIntent(intent *models.Intent)

	// GetIntent returns a copy of the intent for the given id
	GetIntent(id string) (*models.Intent, bool)

	// ListIntents returns copies of all stored intents
	ListIntents() []*models.Intent

	// UpdateIntentStatus sets the status of the intent with the given id and
	// returns false when the id is unknown
	UpdateIntentStatus(id string, status models.IntentStatus) bool

	// PutSolutions replaces the solution list for an intent
	PutSolutions(intentID string, solutions []*models.Solution)

	// GetSolutions returns the solution list for an intent
	GetSolutions(intentID string) []*models.Solution

	// PutExecution stores the execution result for an intent, overwriting
	// any prior result
	PutExecution(intentID string, result *models.ExecutionResult)

	// GetExecution returns the latest execution result for an intent
	GetExecution(intentID string) (*models.ExecutionResult, bool)
}

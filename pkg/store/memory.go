package store

import (
	"sync"

	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// MemoryStore is an in-memory Store implementation. The mutex guards only
// map access; no I/O happens under the lock.
type MemoryStore struct {
	mu         sync.RWMutex
	intents    map[string]*models.Intent
	solutions  map[string][]*models.Solution
	executions map[string]*models.ExecutionResult
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		intents:    make(map[string]*models.Intent),
		solutions:  make(map[string][]*models.Solution),
		executions: make(map[string]*models.ExecutionResult),
	}
}

// PutIntent stores or replaces an intent
func (s *MemoryStore) PutIntent(intent *models.Intent) {
	cp := *intent

	s.mu.Lock()
	defer s.mu.Unlock()
	s.intents[intent.ID] = &cp
}

// GetIntent returns a copy of the intent for the given id
func (s *MemoryStore) GetIntent(id string) (*models.Intent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	intent, exists := s.intents[id]
	if !exists {
		return nil, false
	}
	cp := *intent
	return &cp, true
}

// ListIntents returns copies of all stored intents
func (s *MemoryStore) ListIntents() []*models.Intent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	intents := make([]*models.Intent, 0, len(s.intents))
	for _, intent := range s.intents {
		cp := *intent
		intents = append(intents, &cp)
	}
	return intents
}

// UpdateIntentStatus sets the status of the intent with the given id
func (s *MemoryStore) UpdateIntentStatus(id string, status models.IntentStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	intent, exists := s.intents[id]
	if !exists {
		return false
	}
	intent.Status = status
	return true
}

// PutSolutions replaces the solution list for an intent
func (s *MemoryStore) PutSolutions(intentID string, solutions []*models.Solution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solutions[intentID] = solutions
}

// GetSolutions returns the solution list for an intent
func (s *MemoryStore) GetSolutions(intentID string) []*models.Solution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.solutions[intentID]
}

// PutExecution stores the execution result for an intent, overwriting any
// prior result
func (s *MemoryStore) PutExecution(intentID string, result *models.ExecutionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executions[intentID] = result
}

// GetExecution returns the latest execution result for an intent
func (s *MemoryStore) GetExecution(intentID string) (*models.ExecutionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, exists := s.executions[intentID]
	return result, exists
}

// CountByStatus returns the number of stored intents per status
func (s *MemoryStore) CountByStatus() map[models.IntentStatus]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[models.IntentStatus]int)
	for _, intent := range s.intents {
		counts[intent.Status]++
	}
	return counts
}

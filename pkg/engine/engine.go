// Package engine implements the intent-based execution engine: intent
// lifecycle management, multi-strategy solution discovery, multi-objective
// solution scoring and sequential amount-threading execution.
package engine

import (
	"sync"

	"github.com/routeforge-hq/routeforge-engine/pkg/aggregator"
	"github.com/routeforge-hq/routeforge-engine/pkg/bridge"
	"github.com/routeforge-hq/routeforge-engine/pkg/circuitbreaker"
	"github.com/routeforge-hq/routeforge-engine/pkg/config"
	"github.com/routeforge-hq/routeforge-engine/pkg/logger"
	"github.com/routeforge-hq/routeforge-engine/pkg/metrics"
	"github.com/routeforge-hq/routeforge-engine/pkg/models"
	"github.com/routeforge-hq/routeforge-engine/pkg/store"
)

// Engine coordinates intent creation, solution discovery, scoring and
// execution. One engine instance serves many concurrent intents; construct
// it once at process start and pass it by reference.
type Engine struct {
	cfg        *config.Config
	store      store.Store
	aggregator aggregator.Aggregator
	bridge     bridge.Bridge
	logger     logger.Logger
	locks      *intentLocks

	breakersMu sync.Mutex
	breakers   map[int]*circuitbreaker.CircuitBreaker
}

// New creates an engine backed by the given store and collaborator clients
func New(cfg *config.Config, st store.Store, agg aggregator.Aggregator, br bridge.Bridge, log logger.Logger) *Engine {
	return &Engine{
		cfg:        cfg,
		store:      st,
		aggregator: agg,
		bridge:     br,
		logger:     log,
		locks:      newIntentLocks(),
		breakers:   make(map[int]*circuitbreaker.CircuitBreaker),
	}
}

// GetIntent returns the intent with the given id
func (e *Engine) GetIntent(id string) (*models.Intent, error) {
	intent, exists := e.store.GetIntent(id)
	if !exists {
		return nil, &NotFoundError{Kind: "intent", ID: id}
	}
	return intent, nil
}

// GetSolutions returns the discovered solutions for an intent. The list may
// be empty when no strategy succeeded.
func (e *Engine) GetSolutions(id string) ([]*models.Solution, error) {
	if _, exists := e.store.GetIntent(id); !exists {
		return nil, &NotFoundError{Kind: "intent", ID: id}
	}
	return e.store.GetSolutions(id), nil
}

// GetExecution returns the latest execution result for an intent
func (e *Engine) GetExecution(id string) (*models.ExecutionResult, error) {
	if _, exists := e.store.GetIntent(id); !exists {
		return nil, &NotFoundError{Kind: "intent", ID: id}
	}
	result, exists := e.store.GetExecution(id)
	if !exists {
		return nil, &NotFoundError{Kind: "execution", ID: id}
	}
	return result, nil
}

// CountsByStatus returns the number of stored intents per status
func (e *Engine) CountsByStatus() map[models.IntentStatus]int {
	counts := make(map[models.IntentStatus]int)
	for _, intent := range e.store.ListIntents() {
		counts[intent.Status]++
	}
	return counts
}

// setStatus serializes a status transition against other writers of the
// same intent
func (e *Engine) setStatus(id string, status models.IntentStatus) {
	mu := e.locks.get(id)
	mu.Lock()
	e.store.UpdateIntentStatus(id, status)
	mu.Unlock()

	e.updateActiveGauge()
}

// updateActiveGauge recounts intents in non-terminal states
func (e *Engine) updateActiveGauge() {
	active := 0
	for _, intent := range e.store.ListIntents() {
		switch intent.Status {
		case models.IntentStatusCompleted, models.IntentStatusFailed, models.IntentStatusExpired:
		default:
			active++
		}
	}
	metrics.ActiveIntents.Set(float64(active))
}

// breaker returns the circuit breaker for a chain, creating it on first use
func (e *Engine) breaker(chainID int) *circuitbreaker.CircuitBreaker {
	e.breakersMu.Lock()
	defer e.breakersMu.Unlock()

	cb, exists := e.breakers[chainID]
	if !exists {
		cb = circuitbreaker.New(
			e.cfg.CircuitBreaker.Enabled,
			e.cfg.CircuitBreaker.Threshold,
			e.cfg.CircuitBreaker.WindowDuration,
			e.cfg.CircuitBreaker.ResetTimeout,
		)
		e.breakers[chainID] = cb
	}
	return cb
}

// BreakerStates returns a snapshot of all per-chain circuit breakers
func (e *Engine) BreakerStates() map[int]circuitbreaker.State {
	e.breakersMu.Lock()
	defer e.breakersMu.Unlock()

	states := make(map[int]circuitbreaker.State, len(e.breakers))
	for chainID, cb := range e.breakers {
		states[chainID] = cb.GetState()
	}
	return states
}

// ResetBreaker manually closes the breaker for a chain. Returns false when
// no breaker exists for the chain yet.
func (e *Engine) ResetBreaker(chainID int) bool {
	e.breakersMu.Lock()
	cb, exists := e.breakers[chainID]
	e.breakersMu.Unlock()

	if !exists {
		return false
	}
	cb.Reset()
	return true
}

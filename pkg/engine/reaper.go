package engine

import (
	"time"

	"github.com/routeforge-hq/routeforge-engine/pkg/metrics"
	"github.com/routeforge-hq/routeforge-engine/pkg/models"
)

// CleanupExpiredIntents marks intents whose deadline has passed as expired
// and returns how many were transitioned. Completed intents are never
// re-marked, intents mid-execution are left for the executor to settle, and
// intents already expired are not counted again, so repeated sweeps of the
// same data are no-ops. Expired intents stay in the store.
func (e *Engine) CleanupExpiredIntents() int {
	now := time.Now()
	expired := 0

	for _, intent := range e.store.ListIntents() {
		if !intent.ExpiredAt(now) {
			continue
		}

		switch intent.Status {
		case models.IntentStatusCompleted, models.IntentStatusExpired, models.IntentStatusExecuting:
			continue
		}

		mu := e.locks.get(intent.ID)
		mu.Lock()
		current, exists := e.store.GetIntent(intent.ID)
		if !exists || current.Status == models.IntentStatusCompleted ||
			current.Status == models.IntentStatusExpired ||
			current.Status == models.IntentStatusExecuting {
			mu.Unlock()
			continue
		}
		e.store.UpdateIntentStatus(intent.ID, models.IntentStatusExpired)
		mu.Unlock()

		metrics.ExpiredIntents.Inc()
		e.logger.Debug("Intent %s expired (deadline %s)", intent.ID, current.Deadline.Format(time.RFC3339))
		expired++
	}

	if expired > 0 {
		e.updateActiveGauge()
		e.logger.Info("Expired %d intent(s)", expired)
	}
	return expired
}

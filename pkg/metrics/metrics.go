package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for monitoring
var (
	IntentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "engine_intents_created_total",
		Help: "The total number of intents created",
	})

	IntentValidationErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "engine_intent_validation_errors_total",
		Help: "The total number of rejected intent creation attempts",
	})

	SolutionsFound = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "engine_solutions_found_total",
		Help: "The total number of solutions discovered by strategy",
	}, []string{"strategy"})

	StrategyFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "engine_strategy_failures_total",
		Help: "The total number of discovery strategies that produced no solution",
	}, []string{"strategy"})

	DiscoveryTime = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "engine_discovery_seconds",
		Help:    "Time taken to run all discovery strategies for an intent",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
	})

	Executions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "engine_executions_total",
		Help: "The total number of executions by outcome",
	}, []string{"status"})

	ExecutionTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "engine_execution_seconds",
		Help:    "Time taken to execute a solution",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"status"})

	StepFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "engine_step_failures_total",
		Help: "The total number of failed execution steps by step type",
	}, []string{"step_type"})

	GasUsed = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "engine_gas_used",
		Help:    "Gas used per executed step",
		Buckets: prometheus.ExponentialBuckets(21000, 2, 10),
	}, []string{"chain_id"})

	ExpiredIntents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "engine_expired_intents_total",
		Help: "The total number of intents marked expired by the reaper",
	})

	ActiveIntents = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "engine_active_intents",
		Help: "The number of intents in a non-terminal state",
	})
)

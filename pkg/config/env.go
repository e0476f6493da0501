package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/routeforge-hq/routeforge-engine/pkg/chains"
	"github.com/routeforge-hq/routeforge-engine/pkg/logger"
)

const (
	// DefaultAggregatorEndpoint defines the default DEX aggregator API endpoint
	DefaultAggregatorEndpoint = "https://aggregator.routeforge.xyz"

	// DefaultBridgeEndpoint defines the default bridge relay API endpoint
	DefaultBridgeEndpoint = "https://bridge.routeforge.xyz"

	// DefaultSolverID identifies solutions produced by this engine
	DefaultSolverID = "routeforge-engine"

	// DefaultDeadlineSeconds defines the default intent deadline in seconds
	DefaultDeadlineSeconds = 300

	// DefaultSlippage defines the default slippage tolerance in percent
	DefaultSlippage = 0.5

	// DefaultQuoteTimeoutSeconds bounds a single quote call
	DefaultQuoteTimeoutSeconds = 10

	// DefaultStepTimeoutSeconds bounds a single execution step
	DefaultStepTimeoutSeconds = 180

	// DefaultReaperIntervalSeconds defines how often expired intents are reaped
	DefaultReaperIntervalSeconds = 30

	// DefaultMetricsPort defines the default port for the health and metrics server
	DefaultMetricsPort = "8080"

	// DefaultCircuitBreakerEnabled defines whether the circuit breaker is enabled
	DefaultCircuitBreakerEnabled = true

	// DefaultCircuitBreakerThreshold defines the number of failures before the circuit breaker trips
	DefaultCircuitBreakerThreshold = 5

	// DefaultCircuitBreakerWindowSeconds defines the time window for the circuit breaker
	DefaultCircuitBreakerWindowSeconds = 300

	// DefaultCircuitBreakerResetSeconds defines the reset timeout for the circuit breaker
	DefaultCircuitBreakerResetSeconds = 900
)

// getEnvSeconds reads a positive integer number of seconds from the
// environment, falling back to a default
func getEnvSeconds(key string, fallback int) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return time.Duration(fallback) * time.Second, nil
	}

	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %s, must be an integer", key, value)
	}
	if seconds <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return time.Duration(seconds) * time.Second, nil
}

// getEnvEndpoint reads a URL from the environment, falling back to a default
func getEnvEndpoint(key, fallback string) (string, error) {
	endpoint := os.Getenv(key)
	if endpoint == "" {
		return fallback, nil
	}

	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return "", fmt.Errorf("invalid %s value: %s, must be a valid URL", key, endpoint)
	}
	return endpoint, nil
}

// GetEnvAggregatorEndpoint returns the aggregator API endpoint from environment variables
func GetEnvAggregatorEndpoint() (string, error) {
	return getEnvEndpoint("AGGREGATOR_ENDPOINT", DefaultAggregatorEndpoint)
}

// GetEnvBridgeEndpoint returns the bridge relay API endpoint from environment variables
func GetEnvBridgeEndpoint() (string, error) {
	return getEnvEndpoint("BRIDGE_ENDPOINT", DefaultBridgeEndpoint)
}

// GetEnvSolverID returns the solver identifier from environment variables
func GetEnvSolverID() string {
	if solverID := os.Getenv("SOLVER_ID"); solverID != "" {
		return solverID
	}
	return DefaultSolverID
}

// GetEnvDefaultDeadline returns the default intent deadline from environment variables
func GetEnvDefaultDeadline() (time.Duration, error) {
	return getEnvSeconds("DEFAULT_DEADLINE", DefaultDeadlineSeconds)
}

// GetEnvDefaultSlippage returns the default slippage tolerance from environment variables
func GetEnvDefaultSlippage() (float64, error) {
	value := os.Getenv("DEFAULT_SLIPPAGE")
	if value == "" {
		return DefaultSlippage, nil
	}

	slippage, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid DEFAULT_SLIPPAGE value: %s, must be a number", value)
	}
	if slippage <= 0 || slippage > 50 {
		return 0, fmt.Errorf("DEFAULT_SLIPPAGE must be in (0, 50]")
	}
	return slippage, nil
}

// GetEnvQuoteTimeout returns the quote call timeout from environment variables
func GetEnvQuoteTimeout() (time.Duration, error) {
	return getEnvSeconds("QUOTE_TIMEOUT", DefaultQuoteTimeoutSeconds)
}

// GetEnvStepTimeout returns the execution step timeout from environment variables
func GetEnvStepTimeout() (time.Duration, error) {
	return getEnvSeconds("STEP_TIMEOUT", DefaultStepTimeoutSeconds)
}

// GetEnvReaperInterval returns the expiry reaper interval from environment variables
func GetEnvReaperInterval() (time.Duration, error) {
	return getEnvSeconds("REAPER_INTERVAL", DefaultReaperIntervalSeconds)
}

// GetEnvMetricsPort returns the metrics server port from environment variables
func GetEnvMetricsPort() (string, error) {
	metricsPort := os.Getenv("METRICS_PORT")
	if metricsPort == "" {
		return DefaultMetricsPort, nil
	}

	// Validate port format
	if _, err := strconv.Atoi(metricsPort); err != nil {
		return "", fmt.Errorf("invalid METRICS_PORT value: %s, must be a valid integer", metricsPort)
	}
	return metricsPort, nil
}

// GetEnvIntermediateTokens returns the per-chain intermediate stable token
// addresses. Defaults come from the chains package; individual chains can be
// overridden with CHAIN_<id>_INTERMEDIATE_TOKEN, and a YAML registry file
// named by INTERMEDIATE_TOKENS_FILE overrides both.
func GetEnvIntermediateTokens() (map[int]string, error) {
	tokens := make(map[int]string, len(chains.DefaultIntermediateTokens))
	for chainID, addr := range chains.DefaultIntermediateTokens {
		tokens[chainID] = addr
	}

	for _, chainID := range chains.ChainList {
		envVar := fmt.Sprintf("CHAIN_%d_INTERMEDIATE_TOKEN", chainID)
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if !common.IsHexAddress(value) {
			return nil, fmt.Errorf("invalid %s value: %s, must be a valid address", envVar, value)
		}
		tokens[chainID] = value
	}

	if path := os.Getenv("INTERMEDIATE_TOKENS_FILE"); path != "" {
		fileTokens, err := LoadIntermediateTokensFile(path)
		if err != nil {
			return nil, err
		}
		for chainID, addr := range fileTokens {
			tokens[chainID] = addr
		}
	}

	return tokens, nil
}

// GetEnvCircuitBreakerEnabled returns whether the circuit breaker is enabled from environment variables
func GetEnvCircuitBreakerEnabled() (bool, error) {
	enabled := os.Getenv("CIRCUIT_BREAKER_ENABLED")
	if enabled == "" {
		return DefaultCircuitBreakerEnabled, nil
	}

	value, err := strconv.ParseBool(enabled)
	if err != nil {
		return false, fmt.Errorf("invalid CIRCUIT_BREAKER_ENABLED value: %s, must be a boolean", enabled)
	}
	return value, nil
}

// GetEnvCircuitBreakerThreshold returns the circuit breaker failure threshold from environment variables
func GetEnvCircuitBreakerThreshold() (int, error) {
	threshold := os.Getenv("CIRCUIT_BREAKER_THRESHOLD")
	if threshold == "" {
		return DefaultCircuitBreakerThreshold, nil
	}

	value, err := strconv.Atoi(threshold)
	if err != nil {
		return 0, fmt.Errorf("invalid CIRCUIT_BREAKER_THRESHOLD value: %s, must be an integer", threshold)
	}
	if value <= 0 {
		return 0, fmt.Errorf("CIRCUIT_BREAKER_THRESHOLD must be greater than 0")
	}
	return value, nil
}

// GetEnvCircuitBreakerWindow returns the circuit breaker failure window from environment variables
func GetEnvCircuitBreakerWindow() (time.Duration, error) {
	return getEnvSeconds("CIRCUIT_BREAKER_WINDOW", DefaultCircuitBreakerWindowSeconds)
}

// GetEnvCircuitBreakerReset returns the circuit breaker reset timeout from environment variables
func GetEnvCircuitBreakerReset() (time.Duration, error) {
	return getEnvSeconds("CIRCUIT_BREAKER_RESET", DefaultCircuitBreakerResetSeconds)
}

// GetEnvLogLevel returns the log level from environment variables
func GetEnvLogLevel() (logger.Level, error) {
	level := os.Getenv("LOG_LEVEL")
	switch level {
	case "", "info":
		return logger.InfoLevel, nil
	case "debug":
		return logger.DebugLevel, nil
	case "notice":
		return logger.NoticeLevel, nil
	case "error":
		return logger.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL value: %s, must be debug, info, notice or error", level)
	}
}

// GetEnvLogColoring returns whether log coloring is enabled from environment variables
func GetEnvLogColoring() (bool, error) {
	coloring := os.Getenv("LOG_COLORING")
	if coloring == "" {
		return true, nil
	}

	value, err := strconv.ParseBool(coloring)
	if err != nil {
		return false, fmt.Errorf("invalid LOG_COLORING value: %s, must be a boolean", coloring)
	}
	return value, nil
}

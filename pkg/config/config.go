package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/routeforge-hq/routeforge-engine/pkg/logger"
)

// Config holds the configuration for the intent engine
type Config struct {
	AggregatorEndpoint string
	BridgeEndpoint     string
	SolverID           string
	DefaultDeadline    time.Duration
	DefaultSlippage    float64
	QuoteTimeout       time.Duration
	StepTimeout        time.Duration
	ReaperInterval     time.Duration
	MetricsPort        string
	IntermediateTokens map[int]string
	CircuitBreaker     CircuitBreakerConfig
	LoggerConfig       LoggerConfig
}

// CircuitBreakerConfig holds circuit breaker configuration
type CircuitBreakerConfig struct {
	Enabled        bool
	Threshold      int
	WindowDuration time.Duration
	ResetTimeout   time.Duration
}

// LoggerConfig holds the configuration for logging
type LoggerConfig struct {
	Level    logger.Level
	Coloring bool
}

// IntermediateToken returns the configured intermediate stable token address
// for a chain, if any
func (c *Config) IntermediateToken(chainID int) (string, bool) {
	addr, exists := c.IntermediateTokens[chainID]
	return addr, exists
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	aggregatorEndpoint, err := GetEnvAggregatorEndpoint()
	if err != nil {
		return nil, err
	}

	bridgeEndpoint, err := GetEnvBridgeEndpoint()
	if err != nil {
		return nil, err
	}

	defaultDeadline, err := GetEnvDefaultDeadline()
	if err != nil {
		return nil, err
	}

	defaultSlippage, err := GetEnvDefaultSlippage()
	if err != nil {
		return nil, err
	}

	quoteTimeout, err := GetEnvQuoteTimeout()
	if err != nil {
		return nil, err
	}

	stepTimeout, err := GetEnvStepTimeout()
	if err != nil {
		return nil, err
	}

	reaperInterval, err := GetEnvReaperInterval()
	if err != nil {
		return nil, err
	}

	metricsPort, err := GetEnvMetricsPort()
	if err != nil {
		return nil, err
	}

	intermediateTokens, err := GetEnvIntermediateTokens()
	if err != nil {
		return nil, err
	}

	cbEnabled, err := GetEnvCircuitBreakerEnabled()
	if err != nil {
		return nil, err
	}

	cbThreshold, err := GetEnvCircuitBreakerThreshold()
	if err != nil {
		return nil, err
	}

	cbWindow, err := GetEnvCircuitBreakerWindow()
	if err != nil {
		return nil, err
	}

	cbReset, err := GetEnvCircuitBreakerReset()
	if err != nil {
		return nil, err
	}

	logLevel, err := GetEnvLogLevel()
	if err != nil {
		return nil, err
	}

	logColoring, err := GetEnvLogColoring()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AggregatorEndpoint: aggregatorEndpoint,
		BridgeEndpoint:     bridgeEndpoint,
		SolverID:           GetEnvSolverID(),
		DefaultDeadline:    defaultDeadline,
		DefaultSlippage:    defaultSlippage,
		QuoteTimeout:       quoteTimeout,
		StepTimeout:        stepTimeout,
		ReaperInterval:     reaperInterval,
		MetricsPort:        metricsPort,
		IntermediateTokens: intermediateTokens,
		CircuitBreaker: CircuitBreakerConfig{
			Enabled:        cbEnabled,
			Threshold:      cbThreshold,
			WindowDuration: cbWindow,
			ResetTimeout:   cbReset,
		},
		LoggerConfig: LoggerConfig{
			Level:    logLevel,
			Coloring: logColoring,
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.AggregatorEndpoint == "" {
		return fmt.Errorf("AGGREGATOR_ENDPOINT is required")
	}
	if cfg.BridgeEndpoint == "" {
		return fmt.Errorf("BRIDGE_ENDPOINT is required")
	}
	if cfg.DefaultDeadline <= 0 {
		return fmt.Errorf("default deadline must be greater than 0")
	}
	return nil
}

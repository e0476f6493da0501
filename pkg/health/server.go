// Package health exposes the operational HTTP surface: liveness, engine
// status, circuit breaker admin and Prometheus metrics.
package health

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/routeforge-hq/routeforge-engine/pkg/engine"
)

// Server represents a health check HTTP server
type Server struct {
	port          string
	engine        *engine.Engine
	metricsAPIKey string
}

// NewServer creates a new health check server
func NewServer(port string, eng *engine.Engine) *Server {
	return &Server{
		port:          port,
		engine:        eng,
		metricsAPIKey: os.Getenv("METRICS_API_KEY"),
	}
}

// metricsAuthMiddleware is a middleware that checks for a valid API key
func (s *Server) metricsAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip auth if no API key is configured
		if s.metricsAPIKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Missing Authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
			return
		}

		if parts[1] != s.metricsAPIKey {
			http.Error(w, "Invalid API key", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Start starts the health check server
func (s *Server) Start() {
	// Health check endpoint
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Engine status endpoint
	http.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		counts := make(map[string]int)
		for status, count := range s.engine.CountsByStatus() {
			counts[string(status)] = count
		}

		circuits := make(map[string]interface{})
		for chainID, state := range s.engine.BreakerStates() {
			circuitStatus := "closed"
			if state.Open {
				circuitStatus = "open"
			}
			circuits["chain_"+strconv.Itoa(chainID)] = map[string]interface{}{
				"circuit":       circuitStatus,
				"failure_count": state.FailureCount,
			}
		}

		status := map[string]interface{}{
			"intents":  counts,
			"circuits": circuits,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			log.Printf("Error encoding status JSON: %v", err)
		}
	})

	// Circuit breaker admin control endpoint
	http.HandleFunc("/circuit/reset", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		chainIDStr := r.URL.Query().Get("chain")
		if chainIDStr == "" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("Missing chain parameter"))
			return
		}

		chainID, err := strconv.Atoi(chainIDStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("Invalid chain ID"))
			return
		}

		if !s.engine.ResetBreaker(chainID) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("No circuit breaker for chain " + chainIDStr))
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Circuit breaker for chain " + chainIDStr + " reset"))
	})

	// Expose Prometheus metrics with API key authentication
	http.Handle("/metrics", s.metricsAuthMiddleware(promhttp.Handler()))

	log.Printf("Starting health and metrics server on port %s", s.port)
	if err := http.ListenAndServe(":"+s.port, nil); err != nil {
		log.Printf("Health server error: %v", err)
	}
}

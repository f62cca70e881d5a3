package healthcheck

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/agglayer/aggkit-prover/log"
	"github.com/agglayer/aggkit-prover/stage"
)

const (
	readinessTimeout = 5 * time.Second
	// ReadinessQueryParam makes a busy pipeline answer 503
	ReadinessQueryParam = "ready"
)

// ReadinessChecker is satisfied by the aggchain proof service
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

// HealthResponse is the body written by the handler. A saturated pipeline is
// healthy but not ready.
type HealthResponse struct {
	IsHealthy bool   `json:"is_healthy"`
	IsReady   bool   `json:"is_ready"`
	Reason    string `json:"reason,omitempty"`
}

// HealthCheckHandler encapsulates logic that serves the HTTP request for health checks
type HealthCheckHandler struct {
	logger  *log.Logger
	checker ReadinessChecker
}

var _ http.Handler = (*HealthCheckHandler)(nil)

// NewHealthCheckHandler creates a new healthcheck http handler. With a nil checker
// the service is always reported healthy.
func NewHealthCheckHandler(logger *log.Logger, checker ReadinessChecker) *HealthCheckHandler {
	return &HealthCheckHandler{logger: logger, checker: checker}
}

// ServeHTTP answers 200 unless the pipeline reports a failure other than
// backpressure. With the ready query parameter a busy pipeline answers 503 too,
// so the same endpoint serves liveness and readiness checks.
func (h *HealthCheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := h.check(r.Context())

	status := http.StatusOK
	_, readinessCheck := r.URL.Query()[ReadinessQueryParam]
	if !response.IsHealthy || (readinessCheck && !response.IsReady) {
		h.logger.Debugf("health check failed: %s", response.Reason)
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Errorf("failed to write health indicator: %v", err)
	}
}

func (h *HealthCheckHandler) check(ctx context.Context) HealthResponse {
	if h.checker == nil {
		return HealthResponse{IsHealthy: true, IsReady: true}
	}
	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()
	err := h.checker.Ready(ctx)
	switch {
	case err == nil:
		return HealthResponse{IsHealthy: true, IsReady: true}
	case errors.Is(err, stage.ErrNotReady):
		return HealthResponse{IsHealthy: true, IsReady: false, Reason: err.Error()}
	default:
		return HealthResponse{IsHealthy: false, IsReady: false, Reason: err.Error()}
	}
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/itchan-dev/boards/internal/logger"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Health reports 200 when every dependency answers a ping, 503 otherwise.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for _, c := range h.health {
		if err := c.Ping(ctx); err != nil {
			logger.Log.Warn("health check failed", "error", err)
			http.Error(w, "dependency unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

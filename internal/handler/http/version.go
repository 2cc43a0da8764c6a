package http

import (
	"net/http"

	"github.com/kinoshelf/go-movie-reviews/internal/logger"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// healthz reports liveness: 200 "ok" when the database responds to a ping.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.AppInfoService.Ping(r.Context()); err != nil {
		log.Err(err).Msg("health check failed")
		http.Error(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

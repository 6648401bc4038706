package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	stats := s.scheduler.Stats()
	status := rest.JSON{
		"status":    "ok",
		"version":   s.version,
		"time":      time.Now().UTC(),
		"scheduler": rest.JSON{"running": stats.Running, "polling": stats.Polling},
	}
	renderJSON(w, r, http.StatusOK, status)
}

// schedulerStatsHandler returns cumulative scheduler statistics
func (s *Server) schedulerStatsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.scheduler.Stats())
}

// pollHandler triggers an immediate poll cycle and returns its result, connection deadlines
// are lifted for the duration of the cycle. Responds with 409 if a cycle is already running
// or the cycle failed as a whole.
func (s *Server) pollHandler(w http.ResponseWriter, r *http.Request) {
	// a cycle may take longer than the server read and write timeouts
	rc := http.NewResponseController(w)
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	res := s.scheduler.PollNow(r.Context())
	if res == nil {
		renderError(w, r, errors.New("poll skipped, a cycle is in progress or failed"), http.StatusConflict)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// resetStatsHandler clears cumulative scheduler statistics
func (s *Server) resetStatsHandler(w http.ResponseWriter, r *http.Request) {
	s.scheduler.ResetStats()
	renderJSON(w, r, http.StatusOK, rest.JSON{"status": "ok"})
}

// feedStatsHandler returns aggregate source and item statistics
func (s *Server) feedStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetFeedStats(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get feed stats: %v", err)
		renderError(w, r, errors.New("failed to get feed stats"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

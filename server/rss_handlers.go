package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newswire/pkg/feed"
)

const (
	defaultRSSLimit = 100
	maxRSSLimit     = 500
)

// rssHandler serves recent items as RSS, min_score and limit query params are optional
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	minScore := 0.0
	if scoreStr := r.URL.Query().Get("min_score"); scoreStr != "" {
		score, err := strconv.ParseFloat(scoreStr, 64)
		if err != nil || score < 0 || score > 1 {
			renderError(w, r, fmt.Errorf("invalid min_score %q, must be between 0 and 1", scoreStr), http.StatusBadRequest)
			return
		}
		minScore = score
	}

	limit := defaultRSSLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 {
			renderError(w, r, fmt.Errorf("invalid limit %q", limitStr), http.StatusBadRequest)
			return
		}
		limit = min(l, maxRSSLimit)
	}

	items, err := s.store.GetRecentItems(ctx, limit, minScore)
	if err != nil {
		lgr.Printf("[ERROR] failed to get items for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := feed.NewGenerator(s.config.GetBaseURL()).GenerateRSS(items, minScore)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// opmlHandler exports active sources as OPML
func (s *Server) opmlHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := s.store.GetSources(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to get sources for OPML: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}

	opml, err := feed.NewGenerator(s.config.GetBaseURL()).GenerateOPML(sources)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate OPML: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="newswire.opml"`)
	if _, err := w.Write([]byte(opml)); err != nil {
		lgr.Printf("[ERROR] failed to write OPML response: %v", err)
	}
}

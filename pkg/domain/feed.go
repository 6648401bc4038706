package domain

import "time"

// Source represents a configured external feed endpoint with its polling health
type Source struct {
	ID                   int64
	URL                  string
	Title                string
	Active               bool
	DeletedAt            *time.Time
	PollInterval         time.Duration // advisory cadence, the scheduler polls all active sources each cycle
	LastPolledAt         *time.Time
	LastSuccessfulPollAt *time.Time
	LastError            string
	ConsecutiveErrors    int
	TotalItems           int64
	ItemsThisWeek        int64
	WeekStartedAt        *time.Time
	CreatedAt            time.Time
}

// Name returns a human-readable identifier for the source
func (s *Source) Name() string {
	if s.Title != "" {
		return s.Title
	}
	return s.URL
}

// Healthy reports whether the last poll attempt succeeded
func (s *Source) Healthy() bool {
	return s.ConsecutiveErrors == 0
}

// ParsedFeed is the normalized result of fetching and parsing a feed endpoint
type ParsedFeed struct {
	Title       string
	Description string
	Link        string
	Items       []ParsedItem
}

// ParsedItem is the canonical entry shape produced at the fetch/parse boundary.
// Image fields are kept separate so the ingestor can apply its precedence order.
type ParsedItem struct {
	GUID           string
	Title          string
	Link           string
	Description    string
	Content        string
	Author         string
	Published      time.Time
	Categories     []string
	EnclosureURL   string
	MediaContent   string
	MediaThumbnail string
}

// DedupKey returns the identifier used to decide whether the entry was already ingested:
// the feed-provided guid, or the link when the feed has none
func (p ParsedItem) DedupKey() string {
	if p.GUID != "" {
		return p.GUID
	}
	return p.Link
}

// imageFields lists image locations in precedence order, first non-empty wins
var imageFields = []func(p ParsedItem) string{
	func(p ParsedItem) string { return p.EnclosureURL },
	func(p ParsedItem) string { return p.MediaContent },
	func(p ParsedItem) string { return p.MediaThumbnail },
}

// ImageURL resolves the entry image, empty if none of the image fields is set
func (p ParsedItem) ImageURL() string {
	for _, field := range imageFields {
		if u := field(p); u != "" {
			return u
		}
	}
	return ""
}

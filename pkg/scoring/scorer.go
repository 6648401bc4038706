// Package scoring implements the keyword-based relevance scorer applied to every ingested item.
package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	baseScore      = 0.5
	criticalWeight = 0.15
	mediumWeight   = 0.05
	recencyBonus   = 0.10
	maxScore       = 1.0

	defaultRecencyWindow = 24 * time.Hour
)

// DefaultCriticalKeywords are used when no critical tier is configured
var DefaultCriticalKeywords = []string{"breaking", "urgent", "exclusive", "emergency", "critical", "alert"}

// DefaultMediumKeywords are used when no medium tier is configured
var DefaultMediumKeywords = []string{"update", "report", "announce", "analysis", "launch", "study"}

// Keywords holds the two keyword tiers
type Keywords struct {
	Critical []string
	Medium   []string
}

// Scorer computes a relevance score in [0,1] from item text and publish time.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	critical      []string
	medium        []string
	recencyWindow time.Duration
	now           func() time.Time
}

// Option configures Scorer
type Option func(s *Scorer)

// WithRecencyWindow sets the age under which an item gets the recency bonus
func WithRecencyWindow(d time.Duration) Option {
	return func(s *Scorer) {
		if d > 0 {
			s.recencyWindow = d
		}
	}
}

// WithClock sets the time source used for the recency bonus
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) {
		if now != nil {
			s.now = now
		}
	}
}

// New makes a Scorer. Empty tiers fall back to the default keyword lists.
func New(kw Keywords, opts ...Option) *Scorer {
	if len(kw.Critical) == 0 {
		kw.Critical = DefaultCriticalKeywords
	}
	if len(kw.Medium) == 0 {
		kw.Medium = DefaultMediumKeywords
	}
	s := &Scorer{
		critical:      normalize(kw.Critical),
		medium:        normalize(kw.Medium),
		recencyWindow: defaultRecencyWindow,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score returns the relevance of the concatenated title, description and content.
// Zero matches score exactly the base of 0.5; there is no lower clamp.
func (s *Scorer) Score(title, description, content string, published time.Time) float64 {
	text := strings.ToLower(title + " " + description + " " + content)

	score := baseScore
	for _, kw := range s.critical {
		if strings.Contains(text, kw) {
			score += criticalWeight
		}
	}
	for _, kw := range s.medium {
		if strings.Contains(text, kw) {
			score += mediumWeight
		}
	}

	if !published.IsZero() && s.now().Sub(published) < s.recencyWindow {
		score += recencyBonus
	}

	return math.Min(score, maxScore)
}

// normalize lowercases, trims and de-duplicates keywords, dropping empty ones
func normalize(keywords []string) []string {
	res := lo.FilterMap(keywords, func(kw string, _ int) (string, bool) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		return kw, kw != ""
	})
	return lo.Uniq(res)
}

package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/samber/lo"

	"github.com/umputun/newswire/pkg/domain"
)

const defaultUserAgent = "Newswire/1.0"

// Parser fetches RSS/Atom/JSON feeds and normalizes their entries
type Parser struct {
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Parse fetches and parses a feed from the given URL
func (p *Parser) Parse(ctx context.Context, url string) (*domain.ParsedFeed, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	result := &domain.ParsedFeed{
		Title:       feed.Title,
		Description: feed.Description,
		Link:        feed.Link,
		Items:       make([]domain.ParsedItem, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		result.Items = append(result.Items, p.normalize(item))
	}

	return result, nil
}

// normalize converts a gofeed item to the canonical parsed entry
func (p *Parser) normalize(item *gofeed.Item) domain.ParsedItem {
	parsed := domain.ParsedItem{
		GUID:        strings.TrimSpace(item.GUID),
		Title:       strings.TrimSpace(item.Title),
		Link:        strings.TrimSpace(item.Link),
		Description: p.snippet(item.Description),
		Content:     item.Content,
	}

	switch {
	case item.Author != nil && item.Author.Name != "":
		parsed.Author = item.Author.Name
	case len(item.Authors) > 0 && item.Authors[0] != nil:
		parsed.Author = item.Authors[0].Name
	}

	if item.PublishedParsed != nil {
		parsed.Published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		parsed.Published = *item.UpdatedParsed
	}

	parsed.Categories = lo.Uniq(lo.FilterMap(item.Categories, func(c string, _ int) (string, bool) {
		c = strings.TrimSpace(c)
		return c, c != ""
	}))

	if enc, ok := lo.Find(item.Enclosures, func(e *gofeed.Enclosure) bool { return e != nil && e.URL != "" }); ok {
		parsed.EnclosureURL = enc.URL
	}
	parsed.MediaContent = mediaURL(item.Extensions, "content")
	parsed.MediaThumbnail = mediaURL(item.Extensions, "thumbnail")

	return parsed
}

// snippet strips markup from a description, leaving plain text
func (p *Parser) snippet(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(p.sanitizer.Sanitize(s)))
}

// mediaURL returns the url attribute of the first media:<name> element,
// looking inside media:group when the element is not top-level
func mediaURL(exts ext.Extensions, name string) string {
	media, ok := exts["media"]
	if !ok {
		return ""
	}
	for _, e := range media[name] {
		if u := strings.TrimSpace(e.Attrs["url"]); u != "" {
			return u
		}
	}
	for _, group := range media["group"] {
		for _, e := range group.Children[name] {
			if u := strings.TrimSpace(e.Attrs["url"]); u != "" {
				return u
			}
		}
	}
	return ""
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

package feed

import (
	"encoding/xml"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/umputun/newswire/pkg/domain"
)

// Generator re-exports ingested items as RSS and the source registry as OPML
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed from ingested items, newest first as given
func (g *Generator) GenerateRSS(items []domain.ItemWithSource, minScore float64) (string, error) {
	title := "Newswire - Latest"
	if minScore > 0 {
		title = fmt.Sprintf("Newswire - Latest (Relevance ≥ %.2f)", minScore)
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   "Deduplicated news items aggregated from all active sources",
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         lo.Map(items, func(item domain.ItemWithSource, _ int) *RSSItem { return g.convertToRSSItem(item) }),
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a stored item to an RSS item
func (g *Generator) convertToRSSItem(item domain.ItemWithSource) *RSSItem {
	desc := fmt.Sprintf("Relevance: %.2f", item.RelevanceScore)
	if item.Description != "" {
		desc += "\n\n" + item.Description
	}

	res := &RSSItem{
		Title:       item.Title,
		Link:        item.Link,
		GUID:        RSSGUID{Value: item.GUID},
		Description: desc,
		Author:      item.Author,
		Source:      item.SourceName,
		Categories:  item.Categories,
	}
	if item.GUID != item.Link {
		res.GUID.IsPermaLink = "false"
	}
	if !item.Published.IsZero() {
		res.PubDate = item.Published.Format(time.RFC1123Z)
	}
	if item.ImageURL != "" {
		res.Enclosure = &RSSEnclosure{URL: item.ImageURL, Type: imageType(item.ImageURL)}
	}
	return res
}

// imageType guesses the enclosure mime type from the url extension
func imageType(u string) string {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	if t := mime.TypeByExtension(path.Ext(u)); t != "" {
		return t
	}
	return "image/jpeg"
}

// GenerateOPML creates an OPML file with active, non-deleted sources
func (g *Generator) GenerateOPML(sources []domain.Source) (string, error) {
	type outline struct {
		XMLName xml.Name `xml:"outline"`
		Text    string   `xml:"text,attr"`
		Title   string   `xml:"title,attr"`
		Type    string   `xml:"type,attr"`
		XMLUrl  string   `xml:"xmlUrl,attr"`
	}

	type body struct {
		XMLName  xml.Name  `xml:"body"`
		Outlines []outline `xml:"outline"`
	}

	type head struct {
		XMLName     xml.Name `xml:"head"`
		Title       string   `xml:"title"`
		DateCreated string   `xml:"dateCreated"`
	}

	type opml struct {
		XMLName xml.Name `xml:"opml"`
		Version string   `xml:"version,attr"`
		Head    head     `xml:"head"`
		Body    body     `xml:"body"`
	}

	active := lo.Filter(sources, func(s domain.Source, _ int) bool { return s.Active && s.DeletedAt == nil })
	outlines := lo.Map(active, func(s domain.Source, _ int) outline {
		return outline{Text: s.Name(), Title: s.Name(), Type: "rss", XMLUrl: s.URL}
	})

	doc := opml{
		Version: "2.0",
		Head:    head{Title: "Newswire Sources", DateCreated: g.now().Format(time.RFC1123Z)},
		Body:    body{Outlines: outlines},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}

	return xml.Header + string(output), nil
}

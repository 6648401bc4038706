package feed

import (
	"encoding/xml"
)

// RSS represents the root RSS 2.0 element
type RSS struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Atom    string      `xml:"xmlns:atom,attr"`
	Channel *RSSChannel `xml:"channel"`
}

// RSSChannel represents an RSS channel
type RSSChannel struct {
	XMLName       xml.Name   `xml:"channel"`
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	AtomLink      *AtomLink  `xml:"atom:link"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*RSSItem `xml:"item"`
}

// AtomLink represents an Atom self link within RSS
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// RSSItem represents an item in an RSS feed
type RSSItem struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	GUID        RSSGUID       `xml:"guid"`
	Description string        `xml:"description"`
	Author      string        `xml:"author,omitempty"`
	PubDate     string        `xml:"pubDate,omitempty"`
	Source      string        `xml:"source,omitempty"`
	Categories  []string      `xml:"category"`
	Enclosure   *RSSEnclosure `xml:"enclosure,omitempty"`
}

// RSSGUID is an item guid; non-permalink guids are marked as such
type RSSGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink string `xml:"isPermaLink,attr,omitempty"`
}

// RSSEnclosure carries the item image
type RSSEnclosure struct {
	URL    string `xml:"url,attr"`
	Type   string `xml:"type,attr"`
	Length int64  `xml:"length,attr"`
}

package domain

import (
	"errors"
	"time"
)

// ErrDuplicateItem is returned when an item with the same guid is already stored
var ErrDuplicateItem = errors.New("duplicate item")

// Item represents one deduplicated entry ingested from a source
type Item struct {
	ID             int64
	SourceID       int64
	GUID           string
	Title          string
	Link           string
	Description    string
	Content        string
	Author         string
	Published      time.Time
	ImageURL       string
	Categories     []string
	RelevanceScore float64
	ViewCount      int64
	ShareCount     int64
	Visible        bool
	DeletedAt      *time.Time
	CreatedAt      time.Time
}

// ItemNotification is the payload pushed to live subscribers for every new item
type ItemNotification struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Link           string     `json:"link"`
	Description    string     `json:"description"`
	Author         string     `json:"author"`
	PublishedAt    *time.Time `json:"publishedAt"`
	SourceName     string     `json:"sourceName"`
	SourceID       int64      `json:"sourceId"`
	RelevanceScore float64    `json:"relevanceScore"`
	Categories     []string   `json:"categories"`
	ImageURL       *string    `json:"imageUrl"`
}

// NewItemNotification builds a notification from a stored item and its source name
func NewItemNotification(item Item, sourceName string) ItemNotification {
	n := ItemNotification{
		ID:             item.ID,
		Title:          item.Title,
		Link:           item.Link,
		Description:    item.Description,
		Author:         item.Author,
		SourceName:     sourceName,
		SourceID:       item.SourceID,
		RelevanceScore: item.RelevanceScore,
		Categories:     item.Categories,
	}
	if n.Categories == nil {
		n.Categories = []string{}
	}
	if !item.Published.IsZero() {
		published := item.Published
		n.PublishedAt = &published
	}
	if item.ImageURL != "" {
		img := item.ImageURL
		n.ImageURL = &img
	}
	return n
}

// ItemWithSource is an item joined with the name of its owning source
type ItemWithSource struct {
	Item
	SourceName string
}

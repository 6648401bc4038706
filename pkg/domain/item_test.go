package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsedItem_DedupKey(t *testing.T) {
	tests := []struct {
		name string
		item ParsedItem
		want string
	}{
		{name: "guid wins", item: ParsedItem{GUID: "g1", Link: "https://example.com/a"}, want: "g1"},
		{name: "link fallback", item: ParsedItem{Link: "https://example.com/a"}, want: "https://example.com/a"},
		{name: "nothing", item: ParsedItem{Title: "no ids"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.DedupKey())
		})
	}
}

func TestSource_Name(t *testing.T) {
	assert.Equal(t, "Tech", (&Source{Title: "Tech", URL: "https://t.example.com"}).Name())
	assert.Equal(t, "https://t.example.com", (&Source{URL: "https://t.example.com"}).Name())
}

func TestNewItemNotification(t *testing.T) {
	published := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("full item", func(t *testing.T) {
		item := Item{
			ID: 7, SourceID: 3, Title: "title", Link: "https://example.com/x", Description: "desc",
			Author: "bob", Published: published, ImageURL: "https://example.com/x.png",
			Categories: []string{"tech"}, RelevanceScore: 0.65,
		}
		n := NewItemNotification(item, "Example")
		assert.Equal(t, int64(7), n.ID)
		assert.Equal(t, int64(3), n.SourceID)
		assert.Equal(t, "Example", n.SourceName)
		require.NotNil(t, n.PublishedAt)
		assert.Equal(t, published, *n.PublishedAt)
		require.NotNil(t, n.ImageURL)
		assert.Equal(t, "https://example.com/x.png", *n.ImageURL)
		assert.InDelta(t, 0.65, n.RelevanceScore, 0.0001)
	})

	t.Run("optional fields are nil", func(t *testing.T) {
		n := NewItemNotification(Item{ID: 1}, "Example")
		assert.Nil(t, n.PublishedAt)
		assert.Nil(t, n.ImageURL)
		assert.Equal(t, []string{}, n.Categories)
	})
}

func TestParsedItem_ImageURL(t *testing.T) {
	tests := []struct {
		name string
		item ParsedItem
		want string
	}{
		{name: "enclosure first", item: ParsedItem{EnclosureURL: "e", MediaContent: "m", MediaThumbnail: "t"}, want: "e"},
		{name: "media content second", item: ParsedItem{MediaContent: "m", MediaThumbnail: "t"}, want: "m"},
		{name: "thumbnail last", item: ParsedItem{MediaThumbnail: "t"}, want: "t"},
		{name: "none", item: ParsedItem{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.ImageURL())
		})
	}
}

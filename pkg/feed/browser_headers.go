package feed

import (
	"math/rand/v2"
	"net/http"
)

// feedAccept lists every feed format gofeed understands, html last for misconfigured servers
const feedAccept = "application/rss+xml,application/atom+xml,application/feed+json,application/xml;q=0.9,text/xml;q=0.8,text/html;q=0.5,*/*;q=0.3"

var acceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.9",
	"en-US,en;q=0.9,de;q=0.8",
	"en-US,en;q=0.9,es;q=0.8",
}

// addBrowserHeaders makes feed requests look like a regular reader,
// some publishers reject requests without these
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", feedAccept)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept-Language", acceptLanguages[rand.IntN(len(acceptLanguages))]) //nolint:gosec // header variation only
	req.Header.Set("Connection", "keep-alive")
}

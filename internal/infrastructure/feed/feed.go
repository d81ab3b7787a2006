// Package feed fetches and parses RSS/Atom feeds for source previews.
package feed

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// Source describes a parsed candidate ingest source.
type Source struct {
	Title string
	URL   string
	Items []SourceItem
}

// SourceItem is one entry of a previewed source.
type SourceItem struct {
	Title     string
	Link      string
	Published string
	Date      time.Time
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "Trenddeck/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// Fetch parses a feed from the given URL with a default timeout.
func Fetch(url string) (*Source, error) {
	return FetchWithTimeout(url, 10*time.Second)
}

// FetchWithTimeout parses a feed from the given URL with timeout.
func FetchWithTimeout(url string, timeout time.Duration) (*Source, error) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return FetchWithContext(ctx, url)
}

// FetchWithContext parses a feed from the given URL with context.
func FetchWithContext(ctx context.Context, url string) (*Source, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("feed url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	parsed, err := ParserFunc(ctx, url)
	if err != nil {
		return nil, err
	}

	src := &Source{
		Title: parsed.Title,
		URL:   url,
		Items: make([]SourceItem, len(parsed.Items)),
	}

	for i, item := range parsed.Items {
		pub := item.Published
		if pub == "" {
			pub = item.Updated
		}
		var date time.Time
		if item.PublishedParsed != nil {
			date = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			date = *item.UpdatedParsed
		}

		src.Items[i] = SourceItem{
			Title:     item.Title,
			Link:      item.Link,
			Published: pub,
			Date:      date,
		}
	}

	return src, nil
}

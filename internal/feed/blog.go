package feed

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

const untitledPost = "Untitled Post"

// BlogFetcher reads an RSS or Atom feed.
type BlogFetcher struct {
	url        string
	httpClient *http.Client
	parser     *gofeed.Parser
}

func NewBlogFetcher(feedURL string, timeout time.Duration) *BlogFetcher {
	return &BlogFetcher{
		url:        feedURL,
		httpClient: &http.Client{Timeout: timeout},
		parser:     gofeed.NewParser(),
	}
}

// FetchFeed downloads and parses the feed.
func (f *BlogFetcher) FetchFeed(ctx context.Context) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed %s: %w", f.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching feed %s: unexpected status %d", f.url, resp.StatusCode)
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", f.url, err)
	}
	return feed, nil
}

// Latest returns the first entry of the feed, or nil when the feed is empty.
func (f *BlogFetcher) Latest(ctx context.Context) (*models.FeedPost, error) {
	feed, err := f.FetchFeed(ctx)
	if err != nil {
		return nil, err
	}
	if len(feed.Items) == 0 {
		return nil, nil
	}
	post := convertItem(feed.Items[0])
	return &post, nil
}

// Recent returns every entry that has both a title and a link, newest first.
func (f *BlogFetcher) Recent(ctx context.Context) ([]models.FeedPost, error) {
	feed, err := f.FetchFeed(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]models.FeedPost, 0, len(feed.Items))
	for _, item := range feed.Items {
		if strings.TrimSpace(item.Title) == "" || item.Link == "" {
			continue
		}
		posts = append(posts, convertItem(item))
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Published.After(posts[j].Published)
	})
	return posts, nil
}

// convertItem converts a gofeed.Item to our FeedPost model
func convertItem(item *gofeed.Item) models.FeedPost {
	var published time.Time
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		published = *item.UpdatedParsed
	}

	title := decodeEntities(strings.TrimSpace(item.Title))
	if title == "" {
		title = untitledPost
	}

	summary := item.Description
	if summary == "" {
		summary = item.Content
	}

	author := ""
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		author = item.Authors[0].Name
	}

	return models.FeedPost{
		Title:     title,
		Link:      item.Link,
		Summary:   decodeEntities(strings.TrimSpace(summary)),
		Published: published,
		Author:    author,
	}
}

// decodeEntities undoes the double escaping some generators apply to titles
// and summaries (e.g. "&amp;amp;" arriving as "&amp;" after XML decoding).
func decodeEntities(s string) string {
	return html.UnescapeString(s)
}

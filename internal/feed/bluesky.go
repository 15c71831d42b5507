package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

const userAgent = "profile-readme/1.0"

// BlueskyFetcher reads the newest post of one account from the public
// AppView API.
type BlueskyFetcher struct {
	baseURL    string
	handle     string
	httpClient *http.Client
}

func NewBlueskyFetcher(baseURL, handle string, timeout time.Duration) *BlueskyFetcher {
	return &BlueskyFetcher{
		baseURL:    baseURL,
		handle:     handle,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type authorFeedResponse struct {
	Feed []struct {
		Post struct {
			URI    string `json:"uri"`
			Author struct {
				Handle      string `json:"handle"`
				DisplayName string `json:"displayName"`
			} `json:"author"`
			Record struct {
				Text      string `json:"text"`
				CreatedAt string `json:"createdAt"`
			} `json:"record"`
		} `json:"post"`
	} `json:"feed"`
}

// Latest returns the newest post, or nil when the account has none.
func (f *BlueskyFetcher) Latest(ctx context.Context) (*models.FeedPost, error) {
	endpoint := fmt.Sprintf("%s/xrpc/app.bsky.feed.getAuthorFeed?actor=%s&limit=1",
		f.baseURL, url.QueryEscape(f.handle))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching bluesky feed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching bluesky feed: unexpected status %d", resp.StatusCode)
	}

	var data authorFeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding bluesky feed: %w", err)
	}
	if len(data.Feed) == 0 {
		return nil, nil
	}

	p := data.Feed[0].Post
	handle := p.Author.Handle
	if handle == "" {
		handle = f.handle
	}
	author := p.Author.DisplayName
	if author == "" {
		author = handle
	}

	// An unparsable timestamp leaves Published zero; the card then shows no
	// meaningful date rather than failing.
	published, _ := time.Parse(time.RFC3339, p.Record.CreatedAt)

	return &models.FeedPost{
		Title:     p.Record.Text,
		Link:      PostURL(p.URI, handle),
		Summary:   p.Record.Text,
		Published: published,
		Author:    author,
	}, nil
}

var postRKey = regexp.MustCompile(`app\.bsky\.feed\.post/([^/]+)`)

// PostURL maps an AT-URI (at://did:plc:.../app.bsky.feed.post/<rkey>) to its
// web URL, falling back to the profile page.
func PostURL(uri, handle string) string {
	if m := postRKey.FindStringSubmatch(uri); m != nil {
		return fmt.Sprintf("https://bsky.app/profile/%s/post/%s", handle, m[1])
	}
	return "https://bsky.app/profile/" + handle
}

package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Blog</title>
    <link>https://example.com</link>
    <item>
      <title>Older &amp;amp; wiser</title>
      <link>https://example.com/older</link>
      <description>An older post</description>
      <pubDate>Mon, 01 Jan 2024 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Newest</title>
      <link>https://example.com/newest</link>
      <description>Fresh &amp;quot;news&amp;quot;</description>
      <pubDate>Sat, 15 Jun 2024 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title></title>
      <link>https://example.com/untitled</link>
      <pubDate>Sun, 02 Jun 2024 10:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Nano posts</title>
  <id>urn:example</id>
  <updated>2024-06-10T00:00:00Z</updated>
  <entry>
    <title>Atom entry</title>
    <link href="https://example.com/atom"/>
    <id>urn:example:1</id>
    <updated>2024-06-10T00:00:00Z</updated>
    <author><name>Octo</name></author>
    <content type="text">Body text</content>
  </entry>
</feed>`

const emptyFeed = `<?xml version="1.0"?><rss version="2.0"><channel><title>Empty</title></channel></rss>`

func serveFeed(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestBlogLatestReturnsFirstItem(t *testing.T) {
	t.Parallel()

	f := NewBlogFetcher(serveFeed(t, http.StatusOK, rssFeed), time.Second)
	post, err := f.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, post)

	assert.Equal(t, "Older & wiser", post.Title)
	assert.Equal(t, "https://example.com/older", post.Link)
	assert.Equal(t, "An older post", post.Summary)
	assert.Equal(t, 2024, post.Published.Year())
}

func TestBlogRecentSortsNewestFirst(t *testing.T) {
	t.Parallel()

	f := NewBlogFetcher(serveFeed(t, http.StatusOK, rssFeed), time.Second)
	posts, err := f.Recent(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2, "entries without a title are dropped")

	assert.Equal(t, "Newest", posts[0].Title)
	assert.Equal(t, `Fresh "news"`, posts[0].Summary)
	assert.Equal(t, "Older & wiser", posts[1].Title)
}

func TestBlogAtomFeed(t *testing.T) {
	t.Parallel()

	f := NewBlogFetcher(serveFeed(t, http.StatusOK, atomFeed), time.Second)
	post, err := f.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, post)

	assert.Equal(t, "Atom entry", post.Title)
	assert.Equal(t, "https://example.com/atom", post.Link)
	assert.Equal(t, "Body text", post.Summary)
	assert.Equal(t, "Octo", post.Author)
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), post.Published.UTC())
}

func TestBlogEmptyFeed(t *testing.T) {
	t.Parallel()

	f := NewBlogFetcher(serveFeed(t, http.StatusOK, emptyFeed), time.Second)

	post, err := f.Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, post)

	posts, err := f.Recent(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestBlogErrors(t *testing.T) {
	t.Parallel()

	_, err := NewBlogFetcher(serveFeed(t, http.StatusInternalServerError, "oops"), time.Second).Latest(context.Background())
	assert.ErrorContains(t, err, "unexpected status 500")

	_, err = NewBlogFetcher(serveFeed(t, http.StatusOK, "not a feed"), time.Second).Latest(context.Background())
	assert.ErrorContains(t, err, "parsing feed")
}

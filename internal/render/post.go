package render

import (
	"time"

	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

const (
	latestPostWidth    = 840
	latestPostHeight   = 120
	latestPostFileName = "latest-post.svg"
	maxTitleLen        = 60
	maxDescriptionLen  = 80
)

type latestPostViewModel struct {
	Link        string
	Title       string
	Description string
	Date        string
}

// LatestPost renders the latest blog post card, or the empty-state card
// when post is nil.
func LatestPost(post *models.FeedPost) (models.RenderedDocument, error) {
	doc := models.RenderedDocument{Name: latestPostFileName, Width: latestPostWidth, Height: latestPostHeight}
	if post == nil {
		doc.Markup = emptyLatestPostSVG
		return doc, nil
	}

	vm := latestPostViewModel{
		Link:        post.Link,
		Title:       Truncate(post.Title, maxTitleLen),
		Description: Truncate(post.Summary, maxDescriptionLen),
		Date:        FormatDate(post.Published),
	}

	markup, err := execute("latest-post.svg.tmpl", vm)
	if err != nil {
		return models.RenderedDocument{}, err
	}
	doc.Markup = markup
	return doc, nil
}

// FormatDate renders t as "2 Jan 2006"; the zero time renders as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2 Jan 2006")
}

package render

import (
	"fmt"
	"time"

	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

const (
	socialPostWidth    = 420
	socialPostHeight   = 200
	socialPostFileName = "bluesky-post.svg"
	maxSocialTextLen   = 100
	socialTextWidth    = 370
	socialFontSize     = 13
)

type socialLine struct {
	Text string
	Y    int
}

type socialPostViewModel struct {
	Link  string
	Lines []socialLine
	Date  string
}

// SocialPost renders the latest Bluesky post card, or the empty-state card
// when post is nil. now anchors the relative date.
func SocialPost(post *models.FeedPost, now time.Time) (models.RenderedDocument, error) {
	doc := models.RenderedDocument{Name: socialPostFileName, Width: socialPostWidth, Height: socialPostHeight}
	if post == nil {
		doc.Markup = emptySocialPostSVG
		return doc, nil
	}

	vm := socialPostViewModel{
		Link: post.Link,
		Date: RelativeDate(post.Published, now),
	}
	text := Truncate(post.Summary, maxSocialTextLen)
	for i, line := range WrapText(text, socialTextWidth, socialFontSize) {
		vm.Lines = append(vm.Lines, socialLine{Text: line, Y: 70 + i*20})
	}

	markup, err := execute("bluesky-post.svg.tmpl", vm)
	if err != nil {
		return models.RenderedDocument{}, err
	}
	doc.Markup = markup
	return doc, nil
}

// RelativeDate is "Nm ago", "Nh ago" or "Nd ago" within a week of now and
// an absolute "2 Jan 2006" date after that.
func RelativeDate(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", max(int(d/time.Minute), 0))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	default:
		return FormatDate(t)
	}
}

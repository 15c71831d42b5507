package readme

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"net/url"
	"strings"
	"text/template"

	"github.com/samber/lo"

	"github.com/kevinmichaelchen/profile-readme/internal/config"
	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

//go:embed templates/readme.md.tmpl
var readmeTemplate string

var readmeTmpl = template.Must(
	template.New("readme").
		Funcs(template.FuncMap{"attr": html.EscapeString}).
		Parse(readmeTemplate),
)

// Input is everything the README needs besides the generated cards, which
// it only references by path.
type Input struct {
	Name         string
	Bio          []string
	GeneratedDir string
	SocialCard   bool
	Posts        []models.FeedPost
	PostsTitle   string
	PostsSiteURL string
	MaxPosts     int
	SocialLinks  []config.SocialLink
}

type postLine struct {
	Date  string
	Title string
	URL   string
}

type badge struct {
	Alt      string
	URL      string
	ImageURL string
}

type bioLine struct {
	Text string
	Last bool
}

type readmeViewModel struct {
	Name         string
	Bio          []bioLine
	Dir          string
	SocialCard   bool
	PostsTitle   string
	Posts        []postLine
	MorePostsURL string
	Badges       []badge
}

// Build assembles the profile README.
func Build(in Input) (string, error) {
	dir := strings.TrimSuffix(in.GeneratedDir, "/")
	if dir == "" {
		dir = "generated"
	}

	vm := readmeViewModel{
		Name:       in.Name,
		Dir:        dir,
		SocialCard: in.SocialCard,
		PostsTitle: in.PostsTitle,
	}
	vm.Bio = lo.Map(in.Bio, func(line string, i int) bioLine {
		return bioLine{Text: line, Last: i == len(in.Bio)-1}
	})

	maxPosts := in.MaxPosts
	if maxPosts <= 0 {
		maxPosts = 5
	}
	shown := in.Posts[:min(maxPosts, len(in.Posts))]
	vm.Posts = lo.Map(shown, func(p models.FeedPost, _ int) postLine {
		return postLine{
			Date:  formatListDate(p),
			Title: escapeLinkText(p.Title),
			URL:   p.Link,
		}
	})
	if len(in.Posts) > maxPosts && in.PostsSiteURL != "" {
		vm.MorePostsURL = in.PostsSiteURL
	}

	vm.Badges = lo.Map(in.SocialLinks, func(l config.SocialLink, _ int) badge {
		return badge{Alt: l.Alt, URL: l.URL, ImageURL: BadgeURL(l)}
	})

	var buf bytes.Buffer
	if err := readmeTmpl.Execute(&buf, vm); err != nil {
		return "", fmt.Errorf("render readme: %w", err)
	}
	return buf.String(), nil
}

// BadgeURL builds a shields.io static badge URL for a social link.
func BadgeURL(l config.SocialLink) string {
	params := []string{"style=for-the-badge"}
	if l.Logo != "" {
		params = append(params, "logo="+url.QueryEscape(l.Logo))
	}
	if l.LogoColor != "" {
		params = append(params, "logoColor="+url.QueryEscape(l.LogoColor))
	}
	return fmt.Sprintf("https://img.shields.io/badge/%s-%s?%s",
		url.PathEscape(l.Label), url.PathEscape(l.Color), strings.Join(params, "&"))
}

// formatListDate pads the day to two characters so list entries line up.
func formatListDate(p models.FeedPost) string {
	if p.Published.IsZero() {
		return ""
	}
	return p.Published.Format("_2 Jan 2006")
}

var linkTextEscaper = strings.NewReplacer("[", `\[`, "]", `\]`)

func escapeLinkText(s string) string {
	return linkTextEscaper.Replace(s)
}

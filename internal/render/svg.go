package render

import (
	"bytes"
	"embed"
	"fmt"
	"math"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/aquilax/truncate"
)

//go:embed templates/*.svg.tmpl
var templateFS embed.FS

//go:embed templates/latest-post-empty.svg
var emptyLatestPostSVG string

//go:embed templates/bluesky-post-empty.svg
var emptySocialPostSVG string

var templates = template.Must(
	template.New("cards").
		Funcs(template.FuncMap{
			"xml": EscapeXML,
			"add": func(a, b int) int { return a + b },
			"pct": func(f float64) string { return fmt.Sprintf("%.1f", f) },
		}).
		ParseFS(templateFS, "templates/*.svg.tmpl"),
)

const (
	ellipsis     = "..."
	maxWrapLines = 5

	fontSans = "-apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif"
	fontMono = "'SFMono-Regular', Consolas, monospace"
)

var (
	xmlEscaper   = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;")
	xmlUnescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&")
)

// EscapeXML escapes the five XML special characters.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// UnescapeXML reverses EscapeXML.
func UnescapeXML(s string) string {
	return xmlUnescaper.Replace(s)
}

// Truncate cuts s to at most limit characters, replacing the tail with "..."
// when it has to cut. The cut is by character, not by word.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit <= len(ellipsis) {
		return string([]rune(s)[:limit])
	}
	return truncate.Truncate(s, limit, ellipsis, truncate.PositionEnd)
}

// WrapText greedily packs words into lines no longer than the number of
// characters that fit in maxWidth pixels at fontSize, assuming an average
// glyph width of half the font size. At most five lines are returned; the
// rest is dropped.
func WrapText(text string, maxWidth, fontSize float64) []string {
	maxChars := int(math.Floor(maxWidth / (fontSize * 0.5)))

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if utf8.RuneCountInString(candidate) <= maxChars {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) > maxWrapLines {
		lines = lines[:maxWrapLines]
	}
	return lines
}

// Delay is the animation start offset of the i-th element, in seconds.
func Delay(base, step float64, i int) float64 {
	return round2(base + float64(i)*step)
}

// BarWidth scales pct relative to the largest entry, so the largest bar
// always fills maxWidth.
func BarWidth(pct, largest, maxWidth float64) float64 {
	if largest <= 0 {
		return 0
	}
	return round2(pct / largest * maxWidth)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

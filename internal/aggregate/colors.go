package aggregate

// DefaultColor is used for languages missing from the table.
const DefaultColor = "#8b8b8b"

// GitHub's linguist colours for the languages we expect to see.
var languageColors = map[string]string{
	"TypeScript": "#3178c6",
	"JavaScript": "#f1e05a",
	"Python":     "#3572A5",
	"Astro":      "#ff5a03",
	"Kotlin":     "#A97BFF",
	"Shell":      "#89e051",
	"SCSS":       "#c6538c",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"C":          "#555555",
	"C++":        "#f34b7d",
	"C#":         "#178600",
	"Java":       "#b07219",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Ruby":       "#701516",
	"PHP":        "#4F5D95",
	"Vue":        "#41b883",
	"Svelte":     "#ff3e00",
	"Lua":        "#000080",
	"Dart":       "#00B4AB",
	"Swift":      "#F05138",
}

// LanguageColor returns the display colour for a language name.
func LanguageColor(name string) string {
	if c, ok := languageColors[name]; ok {
		return c
	}
	return DefaultColor
}

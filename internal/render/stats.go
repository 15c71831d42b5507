package render

import (
	"github.com/dustin/go-humanize"

	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

const (
	statsWidth    = 420
	statsHeight   = 200
	statsRowH     = 50
	statsStartY   = 54
	statsFileName = "stats.svg"
)

// Octicon paths, 16×16 viewBox.
const (
	iconRepo     = "M2 2.5A2.5 2.5 0 014.5 0h8.75a.75.75 0 01.75.75v12.5a.75.75 0 01-.75.75h-2.5a.75.75 0 110-1.5h1.75v-2h-8a1 1 0 00-.714 1.7.75.75 0 01-1.072 1.05A2.495 2.495 0 012 11.5v-9z"
	iconPeople   = "M5.5 3.5a2 2 0 100 4 2 2 0 000-4zM2 5.5a3.5 3.5 0 115.898 2.549 5.507 5.507 0 013.034 4.084.75.75 0 11-1.482.235 4.001 4.001 0 00-7.9 0 .75.75 0 01-1.482-.236A5.507 5.507 0 013.102 8.05 3.49 3.49 0 012 5.5zM11 4a.75.75 0 100 1.5 1.5 1.5 0 01.666 2.844.75.75 0 00-.416.672v.352a.75.75 0 00.574.73c1.2.289 2.162 1.2 2.522 2.372a.75.75 0 101.434-.44 5.01 5.01 0 00-2.56-3.012A3 3 0 0011 4z"
	iconStar     = "M8 .25a.75.75 0 01.673.418l1.882 3.815 4.21.612a.75.75 0 01.416 1.279l-3.046 2.97.719 4.192a.75.75 0 01-1.088.791L8 12.347l-3.766 1.98a.75.75 0 01-1.088-.79l.72-4.194L.818 6.374a.75.75 0 01.416-1.28l4.21-.611L7.327.668A.75.75 0 018 .25z"
	iconCalendar = "M4.75 0a.75.75 0 01.75.75V2h5V.75a.75.75 0 011.5 0V2h1.25c.966 0 1.75.784 1.75 1.75v10.5A1.75 1.75 0 0113.25 16H2.75A1.75 1.75 0 011 14.25V3.75C1 2.784 1.784 2 2.75 2H4V.75A.75.75 0 014.75 0z"
	iconCommit   = "M1.5 3.25c0-.966.784-1.75 1.75-1.75h3.5c.966 0 1.75.784 1.75 1.75v3.5A1.75 1.75 0 016.75 8.5h-3.5A1.75 1.75 0 011.5 6.75v-3.5zM3.25 3a.25.25 0 00-.25.25v3.5c0 .138.112.25.25.25h3.5a.25.25 0 00.25-.25v-3.5a.25.25 0 00-.25-.25h-3.5z"
	iconMonth    = "M4.75 0a.75.75 0 01.75.75V2h5V.75a.75.75 0 011.5 0V2h1.25c.966 0 1.75.784 1.75 1.75v10.5A1.75 1.75 0 0113.25 16H2.75A1.75 1.75 0 011 14.25V3.75C1 2.784 1.784 2 2.75 2H4V.75A.75.75 0 014.75 0zM2.5 7.5v6.75c0 .138.112.25.25.25h10.5a.25.25 0 00.25-.25V7.5h-11z"
)

type statItem struct {
	Label string
	Value string
	Icon  string
	X, Y  int
	Delay float64
}

type statsViewModel struct {
	Width, Height int
	LeftX, RightX int
	FontSans      string
	CommitsTitle  string
	Items         []statItem
}

// Stats renders the two-column GitHub/commit numbers card.
func Stats(data models.ProfileData) (models.RenderedDocument, error) {
	colWidth := (statsWidth - 50) / 2
	leftX := 25
	rightX := 25 + colWidth

	commitsTitle := "Commits"
	if data.Commits.Estimated {
		commitsTitle = "Commits (estimated)"
	}

	vm := statsViewModel{
		Width:        statsWidth,
		Height:       statsHeight,
		LeftX:        leftX,
		RightX:       rightX,
		FontSans:     fontSans,
		CommitsTitle: commitsTitle,
	}

	left := []statItem{
		{Label: "Public Repos", Value: humanize.Comma(int64(data.User.PublicRepos)), Icon: iconRepo},
		{Label: "Followers", Value: humanize.Comma(int64(data.User.Followers)), Icon: iconPeople},
		{Label: "Total Stars", Value: humanize.Comma(int64(data.TotalStars)), Icon: iconStar},
	}
	right := []statItem{
		{Label: "This Year", Value: humanize.Comma(int64(data.Commits.ThisYear)), Icon: iconCalendar},
		{Label: "Total Commits", Value: humanize.Comma(int64(data.Commits.Total)), Icon: iconCommit},
		{Label: "This Month", Value: humanize.Comma(int64(data.Commits.ThisMonth)), Icon: iconMonth},
	}

	for _, col := range []struct {
		x     int
		items []statItem
	}{{leftX, left}, {rightX, right}} {
		for i, it := range col.items {
			it.X = col.x
			it.Y = statsStartY + i*statsRowH
			it.Delay = Delay(0.3, 0.15, i)
			vm.Items = append(vm.Items, it)
		}
	}

	markup, err := execute("stats.svg.tmpl", vm)
	if err != nil {
		return models.RenderedDocument{}, err
	}
	return models.RenderedDocument{Name: statsFileName, Markup: markup, Width: statsWidth, Height: statsHeight}, nil
}

package render

import (
	"github.com/kevinmichaelchen/profile-readme/internal/aggregate"
	"github.com/kevinmichaelchen/profile-readme/internal/models"
)

const (
	languagesWidth    = 420
	languagesBarMax   = 230.0
	languagesBarH     = 22
	languagesBarGap   = 8
	languagesTopPad   = 50
	languagesLeftPad  = 25
	languagesLabelW   = 85
	languagesBottom   = 30
	DefaultMaxLangs   = 8
	languagesFileName = "languages.svg"
)

type languageBar struct {
	Name     string
	Color    string
	Pct      float64
	Width    float64
	Y        int
	Delay    float64
	PctDelay float64
}

type languagesViewModel struct {
	Width, Height int
	BarMax        float64
	BarHeight     int
	LeftPad       int
	BarX          int
	PctX          float64
	FontSans      string
	FontMono      string
	Bars          []languageBar
}

// Languages renders the top-languages bar chart. Shares must already be
// sorted by descending size; at most limit entries are drawn.
func Languages(shares []models.LanguageShare, limit int) (models.RenderedDocument, error) {
	if limit <= 0 {
		limit = DefaultMaxLangs
	}
	langs := aggregate.Top(shares, limit)
	height := languagesTopPad + len(langs)*(languagesBarH+languagesBarGap) + languagesBottom

	vm := languagesViewModel{
		Width:     languagesWidth,
		Height:    height,
		BarMax:    languagesBarMax,
		BarHeight: languagesBarH - 4,
		LeftPad:   languagesLeftPad,
		BarX:      languagesLeftPad + languagesLabelW,
		PctX:      languagesLeftPad + languagesLabelW + languagesBarMax + 12,
		FontSans:  fontSans,
		FontMono:  fontMono,
	}

	for i, l := range langs {
		delay := Delay(0.3, 0.1, i)
		vm.Bars = append(vm.Bars, languageBar{
			Name:     l.Name,
			Color:    l.Color,
			Pct:      l.Percentage,
			Width:    BarWidth(l.Percentage, langs[0].Percentage, languagesBarMax),
			Y:        languagesTopPad + i*(languagesBarH+languagesBarGap),
			Delay:    delay,
			PctDelay: round2(delay + 0.4),
		})
	}

	markup, err := execute("languages.svg.tmpl", vm)
	if err != nil {
		return models.RenderedDocument{}, err
	}
	return models.RenderedDocument{Name: languagesFileName, Markup: markup, Width: vm.Width, Height: vm.Height}, nil
}

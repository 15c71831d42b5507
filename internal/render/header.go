package render

import "github.com/kevinmichaelchen/profile-readme/internal/models"

const (
	headerWidth    = 840
	headerHeight   = 180
	headerFileName = "header.svg"
	maxTaglineLen  = 80
)

type tagline struct {
	Text  string
	Y     int
	Delay float64
}

type headerViewModel struct {
	Width, Height int
	CenterX       int
	FontSans      string
	Name          string
	Taglines      []tagline
}

// Header renders the name banner with up to two taglines underneath.
func Header(name string, taglines []string) (models.RenderedDocument, error) {
	vm := headerViewModel{
		Width:    headerWidth,
		Height:   headerHeight,
		CenterX:  headerWidth / 2,
		FontSans: fontSans,
		Name:     Truncate(name, 40),
	}

	for i, t := range taglines {
		if i == 2 {
			break
		}
		vm.Taglines = append(vm.Taglines, tagline{
			Text:  Truncate(t, maxTaglineLen),
			Y:     118 + i*26,
			Delay: Delay(0.5, 0.2, i),
		})
	}

	markup, err := execute("header.svg.tmpl", vm)
	if err != nil {
		return models.RenderedDocument{}, err
	}
	return models.RenderedDocument{Name: headerFileName, Markup: markup, Width: headerWidth, Height: headerHeight}, nil
}

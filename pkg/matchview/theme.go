package matchview

import "image/color"

// Theme selects a background/foreground color scheme, the same Light/Dark
// split pkg/kicad/schematic/renderer/theme.go offers.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// Colors is the color scheme used to render one match: a background, a
// neutral box outline/text color, a distinct fill per gate kind class, and
// a color for the lines connecting mapped pattern/design gates.
type Colors struct {
	Background color.NRGBA
	BoxOutline color.NRGBA
	BoxText    color.NRGBA

	GateFill     color.NRGBA
	BoundaryFill color.NRGBA

	MappingLine  color.NRGBA
	BoundaryLine color.NRGBA
}

// GetColors returns the color scheme for the given theme.
func GetColors(theme Theme) *Colors {
	if theme == ThemeDark {
		return &Colors{
			Background:   color.NRGBA{R: 30, G: 30, B: 30, A: 255},
			BoxOutline:   color.NRGBA{R: 220, G: 220, B: 220, A: 255},
			BoxText:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			GateFill:     color.NRGBA{R: 60, G: 60, B: 0, A: 160},
			BoundaryFill: color.NRGBA{R: 0, G: 50, B: 70, A: 160},
			MappingLine:  color.NRGBA{R: 0, G: 255, B: 0, A: 255},
			BoundaryLine: color.NRGBA{R: 0, G: 150, B: 255, A: 255},
		}
	}
	return &Colors{
		Background:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		BoxOutline:   color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		BoxText:      color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		GateFill:     color.NRGBA{R: 255, G: 255, B: 194, A: 200},
		BoundaryFill: color.NRGBA{R: 194, G: 230, B: 255, A: 200},
		MappingLine:  color.NRGBA{R: 0, G: 132, B: 0, A: 255},
		BoundaryLine: color.NRGBA{R: 0, G: 0, B: 132, A: 255},
	}
}

// String returns the theme name.
func (t Theme) String() string {
	if t == ThemeDark {
		return "Dark"
	}
	return "Light"
}

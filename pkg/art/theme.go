// Package art is the visual resource core: it stores vector icon templates,
// resolves them against the active theme into cached bitmap bundles, and
// broadcasts change notifications so every live UI binding refreshes itself.
package art

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Theme carries the semantic colors icons are tinted with. Primary is the
// normal chrome color; OnDark is used on dark surfaces (dock title bars over
// dark styles, status bars).
type Theme struct {
	Name    string
	Primary colorful.Color
	OnDark  colorful.Color
}

var (
	// LightTheme tints icons dark grey for light window chrome.
	LightTheme = Theme{Name: "light", Primary: mustHex("#424242"), OnDark: mustHex("#e0e0e0")}
	// DarkTheme tints icons light grey for dark window chrome.
	DarkTheme = Theme{Name: "dark", Primary: mustHex("#e0e0e0"), OnDark: mustHex("#424242")}
)

// ThemeByName maps a stored theme name to a built-in theme. Unknown names
// fall back to the light theme.
func ThemeByName(name string) Theme {
	switch name {
	case DarkTheme.Name:
		return DarkTheme
	default:
		return LightTheme
	}
}

// CustomTheme builds a theme around a caller-chosen primary color. The
// on-dark color is derived by blending toward white so custom themes stay
// legible on dark surfaces.
func CustomTheme(primaryHex string) (Theme, error) {
	primary, err := colorful.Hex(primaryHex)
	if err != nil {
		return Theme{}, err
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return Theme{
		Name:    "custom",
		Primary: primary,
		OnDark:  primary.BlendLab(white, 0.65).Clamped(),
	}, nil
}

// Secondary derives the muted companion shade of the primary color, used by
// two-tone templates.
func (t Theme) Secondary() colorful.Color {
	grey := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	return t.Primary.BlendLab(grey, 0.4).Clamped()
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

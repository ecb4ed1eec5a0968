package flow

// Theme provides a set of styles for consistent chip appearance.
type Theme struct {
	Base   Style // default chip style
	Muted  Style // de-emphasized chips
	Accent Style // highlighted chips
	Border Style // border style for bordered chips
}

// Pre-defined themes

// ThemeDark is a dark theme with light text on dark background.
var ThemeDark = Theme{
	Base:   Style{FG: White, Attr: AttrInverse},
	Muted:  Style{FG: BrightBlack, Attr: AttrInverse},
	Accent: Style{FG: BrightCyan, Attr: AttrInverse},
	Border: Style{FG: BrightBlack},
}

// ThemeMonochrome is a minimal theme using only attributes.
var ThemeMonochrome = Theme{
	Base:   Style{Attr: AttrInverse},
	Muted:  Style{Attr: AttrDim},
	Accent: Style{Attr: AttrBold | AttrInverse},
	Border: Style{Attr: AttrDim},
}

// Palette is a cycling sequence of styles, for coloring a collection
// of chips by position.
type Palette []Style

// DefaultPalette cycles through the basic bright colors.
var DefaultPalette = Palette{
	Style{FG: BrightBlue, Attr: AttrInverse},
	Style{FG: BrightMagenta, Attr: AttrInverse},
	Style{FG: BrightGreen, Attr: AttrInverse},
	Style{FG: BrightYellow, Attr: AttrInverse},
	Style{FG: BrightCyan, Attr: AttrInverse},
}

// For returns the style for the i-th item, cycling through the palette.
func (p Palette) For(i int) Style {
	if len(p) == 0 {
		return DefaultStyle()
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

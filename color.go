package ansiterm

// ColorKind distinguishes the three ways a Color can name a hue without this
// package ever resolving it to an actual RGB pixel itself — palette
// resolution belongs to the host, per the package-level non-goals.
type ColorKind int

const (
	// ColorDefault is the terminal's default foreground or background.
	ColorDefault ColorKind = iota
	// ColorNamed is one of the 16 standard ANSI colors (0-15), including
	// the Bright* variants; Dim* variants are folded onto their non-dim hue.
	ColorNamed
	// ColorSpec is an explicit 24-bit RGB value (SGR 38;2;r;g;b).
	ColorSpec
	// ColorIndexed passes a palette index straight through to whatever
	// color table the host maintains (SGR 38;5;n).
	ColorIndexed
)

// NamedColor enumerates the 16 standard ANSI colors.
type NamedColor int

const (
	ColorBlack NamedColor = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// Color is a small sum type describing a cell's foreground/background hue.
// It never resolves to a concrete pixel: the host owns the palette and
// interprets Named/Indexed values against it.
type Color struct {
	Kind    ColorKind
	Named   NamedColor
	R, G, B uint8
	Index   int
}

// DefaultColor is the zero Color: the host's default fg or bg.
var DefaultColor = Color{Kind: ColorDefault}

// Named builds a Color naming one of the 16 standard colors.
func Named(c NamedColor) Color { return Color{Kind: ColorNamed, Named: c} }

// Spec builds a Color from an explicit 24-bit RGB triple.
func Spec(r, g, b uint8) Color { return Color{Kind: ColorSpec, R: r, G: g, B: b} }

// Indexed builds a Color naming a slot in the host's palette.
func Indexed(i int) Color { return Color{Kind: ColorIndexed, Index: i} }

// dimToBase maps a Bright* named color onto its normal counterpart and
// returns any other color unchanged. namedColorFromAnsicode uses it to give
// each Dim* color the same hue as its non-dim variant.
func dimToBase(c NamedColor) NamedColor {
	switch c {
	case ColorBrightBlack:
		return ColorBlack
	case ColorBrightRed:
		return ColorRed
	case ColorBrightGreen:
		return ColorGreen
	case ColorBrightYellow:
		return ColorYellow
	case ColorBrightBlue:
		return ColorBlue
	case ColorBrightMagenta:
		return ColorMagenta
	case ColorBrightCyan:
		return ColorCyan
	case ColorBrightWhite:
		return ColorWhite
	default:
		return c
	}
}

// Style is the set of rendering attributes applied to a GraphemeCell.
type Style struct {
	Fg        Color
	Bg        Color
	Bold      bool
	Italic    bool
	Underline bool
	Inverse   bool
}

// DefaultStyle is the zero Style: default colors, no attributes set.
var DefaultStyle = Style{}

// StyleModifier describes a partial change to a Style: each field that is
// non-nil is applied, fields left nil leave the corresponding Style field
// untouched. Each SGR attribute is folded into CursorState's active Style as
// one such modifier, so it only ever touches the attribute it names.
//
// ToggleUnderline and ToggleInverse are a second, XOR-flipping kind of
// change, matching the original implementation's BoolModifyMode::Toggle:
// rather than setting the field to a fixed value, they flip whatever it
// currently holds. Applying the same toggle modifier to the same style
// twice is therefore always the identity — the mechanism Draw relies on to
// paint, then un-paint, the cursor cell.
type StyleModifier struct {
	Fg        *Color
	Bg        *Color
	Bold      *bool
	Italic    *bool
	Underline *bool
	Inverse   *bool
	Reset     bool

	ToggleUnderline bool
	ToggleInverse   bool
}

// Apply returns s with the modifier's non-nil fields overlaid, then any
// toggle fields XOR-flipped. Reset discards s entirely and returns
// DefaultStyle, ignoring every other field in the same modifier.
func (m StyleModifier) Apply(s Style) Style {
	if m.Reset {
		return DefaultStyle
	}
	if m.Fg != nil {
		s.Fg = *m.Fg
	}
	if m.Bg != nil {
		s.Bg = *m.Bg
	}
	if m.Bold != nil {
		s.Bold = *m.Bold
	}
	if m.Italic != nil {
		s.Italic = *m.Italic
	}
	if m.Underline != nil {
		s.Underline = *m.Underline
	}
	if m.Inverse != nil {
		s.Inverse = *m.Inverse
	}
	if m.ToggleUnderline {
		s.Underline = !s.Underline
	}
	if m.ToggleInverse {
		s.Inverse = !s.Inverse
	}
	return s
}

func boolPtr(b bool) *bool   { return &b }
func colorPtr(c Color) *Color { return &c }

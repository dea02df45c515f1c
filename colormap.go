package ansiterm

import "github.com/danielgatis/go-ansicode"

// colorFromAttr converts the color carried by a go-ansicode
// TerminalCharAttribute into this package's own Color sum type. It never
// resolves to an actual pixel — that stays the host's job, per the
// package's non-goals on color palettes.
func colorFromAttr(attr ansicode.TerminalCharAttribute, fg bool) Color {
	switch {
	case attr.RGBColor != nil:
		return Spec(attr.RGBColor.R, attr.RGBColor.G, attr.RGBColor.B)
	case attr.IndexedColor != nil:
		return Indexed(int(attr.IndexedColor.Index))
	case attr.NamedColor != nil:
		return namedColorFromAnsicode(*attr.NamedColor, fg)
	default:
		return DefaultColor
	}
}

// namedColorFromAnsicode maps go-ansicode's NamedColor enum (which mirrors
// the classic vte/alacritty ansi::NamedColor set the original implementation
// matched on) onto this package's 16-color NamedColor plus the handful of
// semantic placeholders spec.md calls for: dim variants fold onto their
// non-dim hue, Foreground/Background/Cursor map to White/Black/Black
// placeholders exactly as documented.
func namedColorFromAnsicode(c ansicode.NamedColor, fg bool) Color {
	switch c {
	case ansicode.NamedColorBlack:
		return Named(ColorBlack)
	case ansicode.NamedColorRed:
		return Named(ColorRed)
	case ansicode.NamedColorGreen:
		return Named(ColorGreen)
	case ansicode.NamedColorYellow:
		return Named(ColorYellow)
	case ansicode.NamedColorBlue:
		return Named(ColorBlue)
	case ansicode.NamedColorMagenta:
		return Named(ColorMagenta)
	case ansicode.NamedColorCyan:
		return Named(ColorCyan)
	case ansicode.NamedColorWhite:
		return Named(ColorWhite)
	case ansicode.NamedColorBrightBlack:
		return Named(ColorBrightBlack)
	case ansicode.NamedColorBrightRed:
		return Named(ColorBrightRed)
	case ansicode.NamedColorBrightGreen:
		return Named(ColorBrightGreen)
	case ansicode.NamedColorBrightYellow:
		return Named(ColorBrightYellow)
	case ansicode.NamedColorBrightBlue:
		return Named(ColorBrightBlue)
	case ansicode.NamedColorBrightMagenta:
		return Named(ColorBrightMagenta)
	case ansicode.NamedColorBrightCyan:
		return Named(ColorBrightCyan)
	case ansicode.NamedColorBrightWhite:
		return Named(ColorBrightWhite)
	case ansicode.NamedColorForeground:
		return Named(ColorWhite)
	case ansicode.NamedColorBackground:
		return Named(ColorBlack)
	case ansicode.NamedColorCursor:
		return Named(ColorBlack)
	case ansicode.NamedColorDimBlack:
		return Named(dimToBase(ColorBrightBlack))
	case ansicode.NamedColorDimRed:
		return Named(dimToBase(ColorBrightRed))
	case ansicode.NamedColorDimGreen:
		return Named(dimToBase(ColorBrightGreen))
	case ansicode.NamedColorDimYellow:
		return Named(dimToBase(ColorBrightYellow))
	case ansicode.NamedColorDimBlue:
		return Named(dimToBase(ColorBrightBlue))
	case ansicode.NamedColorDimMagenta:
		return Named(dimToBase(ColorBrightMagenta))
	case ansicode.NamedColorDimCyan:
		return Named(dimToBase(ColorBrightCyan))
	case ansicode.NamedColorDimWhite:
		return Named(dimToBase(ColorBrightWhite))
	default:
		if fg {
			return Named(ColorWhite)
		}
		return Named(ColorBlack)
	}
}

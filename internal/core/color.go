package core

// Color is the foreground colour of a screen cell. The platform decides how
// each value looks; a game only picks roles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// Opacity steps for glyphs that fade out. Terminals have no alpha channel,
// so fading is a walk down to gray and then off.
const (
	FadeDim       = 0.5
	FadeInvisible = 0.25
)

// Faded returns the colour for a glyph drawn at the given opacity, and false
// when the glyph should not be drawn at all.
func Faded(c Color, alpha float64) (Color, bool) {
	switch {
	case alpha < FadeInvisible:
		return c, false
	case alpha < FadeDim:
		return ColorGray, true
	default:
		return c, true
	}
}

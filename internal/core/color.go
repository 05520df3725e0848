package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	colorCount
)

// RGB is a linear color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// RGBA is a linear color with alpha; alpha is used as remaining opacity.
type RGBA struct {
	R, G, B, A float64
}

// White is the neutral tint: sprites drawn with it keep their own colors.
var White = RGB{1, 1, 1}

// WithAlpha extends c with an alpha component.
func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{c.R, c.G, c.B, a}
}

// RGB drops the alpha component.
func (c RGBA) RGB() RGB {
	return RGB{c.R, c.G, c.B}
}

// paletteRGB approximates each terminal color in linear RGB.
var paletteRGB = [colorCount]RGB{
	ColorDefault:       {0.75, 0.75, 0.75},
	ColorRed:           {0.7, 0.1, 0.1},
	ColorGreen:         {0.0, 0.7, 0.0},
	ColorYellow:        {0.8, 0.8, 0.4},
	ColorBlue:          {0.1, 0.2, 0.7},
	ColorMagenta:       {0.7, 0.2, 0.7},
	ColorCyan:          {0.2, 0.7, 0.7},
	ColorWhite:         {0.85, 0.85, 0.85},
	ColorBrightRed:     {1.0, 0.3, 0.3},
	ColorBrightGreen:   {0.5, 1.0, 0.5},
	ColorBrightYellow:  {1.0, 1.0, 0.3},
	ColorBrightBlue:    {0.2, 0.6, 1.0},
	ColorBrightMagenta: {1.0, 0.5, 1.0},
	ColorBrightCyan:    {0.5, 1.0, 1.0},
	ColorBrightWhite:   {1.0, 1.0, 1.0},
	ColorOrange:        {1.0, 0.5, 0.0},
	ColorGray:          {0.5, 0.5, 0.5},
}

// Nearest returns the palette color closest to c.
func Nearest(c RGB) Color {
	best := ColorDefault
	bestDist := -1.0
	for i := ColorRed; i < colorCount; i++ {
		p := paletteRGB[i]
		dr, dg, db := c.R-p.R, c.G-p.G, c.B-p.B
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// PaletteRGB returns the linear RGB approximation of a terminal color.
func PaletteRGB(c Color) RGB {
	if c >= colorCount {
		return paletteRGB[ColorDefault]
	}
	return paletteRGB[c]
}

// Inverted returns the palette color closest to 1-rgb(c).
func (c Color) Inverted() Color {
	p := PaletteRGB(c)
	return Nearest(RGB{1 - p.R, 1 - p.G, 1 - p.B})
}

// Rotated cycles a color through the chromatic palette by n steps.
// Default, white and gray stay untouched.
func (c Color) Rotated(n int) Color {
	if c < ColorRed || c > ColorCyan {
		return c
	}
	span := int(ColorCyan - ColorRed + 1)
	idx := (int(c-ColorRed) + n) % span
	if idx < 0 {
		idx += span
	}
	return ColorRed + Color(idx)
}

package render

import "image/color"

var lightColors = []color.RGBA{
	{R: 102, G: 194, B: 165, A: 255},
	{R: 252, G: 141, B: 98, A: 255},
	{R: 141, G: 160, B: 203, A: 255},
	{R: 231, G: 138, B: 195, A: 255},
	{R: 166, G: 216, B: 84, A: 255},
	{R: 255, G: 217, B: 47, A: 255},
	{R: 229, G: 196, B: 148, A: 255},
	{R: 179, G: 179, B: 179, A: 255},
}

var darkColors = []color.RGBA{
	{R: 27, G: 120, B: 95, A: 255},
	{R: 190, G: 80, B: 30, A: 255},
	{R: 70, G: 90, B: 150, A: 255},
	{R: 170, G: 60, B: 130, A: 255},
	{R: 90, G: 140, B: 20, A: 255},
	{R: 180, G: 140, B: 0, A: 255},
	{R: 150, G: 115, B: 70, A: 255},
	{R: 90, G: 90, B: 90, A: 255},
}

// PaletteSize is the number of distinct colours Color cycles through.
const PaletteSize = 8

// Color returns the brush'th palette colour. Brushes beyond the palette
// wrap around; dark selects the darker variant used for markers drawn
// over the light one.
func Color(
	brush int,
	dark bool,
) (
	color.RGBA,
) {

	brush %= PaletteSize
	if brush < 0 {
		brush += PaletteSize
	}

	if dark {
		return darkColors[brush]
	}
	return lightColors[brush]
}

package palette

import (
	"FractalExplorer/misc"
	"image/color"
)

type GeneratePaletteSettings struct {
	StartColor   color.RGBA
	EndColor     color.RGBA
	NumberColors int
}

func (gps *GeneratePaletteSettings) GeneratePalette() []color.RGBA {
	palette := make([]color.RGBA, 0, gps.NumberColors)
	for j := 0; j < gps.NumberColors; j++ {
		fraction := float64(j) / float64(gps.NumberColors)
		palette = append(palette, misc.LinearInterpolationRGB(gps.StartColor, gps.EndColor, fraction))
	}
	return palette
}

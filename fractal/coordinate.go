package fractal

import "math"

// ScaleToPlane converts a pixel position on one axis to the matching plane coordinate.
// Pixel 0 maps exactly to origin and pixel extent maps exactly to origin+span.
func ScaleToPlane(pixel float64, extent float64, origin float64, span float64) float64 {
	return (pixel/extent)*span + origin
}

// ScaleToImage is the inverse of ScaleToPlane truncated toward zero. The second return value is false when the
// coordinate falls outside of [0, extent).
func ScaleToImage(coordinate float64, extent float64, origin float64, span float64) (uint16, bool) {
	scaled := (coordinate - origin) / span * extent
	if math.IsNaN(scaled) || scaled < 0 || scaled >= extent {
		return 0, false
	}
	return uint16(scaled), true
}

// Mapper translates between the pixel grid of an image and the rectangle of the plane described by a viewport
type Mapper struct {
	height float64
	width  float64

	MinX        float64
	MinY        float64
	PlaneHeight float64
	PlaneWidth  float64
}

func NewMapper(viewport Viewport, width uint16, height uint16) Mapper {
	return Mapper{
		height:      float64(height),
		width:       float64(width),
		MinX:        viewport.MinX(),
		MinY:        viewport.MinY(),
		PlaneHeight: viewport.Height,
		PlaneWidth:  viewport.Width,
	}
}

func (m Mapper) ToPlane(x float64, y float64) Complex {
	return Complex{
		Re: ScaleToPlane(x, m.width, m.MinX, m.PlaneWidth),
		Im: ScaleToPlane(y, m.height, m.MinY, m.PlaneHeight),
	}
}

// ToPixel reports false when the point lies outside of the image
func (m Mapper) ToPixel(c Complex) (uint16, uint16, bool) {
	x, ok := ScaleToImage(c.Re, m.width, m.MinX, m.PlaneWidth)
	if !ok {
		return 0, 0, false
	}
	y, ok := ScaleToImage(c.Im, m.height, m.MinY, m.PlaneHeight)
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}

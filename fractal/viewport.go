package fractal

import (
	"fmt"
	"math"
)

// MinIterations is the floor DecreaseIterations never goes below
const MinIterations uint16 = 10

// Viewport is the rectangle of the complex plane mapped onto the image together with the iteration budget.
// The rectangle is kept by its center so that zooming only ever halves or doubles the spans.
type Viewport struct {
	CenterX       float64
	CenterY       float64
	Height        float64
	MaxIterations uint16
	SupportsZoom  bool
	Width         float64
}

// MinX is the real part of the image's left edge
func (v Viewport) MinX() float64 {
	return v.CenterX - v.Width/2
}

// MinY is the imaginary part of the image's first row
func (v Viewport) MinY() float64 {
	return v.CenterY - v.Height/2
}

func (v Viewport) String() string {
	output := "{Viewport "
	output += fmt.Sprintf("CenterX: %g ", v.CenterX)
	output += fmt.Sprintf("CenterY: %g ", v.CenterY)
	output += fmt.Sprintf("Width: %g ", v.Width)
	output += fmt.Sprintf("Height: %g ", v.Height)
	output += fmt.Sprintf("MaxIterations: %d}", v.MaxIterations)
	return output
}

func validSpan(span float64) bool {
	return span > 0 && !math.IsInf(span, 0) && !math.IsNaN(span)
}

func (v Viewport) Verify() error {
	if !validSpan(v.Width) || !validSpan(v.Height) {
		return fmt.Errorf("%s: %w", v.String(), ErrDegenerateViewport)
	}
	if math.IsNaN(v.MinX()) || math.IsInf(v.MinX(), 0) || math.IsNaN(v.MinY()) || math.IsInf(v.MinY(), 0) {
		return fmt.Errorf("%s: %w", v.String(), ErrDegenerateViewport)
	}
	if v.MaxIterations < 1 {
		return fmt.Errorf("%s: max iterations must be at least 1", v.String())
	}
	return nil
}

// Recenter zooms in by a factor of two around the plane point under the given pixel
func (v *Viewport) Recenter(x float64, y float64, pixelWidth float64, pixelHeight float64) error {
	width, height := v.Width/2, v.Height/2
	if !validSpan(width) || !validSpan(height) {
		return ErrDegenerateViewport
	}

	v.CenterX = ScaleToPlane(x, pixelWidth, v.MinX(), v.Width)
	v.CenterY = ScaleToPlane(y, pixelHeight, v.MinY(), v.Height)
	v.Width = width
	v.Height = height
	return nil
}

// ZoomIn keeps the central half of the rectangle along both axes
func (v *Viewport) ZoomIn() error {
	if !validSpan(v.Width/2) || !validSpan(v.Height/2) {
		return ErrDegenerateViewport
	}
	v.Width /= 2
	v.Height /= 2
	return nil
}

// ZoomOut undoes ZoomIn: the span doubles around the same center
func (v *Viewport) ZoomOut() error {
	if !validSpan(v.Width*2) || !validSpan(v.Height*2) {
		return ErrDegenerateViewport
	}
	v.Width *= 2
	v.Height *= 2
	return nil
}

func (v *Viewport) IncreaseIterations() error {
	if v.MaxIterations > math.MaxUint16/2 {
		return fmt.Errorf("doubling %d: %w", v.MaxIterations, ErrIterationLimit)
	}
	v.MaxIterations *= 2
	return nil
}

func (v *Viewport) DecreaseIterations() {
	v.MaxIterations /= 2
	if v.MaxIterations < MinIterations {
		v.MaxIterations = MinIterations
	}
}

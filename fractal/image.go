package fractal

import (
	"fmt"
	"math"
)

// MaxDensity is the ceiling for accumulated counters, increments past it are dropped
const MaxDensity uint16 = 60000

// Image stores one iteration count per pixel, indexed by y*width+x
type Image struct {
	height     uint16
	iterations []uint16
	width      uint16
}

func NewImage(width uint16, height uint16) *Image {
	return &Image{
		height:     height,
		iterations: make([]uint16, int(width)*int(height)),
		width:      width,
	}
}

// NewImageChecked validates dimensions coming from outside of the package (window sizes, rpc requests)
func NewImageChecked(width int, height int) (*Image, error) {
	if width < 1 || height < 1 || width > math.MaxUint16 || height > math.MaxUint16 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return NewImage(uint16(width), uint16(height)), nil
}

// NewImageFrom copies iterations, laid out row by row, into a new image
func NewImageFrom(width int, height int, iterations []uint16) (*Image, error) {
	image, err := NewImageChecked(width, height)
	if err != nil {
		return nil, err
	}
	if len(iterations) != len(image.iterations) {
		return nil, fmt.Errorf("%d values for a %dx%d image: %w", len(iterations), width, height, ErrInvalidDimensions)
	}
	copy(image.iterations, iterations)
	return image, nil
}

func (i *Image) Dimensions() (uint16, uint16) {
	return i.width, i.height
}

func (i *Image) InBounds(x uint16, y uint16) bool {
	return x < i.width && y < i.height
}

func (i *Image) index(x uint16, y uint16) int {
	return int(y)*int(i.width) + int(x)
}

func (i *Image) PixelIterations(x uint16, y uint16) (uint16, error) {
	if !i.InBounds(x, y) {
		return 0, fmt.Errorf("(%d, %d) in %dx%d image: %w", x, y, i.width, i.height, ErrOutOfBounds)
	}
	return i.iterations[i.index(x, y)], nil
}

func (i *Image) SetPixelIterations(pixel Pixel) error {
	if !i.InBounds(pixel.X, pixel.Y) {
		return fmt.Errorf("(%d, %d) in %dx%d image: %w", pixel.X, pixel.Y, i.width, i.height, ErrOutOfBounds)
	}
	i.iterations[i.index(pixel.X, pixel.Y)] = pixel.Iterations
	return nil
}

// IncrementPixel adds one to the counter at (x, y). Points outside of the image and counters already at
// MaxDensity are silently skipped; the return value reports whether anything was recorded.
func (i *Image) IncrementPixel(x uint16, y uint16) bool {
	if !i.InBounds(x, y) {
		return false
	}
	index := i.index(x, y)
	if i.iterations[index] >= MaxDensity {
		return false
	}
	i.iterations[index]++
	return true
}

// Merge adds the counters of other, an image of the same dimensions, saturating at MaxDensity
func (i *Image) Merge(other *Image) error {
	if other.width != i.width || other.height != i.height {
		return fmt.Errorf("merging %dx%d into %dx%d image: %w", other.width, other.height, i.width, i.height, ErrInvalidDimensions)
	}
	for index, count := range other.iterations {
		i.iterations[index] = uint16(min(uint32(i.iterations[index])+uint32(count), uint32(MaxDensity)))
	}
	return nil
}

// Iterations exposes the backing slice for read only consumers such as renderers
func (i *Image) Iterations() []uint16 {
	return i.iterations
}

// Peak returns the largest value stored in the image
func (i *Image) Peak() uint16 {
	var peak uint16
	for _, v := range i.iterations {
		if v > peak {
			peak = v
		}
	}
	return peak
}

func (i *Image) Clone() *Image {
	clone := &Image{
		height:     i.height,
		iterations: make([]uint16, len(i.iterations)),
		width:      i.width,
	}
	copy(clone.iterations, i.iterations)
	return clone
}

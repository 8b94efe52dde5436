package fractal

import (
	"errors"
	"testing"
)

func TestNewImage(t *testing.T) {
	image := NewImage(1024, 768)
	width, height := image.Dimensions()
	if width != 1024 || height != 768 {
		t.Fatalf("got %dx%d", width, height)
	}
	if len(image.Iterations()) != 1024*768 {
		t.Fatalf("got %d counters", len(image.Iterations()))
	}
	if image.index(0, 0) != 0 || image.index(0, 1) != 1024 || image.index(1023, 767) != 1024*768-1 {
		t.Fatal("unexpected index layout")
	}
}

func TestNewImageChecked(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {70000, 2}} {
		if _, err := NewImageChecked(size[0], size[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("%v: expected ErrInvalidDimensions, got %v", size, err)
		}
	}
	if _, err := NewImageChecked(1, 1); err != nil {
		t.Fatalf("1x1: %v", err)
	}
}

func TestPixelAccessBounds(t *testing.T) {
	image := NewImage(4, 3)
	if err := image.SetPixelIterations(Pixel{X: 3, Y: 2, Iterations: 7}); err != nil {
		t.Fatalf("SetPixelIterations: %v", err)
	}
	got, err := image.PixelIterations(3, 2)
	if err != nil || got != 7 {
		t.Fatalf("PixelIterations: %d, %v", got, err)
	}

	if err := image.SetPixelIterations(Pixel{X: 4, Y: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	// (4, 0) would alias (0, 1) if the index were not checked per axis
	if _, err := image.PixelIterations(4, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := image.PixelIterations(0, 3); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestIncrementPixelSaturates(t *testing.T) {
	image := NewImage(2, 2)
	image.iterations[image.index(1, 1)] = MaxDensity - 1

	if !image.IncrementPixel(1, 1) {
		t.Fatal("expected the last increment below the ceiling to be recorded")
	}
	if image.IncrementPixel(1, 1) {
		t.Fatal("expected increment past the ceiling to be dropped")
	}
	if got, _ := image.PixelIterations(1, 1); got != MaxDensity {
		t.Fatalf("got %d, want %d", got, MaxDensity)
	}
	if image.IncrementPixel(2, 0) {
		t.Fatal("expected out of bounds increment to be dropped")
	}
}

func TestMerge(t *testing.T) {
	image := NewImage(2, 1)
	image.iterations[0] = 10
	image.iterations[1] = MaxDensity - 5
	shard := NewImage(2, 1)
	shard.iterations[0] = 5
	shard.iterations[1] = MaxDensity

	if err := image.Merge(shard); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if image.iterations[0] != 15 || image.iterations[1] != MaxDensity {
		t.Fatalf("got %v", image.iterations)
	}
	if err := image.Merge(NewImage(1, 2)); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestPeakAndClone(t *testing.T) {
	image := NewImage(3, 1)
	image.iterations[1] = 9
	clone := image.Clone()
	clone.iterations[1] = 1
	if image.Peak() != 9 || clone.Peak() != 1 {
		t.Fatalf("peak %d, clone peak %d", image.Peak(), clone.Peak())
	}
}

func TestNewImageFrom(t *testing.T) {
	values := []uint16{1, 2, 3, 65000, 5, 6}
	image, err := NewImageFrom(3, 2, values)
	if err != nil {
		t.Fatalf("NewImageFrom: %s", err)
	}
	if it, _ := image.PixelIterations(0, 1); it != 65000 {
		t.Fatalf("got %d", it)
	}
	values[0] = 9
	if it, _ := image.PixelIterations(0, 0); it != 1 {
		t.Fatal("image should not share the caller's slice")
	}
	if _, err := NewImageFrom(4, 2, values); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("got %v", err)
	}
}

package mandelbrot

import (
	"FractalExplorer/fractal"
	"FractalExplorer/task"
	"testing"
)

func classicViewport(maxIterations uint16) fractal.Viewport {
	return fractal.Viewport{CenterX: -0.5, CenterY: 0, Width: 3, Height: 2, MaxIterations: maxIterations, SupportsZoom: true}
}

func TestEscapeTime(t *testing.T) {
	for _, periodicity := range []bool{false, true} {
		m := NewMandelbrot(Settings{PeriodicityChecking: periodicity})
		tests := []struct {
			c    fractal.Complex
			max  uint16
			want uint16
		}{
			{fractal.Complex{}, 40, 40},
			{fractal.Complex{}, 1, 1},
			{fractal.Complex{Re: -1}, 100, 100},
			{fractal.Complex{Re: -0.5, Im: 0.5}, 500, 500},
			{fractal.Complex{Re: 2, Im: 2}, 1, 0},
			{fractal.Complex{Re: 2, Im: 2}, 40, 0},
			// 0.5 -> 0.75 -> 1.0625 -> 1.62890625 -> 3.153... (|z|² > 4)
			{fractal.Complex{Re: 0.5}, 40, 4},
		}
		for _, tt := range tests {
			if got := m.EscapeTime(tt.c, tt.max); got != tt.want {
				t.Fatalf("periodicity %t: EscapeTime(%s, %d) = %d, want %d", periodicity, tt.c.String(), tt.max, got, tt.want)
			}
		}
	}
}

func TestOrbit(t *testing.T) {
	points, escaped := Orbit(fractal.Complex{Re: 2, Im: 2}, 10, nil)
	if !escaped {
		t.Fatal("expected (2, 2) to escape")
	}
	if len(points) != 2 || points[0] != (fractal.Complex{}) || points[1] != (fractal.Complex{Re: 2, Im: 2}) {
		t.Fatalf("got %v", points)
	}

	points, escaped = Orbit(fractal.Complex{}, 10, points)
	if escaped {
		t.Fatal("0 should not escape")
	}
	if len(points) != 11 {
		t.Fatalf("got %d points, want 11", len(points))
	}
}

func TestComputeClassicView(t *testing.T) {
	m := NewMandelbrot(Settings{Workers: 4})
	image := fractal.NewImage(300, 200)
	outcome, err := m.Compute(classicViewport(40), image, fractal.Ticket{})
	if err != nil || outcome != fractal.Completed {
		t.Fatalf("Compute: %s, %v", outcome, err)
	}

	// pixel (200, 100) maps to the origin of the plane
	if got, _ := image.PixelIterations(200, 100); got != 40 {
		t.Fatalf("origin: got %d, want 40", got)
	}
	// pixel (0, 0) maps to (-2, -1) which escapes right away
	if got, _ := image.PixelIterations(0, 0); got > 1 {
		t.Fatalf("corner: got %d", got)
	}
	for _, v := range image.Iterations() {
		if v > 40 {
			t.Fatalf("value %d exceeds max iterations", v)
		}
	}
}

func TestPartitionsAgree(t *testing.T) {
	viewport := classicViewport(64)
	reference := fractal.NewImage(61, 37)
	serial := NewMandelbrot(Settings{Workers: 1, Partition: task.Image})
	if _, err := serial.Compute(viewport, reference, fractal.Ticket{}); err != nil {
		t.Fatalf("Compute: %v", err)
	}

	for _, partition := range []task.Partition{task.Row, task.Column} {
		m := NewMandelbrot(Settings{Workers: 8, Partition: partition})
		image := fractal.NewImage(61, 37)
		if _, err := m.Compute(viewport, image, fractal.Ticket{}); err != nil {
			t.Fatalf("%s: %v", partition, err)
		}
		for i, v := range image.Iterations() {
			if v != reference.Iterations()[i] {
				t.Fatalf("%s: pixel %d is %d, want %d", partition, i, v, reference.Iterations()[i])
			}
		}
	}
}

func TestComputeOverwrites(t *testing.T) {
	m := NewMandelbrot(Settings{})
	image := fractal.NewImage(20, 10)
	for i := range image.Iterations() {
		image.Iterations()[i] = 999
	}
	if _, err := m.Compute(classicViewport(40), image, fractal.Ticket{}); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for _, v := range image.Iterations() {
		if v > 40 {
			t.Fatalf("stale value %d left in the image", v)
		}
	}
}

func TestComputeAbortsOnStaleTicket(t *testing.T) {
	var generation fractal.Generation
	ticket := generation.Ticket()
	generation.Advance()

	m := NewMandelbrot(Settings{})
	image := fractal.NewImage(50, 50)
	outcome, err := m.Compute(classicViewport(40), image, ticket)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if outcome != fractal.Aborted {
		t.Fatalf("got %s, want Aborted", outcome)
	}
	if image.Peak() != 0 {
		t.Fatal("aborted pass wrote into the image")
	}
}

func TestComputeRejectsDegenerateViewport(t *testing.T) {
	m := NewMandelbrot(Settings{})
	viewport := classicViewport(40)
	viewport.Width = 0
	if _, err := m.Compute(viewport, fractal.NewImage(2, 2), fractal.Ticket{}); err == nil {
		t.Fatal("expected an error")
	}
}

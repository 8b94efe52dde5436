package palette

import (
	"FractalExplorer/fractal"
	"image/color"
	"testing"
)

func TestBlackWhite(t *testing.T) {
	s := NewSettings(BlackWhite)
	tests := []struct {
		iterations uint16
		scale      uint16
		want       uint8
	}{
		{0, 150, 0},
		{150, 150, 255},
		{50, 100, 127},
		{500, 100, 255},
	}
	for _, tt := range tests {
		got := s.Color(tt.iterations, tt.scale)
		if got != (color.RGBA{R: tt.want, G: tt.want, B: tt.want, A: 255}) {
			t.Fatalf("Color(%d, %d) = %v, want gray %d", tt.iterations, tt.scale, got, tt.want)
		}
	}
}

func TestBlackWhiteIsMonotonic(t *testing.T) {
	s := NewSettings(BlackWhite)
	var previous uint8
	for i := uint16(0); i <= 300; i++ {
		c := s.Color(i, 300)
		if c.R < previous {
			t.Fatalf("gray went down at %d", i)
		}
		previous = c.R
	}
}

func TestHSV(t *testing.T) {
	s := NewSettings(HSV)
	if got := s.Color(150, 150); got != (color.RGBA{A: 255}) {
		t.Fatalf("inside the set should be black, got %v", got)
	}
	// hue 0 at half value is a dark red
	if got := s.Color(0, 150); got.R == 0 || got.G != 0 || got.B != 0 {
		t.Fatalf("got %v", got)
	}
	if a, b := s.Color(10, 150), s.Color(80, 150); a == b {
		t.Fatal("expected different hues")
	}
}

func TestGradient(t *testing.T) {
	s := Settings{
		Model:       Gradient,
		EscapeColor: color.RGBA{R: 1, A: 255},
		GeneratePaletteSettings: []GeneratePaletteSettings{
			{StartColor: color.RGBA{A: 255}, EndColor: color.RGBA{R: 200, G: 200, B: 200, A: 255}, NumberColors: 4},
		},
	}
	s.Verify()
	if len(s.Palette) != 4 {
		t.Fatalf("got %d colors", len(s.Palette))
	}
	if got := s.Color(40, 40); got != s.EscapeColor {
		t.Fatalf("got %v", got)
	}
	if got := s.Color(5, 40); got != s.Palette[1] {
		t.Fatalf("got %v, want %v", got, s.Palette[1])
	}
}

func TestVerifyDefaults(t *testing.T) {
	s := Settings{Model: Model(42)}
	s.Verify()
	if s.Model != HSV || s.EscapeColor != (color.RGBA{A: 255}) || len(s.Palette) != 1 {
		t.Fatalf("unexpected defaults %s", s.String())
	}
}

func TestRender(t *testing.T) {
	image := fractal.NewImage(2, 1)
	image.SetPixelIterations(fractal.Pixel{X: 1, Y: 0, Iterations: 10})
	s := NewSettings(BlackWhite)
	rgba := s.Render(image, 10)
	if rgba.Bounds().Dx() != 2 || rgba.Bounds().Dy() != 1 {
		t.Fatalf("bounds %v", rgba.Bounds())
	}
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Fatalf("got %v", got)
	}
	if got := rgba.RGBAAt(1, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("got %v", got)
	}
}

func TestDownscale(t *testing.T) {
	s := NewSettings(BlackWhite)
	rgba := s.Render(fractal.NewImage(8, 6), 10)
	if got := Downscale(rgba, 8, 6); got != rgba {
		t.Fatal("same size should not be resampled")
	}
	small := Downscale(rgba, 4, 3)
	if small.Bounds().Dx() != 4 || small.Bounds().Dy() != 3 {
		t.Fatalf("bounds %v", small.Bounds())
	}
	r, g, b, _ := small.At(1, 1).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("a black image should stay black, got %d %d %d", r, g, b)
	}
}

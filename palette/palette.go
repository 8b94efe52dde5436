package palette

import (
	"FractalExplorer/fractal"
	"fmt"
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"image"
	"image/color"
)

const (
	BlackWhite Model = iota
	HSV
	Gradient
)

// Model is the closed set of ways an iteration count can be turned into a color
type Model int

func (m Model) String() string {
	return []string{
		"BlackWhite", "HSV", "Gradient",
	}[m]
}

type Settings struct {
	logger bslogger.Logger

	EscapeColor             color.RGBA
	GeneratePaletteSettings []GeneratePaletteSettings
	Model                   Model
	Palette                 []color.RGBA
}

func NewSettings(model Model) Settings {
	s := Settings{Model: model}
	s.Verify()
	return s
}

func (s *Settings) String() string {
	output := "{PaletteSettings "
	output += fmt.Sprintf("Model: %s ", s.Model)
	output += fmt.Sprintf("EscapeColor: %v ", s.EscapeColor)
	output += fmt.Sprintf("Colors: %d}", len(s.Palette))
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("PaletteSettings", bslogger.Normal, nil)

	if s.Model < BlackWhite || s.Model > Gradient {
		s.logger.Infof("Unknown color model %d, using %s", s.Model, HSV)
		s.Model = HSV
	}
	if s.EscapeColor == (color.RGBA{}) {
		s.EscapeColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}
	if len(s.GeneratePaletteSettings) > 0 {
		s.Palette = make([]color.RGBA, 0)
		for i := 0; i < len(s.GeneratePaletteSettings); i++ {
			s.Palette = append(s.Palette, s.GeneratePaletteSettings[i].GeneratePalette()...)
		}
	}
	if len(s.Palette) == 0 {
		s.Palette = []color.RGBA{{R: 255, G: 255, B: 255, A: 255}}
	}
	return nil
}

// Color maps an iteration count to a color. scale is the count that means "inside the set" for escape times, or the
// peak density for accumulated images; counts above it are clamped. Brighter or later hues mean larger counts.
func (s *Settings) Color(iterations uint16, scale uint16) color.RGBA {
	if scale == 0 {
		scale = 1
	}
	if iterations > scale {
		iterations = scale
	}

	switch s.Model {
	case BlackWhite:
		return blackWhite(iterations, scale)
	case HSV:
		return hsv(iterations, scale)
	case Gradient:
		return s.gradient(iterations, scale)
	default:
		return s.EscapeColor
	}
}

func blackWhite(iterations uint16, scale uint16) color.RGBA {
	gray := uint8(float64(iterations) * 255 / float64(scale))
	return color.RGBA{R: gray, G: gray, B: gray, A: 255}
}

func hsv(iterations uint16, scale uint16) color.RGBA {
	if iterations >= scale {
		return color.RGBA{A: 255}
	}
	hue := float64(iterations) * 360 / float64(scale)
	r, g, b := colorful.Hsv(hue, 1, 0.5).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (s *Settings) gradient(iterations uint16, scale uint16) color.RGBA {
	if iterations >= scale {
		return s.EscapeColor
	}
	return s.Palette[int(iterations)%len(s.Palette)]
}

// Render colors every pixel of the image
func (s *Settings) Render(iterations *fractal.Image, scale uint16) *image.RGBA {
	width, height := iterations.Dimensions()
	rgba := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	for i, v := range iterations.Iterations() {
		c := s.Color(v, scale)
		rgba.Pix[i*4+0] = c.R
		rgba.Pix[i*4+1] = c.G
		rgba.Pix[i*4+2] = c.B
		rgba.Pix[i*4+3] = c.A
	}
	return rgba
}

// Downscale resamples a supersampled render to width x height
func Downscale(rgba *image.RGBA, width int, height int) image.Image {
	if rgba.Bounds().Dx() == width && rgba.Bounds().Dy() == height {
		return rgba
	}
	return resize.Resize(uint(width), uint(height), rgba, resize.Lanczos3)
}

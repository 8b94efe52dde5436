package session

import (
	"FractalExplorer/buddhabrot"
	"FractalExplorer/fractal"
	"FractalExplorer/mandelbrot"
	"FractalExplorer/misc"
	"FractalExplorer/palette"
	"encoding/json"
	"fmt"
	"github.com/BrugadaSyndrome/bslogger"
)

const (
	Mandelbrot Fractal = iota
	Buddhabrot
)

// Fractal selects which algorithm fills the image of a session
type Fractal int

func (f Fractal) String() string {
	return []string{
		"Mandelbrot", "Buddhabrot",
	}[f]
}

const (
	DefaultWidth         = 800
	DefaultHeight        = 600
	DefaultMaxIterations = 40
)

type Settings struct {
	logger bslogger.Logger

	BuddhabrotSettings buddhabrot.Settings
	ColorSettings      palette.Settings
	Fractal            Fractal
	Height             int
	MandelbrotSettings mandelbrot.Settings
	Viewport           fractal.Viewport
	Width              int
}

// NewSettings loads settings from a json file and fills in anything left out
func NewSettings(settingsFile string) (Settings, error) {
	s := Settings{
		ColorSettings: palette.Settings{Model: palette.HSV},
	}
	fileBytes, err := misc.ReadFile(settingsFile)
	if err != nil {
		return s, err
	}
	err = json.Unmarshal(fileBytes, &s)
	if err != nil {
		return s, fmt.Errorf("unable to parse %s - %w", settingsFile, err)
	}
	err = s.Verify()
	if err != nil {
		return s, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func DefaultSettings() Settings {
	s := Settings{
		ColorSettings: palette.Settings{Model: palette.HSV},
		MandelbrotSettings: mandelbrot.Settings{
			PeriodicityChecking: true,
		},
	}
	s.Verify()
	return s
}

// ClassicViewport covers [-2,1]x[-1,1]
func ClassicViewport() fractal.Viewport {
	return fractal.Viewport{
		Height:        2,
		MaxIterations: DefaultMaxIterations,
		CenterX:       -0.5,
		CenterY:       0,
		Width:         3,
	}
}

func (s *Settings) String() string {
	output := "{SessionSettings "
	output += fmt.Sprintf("Fractal: %s ", s.Fractal)
	output += fmt.Sprintf("Size: %dx%d ", s.Width, s.Height)
	output += fmt.Sprintf("Viewport: %s ", s.Viewport.String())
	output += fmt.Sprintf("Colors: %s ", s.ColorSettings.String())
	output += fmt.Sprintf("Mandelbrot: %s ", s.MandelbrotSettings.String())
	output += fmt.Sprintf("Buddhabrot: %s}", s.BuddhabrotSettings.String())
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("SessionSettings", bslogger.Normal, nil)

	if s.Fractal < Mandelbrot || s.Fractal > Buddhabrot {
		s.logger.Infof("Unknown fractal %d, using %s", s.Fractal, Mandelbrot)
		s.Fractal = Mandelbrot
	}
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	if s.Width > 65535 || s.Height > 65535 {
		return fmt.Errorf("%dx%d: %w", s.Width, s.Height, fractal.ErrInvalidDimensions)
	}

	if s.Viewport.Width == 0 && s.Viewport.Height == 0 {
		maxIterations := s.Viewport.MaxIterations
		s.Viewport = ClassicViewport()
		if maxIterations > 0 {
			s.Viewport.MaxIterations = maxIterations
		}
	}
	if s.Viewport.MaxIterations == 0 {
		s.Viewport.MaxIterations = DefaultMaxIterations
	}
	if s.Viewport.MaxIterations < fractal.MinIterations {
		s.logger.Infof("Raising max iterations from %d to %d", s.Viewport.MaxIterations, fractal.MinIterations)
		s.Viewport.MaxIterations = fractal.MinIterations
	}
	s.Viewport.SupportsZoom = s.Fractal == Mandelbrot
	if err := s.Viewport.Verify(); err != nil {
		return err
	}

	misc.CheckError(s.MandelbrotSettings.Verify(), s.logger, misc.Warning)
	misc.CheckError(s.BuddhabrotSettings.Verify(), s.logger, misc.Warning)
	misc.CheckError(s.ColorSettings.Verify(), s.logger, misc.Warning)
	return nil
}

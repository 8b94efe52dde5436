package session

import (
	"FractalExplorer/buddhabrot"
	"FractalExplorer/fractal"
	"FractalExplorer/mandelbrot"
	"errors"
	"fmt"
	"github.com/BrugadaSyndrome/bslogger"
	"image"
	"sync"
	"time"
)

var ErrZoomUnsupported = errors.New("zoom is not supported by this fractal")

// Session owns the viewport, the iteration image and the generation counter of one explorer, together with the two
// algorithms that can fill the image. All methods are safe for concurrent use: mutators take effect immediately and
// invalidate any compute pass that is still running.
type Session struct {
	beforePublish func()
	buddhabrot    *buddhabrot.Buddhabrot
	generation    fractal.Generation
	image         *fractal.Image
	logger        bslogger.Logger
	mandelbrot    mandelbrot.Mandelbrot
	mutex         sync.Mutex
	settings      Settings
	viewport      fractal.Viewport
}

// Frame is a copy of the image at one point in time
type Frame struct {
	Fractal       Fractal
	Generation    uint64
	Height        uint16
	Iterations    []uint16
	MaxIterations uint16
	Width         uint16
}

func NewSession(settings Settings) (*Session, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}
	buffer, err := fractal.NewImageChecked(settings.Width, settings.Height)
	if err != nil {
		return nil, err
	}

	s := &Session{
		buddhabrot: buddhabrot.NewBuddhabrot(settings.BuddhabrotSettings),
		image:      buffer,
		logger:     bslogger.NewLogger("Session", bslogger.Normal, nil),
		mandelbrot: mandelbrot.NewMandelbrot(settings.MandelbrotSettings),
		settings:   settings,
		viewport:   settings.Viewport,
	}
	s.logger.Infof("Created %s session %dx%d %s", settings.Fractal, settings.Width, settings.Height, s.viewport.String())
	return s, nil
}

// Compute runs one pass of the selected algorithm and publishes the result if nothing changed in the meantime.
// Mandelbrot passes overwrite the image; Buddhabrot passes add density to what is already there.
func (s *Session) Compute() (fractal.Outcome, error) {
	s.mutex.Lock()
	viewport := s.viewport
	ticket := s.generation.Ticket()
	current := s.image
	var scratch *fractal.Image
	switch s.settings.Fractal {
	case Buddhabrot:
		scratch = current.Clone()
	default:
		width, height := current.Dimensions()
		scratch = fractal.NewImage(width, height)
	}
	s.mutex.Unlock()

	startTime := time.Now()
	var outcome fractal.Outcome
	var err error
	switch s.settings.Fractal {
	case Buddhabrot:
		outcome, err = s.buddhabrot.Compute(viewport, scratch, ticket)
	default:
		outcome, err = s.mandelbrot.Compute(viewport, scratch, ticket)
	}
	if err != nil {
		return outcome, fmt.Errorf("generation %d: %w", ticket.Generation(), err)
	}
	if s.beforePublish != nil {
		s.beforePublish()
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if outcome == fractal.Aborted || ticket.Stale() || s.image != current {
		s.logger.Warningf("Dropped %s pass for generation %d after %s", s.settings.Fractal, ticket.Generation(), time.Since(startTime))
		return fractal.Aborted, nil
	}
	s.image = scratch
	s.logger.Infof("Computed %s pass for generation %d in %s", s.settings.Fractal, ticket.Generation(), time.Since(startTime))
	return fractal.Completed, nil
}

// Resize replaces the image with a zeroed one of the new dimensions
func (s *Session) Resize(width int, height int) error {
	buffer, err := fractal.NewImageChecked(width, height)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.image = buffer
	generation := s.generation.Advance()
	s.logger.Debugf("Resized to %dx%d, generation %d", width, height, generation)
	return nil
}

func (s *Session) PixelIterations(x uint16, y uint16) (uint16, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.image.PixelIterations(x, y)
}

// Recenter zooms in by two around the pixel (x, y) of the current image
func (s *Session) Recenter(x float64, y float64) error {
	return s.mutate(func(viewport *fractal.Viewport, width uint16, height uint16) error {
		return viewport.Recenter(x, y, float64(width), float64(height))
	})
}

func (s *Session) ZoomIn() error {
	return s.mutate(func(viewport *fractal.Viewport, width uint16, height uint16) error {
		if !viewport.SupportsZoom {
			return ErrZoomUnsupported
		}
		return viewport.ZoomIn()
	})
}

func (s *Session) ZoomOut() error {
	return s.mutate(func(viewport *fractal.Viewport, width uint16, height uint16) error {
		if !viewport.SupportsZoom {
			return ErrZoomUnsupported
		}
		return viewport.ZoomOut()
	})
}

func (s *Session) IncreaseIterations() error {
	return s.mutate(func(viewport *fractal.Viewport, width uint16, height uint16) error {
		return viewport.IncreaseIterations()
	})
}

func (s *Session) DecreaseIterations() error {
	return s.mutate(func(viewport *fractal.Viewport, width uint16, height uint16) error {
		viewport.DecreaseIterations()
		return nil
	})
}

// mutate applies change to a copy of the viewport and only commits it when change succeeds
func (s *Session) mutate(change func(viewport *fractal.Viewport, width uint16, height uint16) error) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	viewport := s.viewport
	width, height := s.image.Dimensions()
	if err := change(&viewport, width, height); err != nil {
		return err
	}
	s.viewport = viewport
	if s.settings.Fractal == Buddhabrot {
		// density gathered under another mapping does not line up with the new one
		s.image = fractal.NewImage(width, height)
	}
	generation := s.generation.Advance()
	s.logger.Debugf("Generation %d: %s", generation, s.viewport.String())
	return nil
}

func (s *Session) SupportsZoom() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.viewport.SupportsZoom
}

func (s *Session) Viewport() fractal.Viewport {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.viewport
}

func (s *Session) Fractal() Fractal {
	return s.settings.Fractal
}

func (s *Session) Generation() uint64 {
	return s.generation.Current()
}

func (s *Session) Frame() Frame {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	width, height := s.image.Dimensions()
	return Frame{
		Fractal:       s.settings.Fractal,
		Generation:    s.generation.Current(),
		Height:        height,
		Iterations:    append([]uint16(nil), s.image.Iterations()...),
		MaxIterations: s.viewport.MaxIterations,
		Width:         width,
	}
}

// Image rebuilds the iteration image the frame was taken from
func (f Frame) Image() (*fractal.Image, error) {
	return fractal.NewImageFrom(int(f.Width), int(f.Height), f.Iterations)
}

// Scale is the count rendered with the brightest color: the iteration budget for escape times, the peak for densities
func (f Frame) Scale() uint16 {
	if f.Fractal != Buddhabrot {
		return f.MaxIterations
	}
	var peak uint16
	for _, v := range f.Iterations {
		peak = max(peak, v)
	}
	return peak
}

// Render colors the current image with the session's color settings
func (s *Session) Render() *image.RGBA {
	s.mutex.Lock()
	snapshot := s.image
	scale := s.viewport.MaxIterations
	s.mutex.Unlock()

	if s.settings.Fractal == Buddhabrot {
		scale = snapshot.Peak()
	}
	return s.settings.ColorSettings.Render(snapshot, scale)
}

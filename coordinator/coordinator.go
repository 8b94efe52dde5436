package coordinator

import (
	"FractalExplorer/fractal"
	"FractalExplorer/misc"
	"FractalExplorer/session"
	"FractalExplorer/task"
	"github.com/BrugadaSyndrome/bslogger"
	"sync/atomic"
)

// Size is the argument of Coordinator.Resize
type Size struct {
	Height int
	Width  int
}

// Point is a pixel position of the current image, the argument of Coordinator.Recenter
type Point struct {
	X float64
	Y float64
}

// Coordinator exposes a session to remote clients. Every exported method follows the net/rpc calling convention.
type Coordinator struct {
	calls   atomic.Uint64
	logger  bslogger.Logger
	session *session.Session
}

func NewCoordinator(s *session.Session) *Coordinator {
	return &Coordinator{
		logger:  bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		session: s,
	}
}

func (c *Coordinator) RollCall(nothing misc.Nothing, present *bool) error {
	*present = true
	return nil
}

// Compute runs one pass on the coordinator. A pass made stale by another client reports Aborted.
func (c *Coordinator) Compute(nothing misc.Nothing, outcome *fractal.Outcome) error {
	c.calls.Add(1)
	result, err := c.session.Compute()
	if misc.CheckError(err, c.logger, misc.Warning) {
		return err
	}
	*outcome = result
	return nil
}

func (c *Coordinator) Resize(size Size, generation *uint64) error {
	c.calls.Add(1)
	if err := c.session.Resize(size.Width, size.Height); err != nil {
		return err
	}
	*generation = c.session.Generation()
	return nil
}

func (c *Coordinator) GetPixelIterations(coordinate task.Coordinate, iterations *uint16) error {
	c.calls.Add(1)
	value, err := c.session.PixelIterations(coordinate.Column, coordinate.Row)
	if err != nil {
		return err
	}
	*iterations = value
	return nil
}

func (c *Coordinator) Recenter(point Point, viewport *fractal.Viewport) error {
	return c.viewportCall(func() error { return c.session.Recenter(point.X, point.Y) }, viewport)
}

func (c *Coordinator) ZoomIn(nothing misc.Nothing, viewport *fractal.Viewport) error {
	return c.viewportCall(c.session.ZoomIn, viewport)
}

func (c *Coordinator) ZoomOut(nothing misc.Nothing, viewport *fractal.Viewport) error {
	return c.viewportCall(c.session.ZoomOut, viewport)
}

func (c *Coordinator) IncreaseIterations(nothing misc.Nothing, viewport *fractal.Viewport) error {
	return c.viewportCall(c.session.IncreaseIterations, viewport)
}

func (c *Coordinator) DecreaseIterations(nothing misc.Nothing, viewport *fractal.Viewport) error {
	return c.viewportCall(c.session.DecreaseIterations, viewport)
}

func (c *Coordinator) GetViewport(nothing misc.Nothing, viewport *fractal.Viewport) error {
	*viewport = c.session.Viewport()
	return nil
}

func (c *Coordinator) SupportsZoom(nothing misc.Nothing, supported *bool) error {
	*supported = c.session.SupportsZoom()
	return nil
}

func (c *Coordinator) GetFrame(nothing misc.Nothing, frame *session.Frame) error {
	c.calls.Add(1)
	*frame = c.session.Frame()
	return nil
}

// viewportCall runs a viewport mutation and replies with the viewport it left behind
func (c *Coordinator) viewportCall(mutation func() error, viewport *fractal.Viewport) error {
	c.calls.Add(1)
	if err := mutation(); err != nil {
		c.logger.Infof("Refused viewport change: %s", err)
		return err
	}
	*viewport = c.session.Viewport()
	return nil
}

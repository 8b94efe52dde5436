package client

import (
	"FractalExplorer/fractal"
	"FractalExplorer/misc"
	"FractalExplorer/palette"
	"FractalExplorer/session"
	"github.com/BrugadaSyndrome/bslogger"
	"image"
	"sync"
)

// Remote drives a session hosted by a coordinator with the same methods a local session has, so a viewer can use
// either. Frames are colored on this side.
type Remote struct {
	client   *Client
	colors   palette.Settings
	fractal  session.Fractal
	logger   bslogger.Logger
	mutex    sync.Mutex
	viewport fractal.Viewport
}

// NewRemote attaches to the coordinator's session and resizes it to the viewer's window
func NewRemote(c *Client, colors palette.Settings, width int, height int) (*Remote, error) {
	colors.Verify()
	if _, err := c.Resize(width, height); err != nil {
		return nil, err
	}
	frame, err := c.Frame()
	if err != nil {
		return nil, err
	}
	viewport, err := c.Viewport()
	if err != nil {
		return nil, err
	}
	return &Remote{
		client:   c,
		colors:   colors,
		fractal:  frame.Fractal,
		logger:   bslogger.NewLogger("Remote "+c.Name(), bslogger.Normal, nil),
		viewport: viewport,
	}, nil
}

func (r *Remote) Compute() (fractal.Outcome, error) {
	return r.client.Compute()
}

func (r *Remote) Fractal() session.Fractal {
	return r.fractal
}

func (r *Remote) SupportsZoom() bool {
	return r.Viewport().SupportsZoom
}

func (r *Remote) Viewport() fractal.Viewport {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.viewport
}

func (r *Remote) Resize(width int, height int) error {
	_, err := r.client.Resize(width, height)
	return err
}

func (r *Remote) Recenter(x float64, y float64) error {
	return r.update(r.client.Recenter(x, y))
}

func (r *Remote) ZoomIn() error {
	return r.update(r.client.ZoomIn())
}

func (r *Remote) ZoomOut() error {
	return r.update(r.client.ZoomOut())
}

func (r *Remote) IncreaseIterations() error {
	return r.update(r.client.IncreaseIterations())
}

func (r *Remote) DecreaseIterations() error {
	return r.update(r.client.DecreaseIterations())
}

func (r *Remote) update(viewport fractal.Viewport, err error) error {
	if err != nil {
		return err
	}
	r.mutex.Lock()
	r.viewport = viewport
	r.mutex.Unlock()
	return nil
}

// Render fetches the current frame and colors it, nil when the coordinator could not be reached
func (r *Remote) Render() *image.RGBA {
	frame, err := r.client.Frame()
	if misc.CheckError(err, r.logger, misc.Error) {
		return nil
	}
	iterations, err := frame.Image()
	if misc.CheckError(err, r.logger, misc.Error) {
		return nil
	}
	return r.colors.Render(iterations, frame.Scale())
}

package controls

import (
	"FractalExplorer/fractal"
	"FractalExplorer/session"
	"fmt"
	"image"
)

// Explorer is what a window drives; *session.Session and *client.Remote implement it
type Explorer interface {
	Compute() (fractal.Outcome, error)
	DecreaseIterations() error
	Fractal() session.Fractal
	IncreaseIterations() error
	Recenter(x float64, y float64) error
	Render() *image.RGBA
	Resize(width int, height int) error
	SupportsZoom() bool
	Viewport() fractal.Viewport
	ZoomIn() error
	ZoomOut() error
}

// Action is a viewport change bound to a key
type Action int

const (
	DecreaseIterations Action = iota
	IncreaseIterations
	ZoomIn
	ZoomOut
)

var actions = []Action{DecreaseIterations, IncreaseIterations, ZoomIn, ZoomOut}

func (a Action) String() string {
	return []string{
		"DecreaseIterations", "IncreaseIterations", "ZoomIn", "ZoomOut",
	}[a]
}

func (a Action) zooms() bool {
	return a == ZoomIn || a == ZoomOut
}

// Available lists the actions explorer accepts. Zoom is left out for fractals that cannot zoom.
func Available(explorer Explorer) []Action {
	supportsZoom := explorer.SupportsZoom()
	available := make([]Action, 0, len(actions))
	for _, a := range actions {
		if a.zooms() && !supportsZoom {
			continue
		}
		available = append(available, a)
	}
	return available
}

func Apply(explorer Explorer, action Action) error {
	if action.zooms() && !explorer.SupportsZoom() {
		return session.ErrZoomUnsupported
	}
	switch action {
	case DecreaseIterations:
		return explorer.DecreaseIterations()
	case IncreaseIterations:
		return explorer.IncreaseIterations()
	case ZoomIn:
		return explorer.ZoomIn()
	case ZoomOut:
		return explorer.ZoomOut()
	default:
		return fmt.Errorf("unknown action %d", action)
	}
}

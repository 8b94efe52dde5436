package viewer

import (
	"FractalExplorer/controls"
	"FractalExplorer/fractal"
	"FractalExplorer/misc"
	"FractalExplorer/session"
	"fmt"
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"image"
	"sync/atomic"
)

var keys = map[controls.Action]ebiten.Key{
	controls.DecreaseIterations: ebiten.KeyW,
	controls.IncreaseIterations: ebiten.KeyX,
	controls.ZoomIn:             ebiten.KeyV,
	controls.ZoomOut:            ebiten.KeyC,
}

// Viewer is an ebiten.Game showing an Explorer. Compute passes run on their own goroutine so the window keeps
// responding; a pass made stale by input is simply started again.
type Viewer struct {
	actions   []controls.Action
	computing atomic.Bool
	dirty     atomic.Bool
	explorer  controls.Explorer
	frame     *ebiten.Image
	height    int
	logger    bslogger.Logger
	rendered  atomic.Pointer[image.RGBA]
	uploaded  *image.RGBA
	width     int
}

func NewViewer(explorer controls.Explorer, width int, height int) *Viewer {
	v := &Viewer{
		actions:  controls.Available(explorer),
		explorer: explorer,
		height:   height,
		logger:   bslogger.NewLogger("Viewer", bslogger.Normal, nil),
		width:    width,
	}
	v.dirty.Store(true)
	return v
}

// Run opens the window and blocks until it is closed
func Run(explorer controls.Explorer, width int, height int) error {
	v := NewViewer(explorer, width, height)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(v.title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}

func (v *Viewer) title() string {
	viewport := v.explorer.Viewport()
	return fmt.Sprintf("%s | max iterations %d | center %g%+gi | w %g h %g", v.explorer.Fractal(), viewport.MaxIterations, viewport.CenterX, viewport.CenterY, viewport.Width, viewport.Height)
}

func (v *Viewer) apply(name string, err error) {
	if misc.CheckError(err, v.logger, misc.Info) {
		return
	}
	v.logger.Debugf("Applied %s", name)
	ebiten.SetWindowTitle(v.title())
	v.dirty.Store(true)
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, action := range v.actions {
		if inpututil.IsKeyJustPressed(keys[action]) {
			v.apply(action.String(), controls.Apply(v.explorer, action))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		v.apply("Recenter", v.explorer.Recenter(float64(x), float64(y)))
	}

	// density keeps building up while the view stays put
	if v.explorer.Fractal() == session.Buddhabrot {
		v.dirty.Store(true)
	}
	if v.dirty.Load() && v.computing.CompareAndSwap(false, true) {
		v.dirty.Store(false)
		go v.compute()
	}
	return nil
}

func (v *Viewer) compute() {
	defer v.computing.Store(false)

	outcome, err := v.explorer.Compute()
	if misc.CheckError(err, v.logger, misc.Error) {
		return
	}
	if outcome == fractal.Aborted {
		v.dirty.Store(true)
		return
	}
	if rgba := v.explorer.Render(); rgba != nil {
		v.rendered.Store(rgba)
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	rgba := v.rendered.Load()
	if rgba == nil {
		ebitenutil.DebugPrint(screen, "Computing...")
		return
	}
	if rgba != v.uploaded {
		bounds := rgba.Bounds()
		if v.frame == nil || v.frame.Bounds() != bounds {
			if v.frame != nil {
				v.frame.Deallocate()
			}
			v.frame = ebiten.NewImage(bounds.Dx(), bounds.Dy())
		}
		v.frame.WritePixels(rgba.Pix)
		v.uploaded = rgba
	}
	screen.DrawImage(v.frame, nil)
	if v.computing.Load() && v.explorer.Fractal() == session.Mandelbrot {
		ebitenutil.DebugPrint(screen, "Computing...")
	}
}

func (v *Viewer) Layout(outsideWidth int, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		if !misc.CheckError(v.explorer.Resize(outsideWidth, outsideHeight), v.logger, misc.Warning) {
			v.logger.Debugf("Resized window to %dx%d", outsideWidth, outsideHeight)
			v.width, v.height = outsideWidth, outsideHeight
			v.dirty.Store(true)
		}
	}
	return v.width, v.height
}

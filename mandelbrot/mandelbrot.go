package mandelbrot

import (
	"FractalExplorer/fractal"
	"FractalExplorer/task"
	"errors"
	"fmt"
	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/sync/errgroup"
	"time"
)

// Boundary is the squared modulus past which an orbit is considered escaped
const Boundary = 4.0

// periodicity checks compare against a snapshot of z refreshed every this many iterations
const periodicityInterval = 20

// pixels processed between two generation checks
const checkpointInterval = 1024

var errStale = errors.New("generation went stale")

type Mandelbrot struct {
	logger   bslogger.Logger
	settings Settings
}

func NewMandelbrot(settings Settings) Mandelbrot {
	settings.Verify()
	return Mandelbrot{
		logger:   bslogger.NewLogger("Mandelbrot", bslogger.Normal, nil),
		settings: settings,
	}
}

// EscapeTime returns the 0 based iteration at which |z|² first exceeds Boundary, or maxIterations if it never does
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Unoptimized_na%C3%AFve_escape_time_algorithm
func (m *Mandelbrot) EscapeTime(c fractal.Complex, maxIterations uint16) uint16 {
	var z, old fractal.Complex
	period := 0
	for i := uint16(0); i < maxIterations; i++ {
		z = z.Multiply(z).Add(c)
		if z.NormSquared() > Boundary {
			return i
		}

		// periodicity checking can speed up detection when the maxIterations value is very large
		// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Periodicity_checking
		if m.settings.PeriodicityChecking {
			if z == old {
				return maxIterations
			}
			period++
			if period > periodicityInterval {
				period = 0
				old = z
			}
		}
	}
	return maxIterations
}

// Orbit records z0..zn of the iteration for c into points (reusing its storage) and reports whether the orbit
// escaped within maxIterations steps. The escaping point is the last one recorded.
func Orbit(c fractal.Complex, maxIterations uint16, points []fractal.Complex) ([]fractal.Complex, bool) {
	z := fractal.Complex{}
	points = append(points[:0], z)
	for i := uint16(0); i < maxIterations; i++ {
		z = z.Multiply(z).Add(c)
		points = append(points, z)
		if z.NormSquared() > Boundary {
			return points, true
		}
	}
	return points, false
}

// Compute fills every pixel of image with its escape time. Tasks are processed in parallel into private result
// slices and merged into the image once all of them are done. If the ticket goes stale the image is left untouched.
func (m *Mandelbrot) Compute(viewport fractal.Viewport, image *fractal.Image, ticket fractal.Ticket) (fractal.Outcome, error) {
	if err := viewport.Verify(); err != nil {
		return fractal.Aborted, err
	}

	startTime := time.Now()
	width, height := image.Dimensions()
	mapper := fractal.NewMapper(viewport, width, height)

	tasks, err := task.Split(m.settings.Partition, width, height, ticket.Generation())
	if err != nil {
		return fractal.Aborted, err
	}

	var group errgroup.Group
	group.SetLimit(m.settings.Workers)
	for i := range tasks {
		todo := &tasks[i]
		group.Go(func() error {
			return m.process(todo, mapper, viewport.MaxIterations, ticket)
		})
	}
	err = group.Wait()
	if errors.Is(err, errStale) || ticket.Stale() {
		m.logger.Warningf("Abandoned generation %d after %s", ticket.Generation(), time.Since(startTime))
		return fractal.Aborted, nil
	}
	if err != nil {
		return fractal.Aborted, err
	}

	// Single threaded merge of the finished tasks
	for _, done := range tasks {
		for _, pixel := range done.Results {
			if err := image.SetPixelIterations(pixel); err != nil {
				return fractal.Aborted, fmt.Errorf("merging task %d: %w", done.ID, err)
			}
		}
	}

	m.logger.Debugf("Computed %d tasks (%s) for %dx%d pixels in %s", len(tasks), m.settings.Partition, width, height, time.Since(startTime))
	return fractal.Completed, nil
}

func (m *Mandelbrot) process(todo *task.Task, mapper fractal.Mapper, maxIterations uint16, ticket fractal.Ticket) error {
	for {
		if todo.CurrentTask%checkpointInterval == 0 && ticket.Stale() {
			return errStale
		}
		coordinate, err := todo.GetNextTask()
		if err != nil {
			return nil
		}
		c := mapper.ToPlane(float64(coordinate.Column), float64(coordinate.Row))
		todo.AddResult(fractal.Pixel{
			X:          coordinate.Column,
			Y:          coordinate.Row,
			Iterations: m.EscapeTime(c, maxIterations),
		})
	}
}

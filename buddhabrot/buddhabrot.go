package buddhabrot

import (
	"FractalExplorer/fractal"
	"FractalExplorer/mandelbrot"
	"errors"
	"fmt"
	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/sync/errgroup"
	"math/rand"
	"sync/atomic"
	"time"
)

// samples drawn between two generation checks
const checkpointInterval = 1000

var errStale = errors.New("generation went stale")

// Buddhabrot accumulates the trajectories of escaping orbits into a density image.
// https://en.wikipedia.org/wiki/Buddhabrot
type Buddhabrot struct {
	logger   bslogger.Logger
	// passes started so far, mixed into the worker seeds so that a fixed Seed still samples new points every pass
	passes   atomic.Int64
	settings Settings
}

func NewBuddhabrot(settings Settings) *Buddhabrot {
	settings.Verify()
	return &Buddhabrot{
		logger:   bslogger.NewLogger("Buddhabrot", bslogger.Normal, nil),
		settings: settings,
	}
}

// Compute adds the density of Samples random orbits on top of what image already holds.
// Each worker accumulates into its own shard; the shards are merged once every worker is done so that no counter is
// ever incremented concurrently. If the ticket goes stale the shards are discarded and the image is left untouched.
func (b *Buddhabrot) Compute(viewport fractal.Viewport, image *fractal.Image, ticket fractal.Ticket) (fractal.Outcome, error) {
	if err := viewport.Verify(); err != nil {
		return fractal.Aborted, err
	}

	startTime := time.Now()
	width, height := image.Dimensions()
	if width == 0 || height == 0 {
		return fractal.Completed, nil
	}
	mapper := fractal.NewMapper(viewport, width, height)

	workers := b.settings.Workers
	seed := b.settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seed += (b.passes.Add(1) - 1) * int64(workers)

	shards := make([]*fractal.Image, workers)
	var group errgroup.Group
	for w := 0; w < workers; w++ {
		samples := b.settings.Samples / workers
		if w < b.settings.Samples%workers {
			samples++
		}
		worker := w
		group.Go(func() error {
			shard, err := b.accumulate(mapper, viewport.MaxIterations, width, height, samples, seed+int64(worker), ticket)
			if err != nil {
				return err
			}
			shards[worker] = shard
			return nil
		})
	}

	err := group.Wait()
	if errors.Is(err, errStale) || ticket.Stale() {
		b.logger.Warningf("Abandoned generation %d after %s", ticket.Generation(), time.Since(startTime))
		return fractal.Aborted, nil
	}
	if err != nil {
		return fractal.Aborted, err
	}

	for w, shard := range shards {
		if err := image.Merge(shard); err != nil {
			return fractal.Aborted, fmt.Errorf("merging shard %d: %w", w, err)
		}
	}

	b.logger.Debugf("Accumulated %d samples over %d workers for %dx%d pixels in %s", b.settings.Samples, workers, width, height, time.Since(startTime))
	return fractal.Completed, nil
}

func (b *Buddhabrot) accumulate(mapper fractal.Mapper, maxIterations uint16, width uint16, height uint16, samples int, seed int64, ticket fractal.Ticket) (*fractal.Image, error) {
	random := rand.New(rand.NewSource(seed))
	shard := fractal.NewImage(width, height)
	points := make([]fractal.Complex, 0, int(maxIterations)+1)

	for s := 0; s < samples; s++ {
		if s%checkpointInterval == 0 && ticket.Stale() {
			return nil, errStale
		}

		x, y := random.Intn(int(width)), random.Intn(int(height))
		c := mapper.ToPlane(float64(x), float64(y))

		var escaped bool
		points, escaped = mandelbrot.Orbit(c, maxIterations, points)
		if !escaped {
			continue
		}

		for _, z := range points {
			// trajectories leaving the visible window are dropped
			if px, py, ok := mapper.ToPixel(z); ok {
				shard.IncrementPixel(px, py)
			}
		}
	}
	return shard, nil
}

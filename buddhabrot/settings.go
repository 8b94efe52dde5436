package buddhabrot

import (
	"fmt"
	"github.com/BrugadaSyndrome/bslogger"
	"runtime"
)

// DefaultSamples is the number of random points tried in one compute pass
const DefaultSamples = 100000

type Settings struct {
	logger bslogger.Logger

	Samples int
	// Seed makes passes reproducible; 0 picks a seed from the clock
	Seed    int64
	Workers int
}

func NewSettings() Settings {
	s := Settings{}
	s.Verify()
	return s
}

func (s *Settings) String() string {
	output := "{BuddhabrotSettings "
	output += fmt.Sprintf("Samples: %d ", s.Samples)
	output += fmt.Sprintf("Seed: %d ", s.Seed)
	output += fmt.Sprintf("Workers: %d}", s.Workers)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("BuddhabrotSettings", bslogger.Normal, nil)

	if s.Samples <= 0 {
		s.Samples = DefaultSamples
	}
	if s.Workers < 1 {
		s.Workers = runtime.NumCPU()
	}
	if s.Workers > s.Samples {
		s.logger.Infof("Reducing workers from %d to %d to match the sample count", s.Workers, s.Samples)
		s.Workers = s.Samples
	}
	return nil
}

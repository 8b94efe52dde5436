package mandelbrot

import (
	"FractalExplorer/task"
	"fmt"
	"github.com/BrugadaSyndrome/bslogger"
	"runtime"
)

type Settings struct {
	logger bslogger.Logger

	Partition           task.Partition
	PeriodicityChecking bool
	Workers             int
}

func NewSettings() Settings {
	s := Settings{
		Partition:           task.Row,
		PeriodicityChecking: true,
	}
	s.Verify()
	return s
}

func (s *Settings) String() string {
	output := "{MandelbrotSettings "
	output += fmt.Sprintf("Partition: %s ", s.Partition)
	output += fmt.Sprintf("PeriodicityChecking: %t ", s.PeriodicityChecking)
	output += fmt.Sprintf("Workers: %d}", s.Workers)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.Partition < task.Row || s.Partition > task.Image {
		s.logger.Infof("Unknown partition %d, using %s", s.Partition, task.Row)
		s.Partition = task.Row
	}
	// s.PeriodicityChecking defaults to false when left out of a settings file
	if s.Workers < 1 {
		s.Workers = runtime.NumCPU()
	}
	return nil
}

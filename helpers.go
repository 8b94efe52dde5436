package main

import (
	"FractalExplorer/misc"
	"FractalExplorer/session"
	"flag"
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/pkg/profile"
	"strings"
)

func parseArguments() {
	flag.StringVar(&settingsFile, "settings", "", "Json settings file, flags below override it")

	// Modes
	flag.BoolVar(&isCoordinator, "isCoordinator", false, "Serve a session to remote clients")
	flag.BoolVar(&isViewer, "isViewer", false, "Open an interactive window")
	flag.StringVar(&coordinatorAddress, "coordinatorAddress", "", "Render through the coordinator at this address")
	flag.StringVar(&serverAddress, "serverAddress", "", "Tcp address the coordinator listens on")
	flag.StringVar(&websocketAddress, "websocketAddress", "", "Http address of the coordinator websocket endpoint")

	// Session values
	flag.StringVar(&fractalName, "fractal", "", "mandelbrot or buddhabrot")
	flag.IntVar(&height, "height", 0, "Height of the image")
	flag.IntVar(&maxIterations, "maxIterations", 0, "Iterations to run for each point")
	flag.StringVar(&output, "output", "fractal.png", "Png file to write when rendering")
	flag.StringVar(&profileMode, "profile", "", "Write a cpu, mem, block or trace profile to the working directory")
	flag.IntVar(&supersample, "supersample", 1, "Compute at this multiple of the size and downscale for smoother edges")
	flag.IntVar(&width, "width", 0, "Width of the image")
	flag.IntVar(&zoom, "zoom", 0, "Number of times to zoom in on the center before rendering")

	flag.Parse()

	if supersample < 1 {
		supersample = 1
	}
}

// startProfile starts the profiler picked with -profile; the caller stops it
func startProfile(logger bslogger.Logger) interface{ Stop() } {
	options := []func(*profile.Profile){profile.ProfilePath("."), profile.NoShutdownHook}
	switch profileMode {
	case "":
		return nil
	case "cpu":
		options = append(options, profile.CPUProfile)
	case "mem":
		options = append(options, profile.MemProfile)
	case "block":
		options = append(options, profile.BlockProfile)
	case "trace":
		options = append(options, profile.TraceProfile)
	default:
		logger.Warningf("Unknown profile %s, not profiling", profileMode)
		return nil
	}
	return profile.Start(options...)
}

// loadSessionSettings reads the settings file if there is one and applies the flags on top
func loadSessionSettings(logger bslogger.Logger) session.Settings {
	settings := session.DefaultSettings()
	if settingsFile != "" {
		var err error
		settings, err = session.NewSettings(settingsFile)
		misc.CheckError(err, logger, misc.Fatal)
	}
	applyArguments(logger, &settings)
	misc.CheckError(settings.Verify(), logger, misc.Fatal)
	logger.Debug(settings.String())
	return settings
}

func applyArguments(logger bslogger.Logger, settings *session.Settings) {
	switch strings.ToLower(fractalName) {
	case "":
	case "mandelbrot":
		settings.Fractal = session.Mandelbrot
	case "buddhabrot":
		settings.Fractal = session.Buddhabrot
	default:
		logger.Fatalf("Unknown fractal %s", fractalName)
	}
	if width > 0 {
		settings.Width = width
	}
	if height > 0 {
		settings.Height = height
	}
	if maxIterations > 0 {
		settings.Viewport.MaxIterations = uint16(min(maxIterations, 65535))
	}
}

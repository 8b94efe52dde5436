package main

import (
	"FractalExplorer/client"
	"FractalExplorer/coordinator"
	"FractalExplorer/misc"
	"FractalExplorer/palette"
	"FractalExplorer/session"
	"FractalExplorer/viewer"
	"bytes"
	"context"
	"github.com/BrugadaSyndrome/bslogger"
	"image"
	"image/png"
	"time"
)

var (
	coordinatorAddress, fractalName, output, profileMode, serverAddress, settingsFile, websocketAddress string
	height, maxIterations, supersample, width, zoom                                                     int
	isCoordinator, isViewer                                                                             bool
)

func main() {
	parseArguments()
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)
	if profiler := startProfile(logger); profiler != nil {
		defer profiler.Stop()
	}

	switch {
	case isCoordinator:
		startCoordinator(logger)
	case isViewer:
		startViewer(logger)
	case coordinatorAddress != "":
		renderRemote(logger)
	default:
		renderLocal(logger)
	}
}

func startCoordinator(logger bslogger.Logger) {
	settings := coordinator.Settings{SessionSettings: session.DefaultSettings()}
	if settingsFile != "" {
		var err error
		settings, err = coordinator.NewSettings(settingsFile)
		misc.CheckError(err, logger, misc.Fatal)
	}
	if serverAddress != "" {
		settings.ServerAddress = serverAddress
	}
	if websocketAddress != "" {
		settings.WebsocketAddress = websocketAddress
	}
	applyArguments(logger, &settings.SessionSettings)
	misc.CheckError(settings.Verify(), logger, misc.Fatal)

	s, err := session.NewSession(settings.SessionSettings)
	misc.CheckError(err, logger, misc.Fatal)
	server, err := coordinator.NewServer(settings, s)
	misc.CheckError(err, logger, misc.Fatal)
	misc.CheckError(server.Run(), logger, misc.Fatal)
	logger.Infof("Coordinator running at %s", settings.ServerAddress)
	server.Wait()
}

func startViewer(logger bslogger.Logger) {
	settings := loadSessionSettings(logger)
	if coordinatorAddress == "" {
		s, err := session.NewSession(settings)
		misc.CheckError(err, logger, misc.Fatal)
		misc.CheckError(viewer.Run(s, settings.Width, settings.Height), logger, misc.Fatal)
		return
	}

	c, err := client.NewClient(coordinatorAddress)
	misc.CheckError(err, logger, misc.Fatal)
	defer c.Close()
	remote, err := client.NewRemote(c, settings.ColorSettings, settings.Width, settings.Height)
	misc.CheckError(err, logger, misc.Fatal)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		misc.CheckError(c.KeepAlive(ctx, time.Minute), logger, misc.Fatal)
	}()
	misc.CheckError(viewer.Run(remote, settings.Width, settings.Height), logger, misc.Fatal)
}

// renderLocal computes one image in this process and saves it as a png
func renderLocal(logger bslogger.Logger) {
	settings := loadSessionSettings(logger)
	width, height := settings.Width, settings.Height
	settings.Width *= supersample
	settings.Height *= supersample
	s, err := session.NewSession(settings)
	misc.CheckError(err, logger, misc.Fatal)
	for i := 0; i < zoom; i++ {
		misc.CheckError(s.ZoomIn(), logger, misc.Fatal)
	}
	outcome, err := s.Compute()
	misc.CheckError(err, logger, misc.Fatal)
	logger.Infof("Compute %s", outcome)
	savePNG(logger, palette.Downscale(s.Render(), width, height))
}

// renderRemote has a coordinator compute the image and colors the frame it sends back
func renderRemote(logger bslogger.Logger) {
	settings := loadSessionSettings(logger)
	c, err := client.NewClient(coordinatorAddress)
	misc.CheckError(err, logger, misc.Fatal)
	defer c.Close()

	_, err = c.Resize(settings.Width, settings.Height)
	misc.CheckError(err, logger, misc.Fatal)
	for i := 0; i < zoom; i++ {
		_, err = c.ZoomIn()
		misc.CheckError(err, logger, misc.Fatal)
	}
	outcome, err := c.Compute()
	misc.CheckError(err, logger, misc.Fatal)
	logger.Infof("Remote compute %s", outcome)

	frame, err := c.Frame()
	misc.CheckError(err, logger, misc.Fatal)
	iterations, err := frame.Image()
	misc.CheckError(err, logger, misc.Fatal)
	savePNG(logger, settings.ColorSettings.Render(iterations, frame.Scale()))
}

func savePNG(logger bslogger.Logger, picture image.Image) {
	var buffer bytes.Buffer
	misc.CheckError(png.Encode(&buffer, picture), logger, misc.Fatal)
	_, err := misc.WriteFile(output, buffer.Bytes())
	misc.CheckError(err, logger, misc.Fatal)
	logger.Infof("Saved image to %s", output)
}

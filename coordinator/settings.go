package coordinator

import (
	"FractalExplorer/misc"
	"FractalExplorer/session"
	"encoding/json"
	"fmt"
	"github.com/BrugadaSyndrome/bslogger"
)

const (
	DefaultServerPort      = 51000
	DefaultHeartBeatSecond = 30
)

type Settings struct {
	logger bslogger.Logger

	// HeartBeat is the number of seconds between two status lines in the log
	HeartBeat       int
	ServerAddress   string
	SessionSettings session.Settings
	// WebsocketAddress is where the websocket endpoint listens, left empty to disable it
	WebsocketAddress string
}

func NewSettings(settingsFile string) (Settings, error) {
	s := Settings{
		SessionSettings: session.DefaultSettings(),
	}
	fileBytes, err := misc.ReadFile(settingsFile)
	if err != nil {
		return s, err
	}
	err = json.Unmarshal(fileBytes, &s)
	if err != nil {
		return s, fmt.Errorf("unable to parse %s - %w", settingsFile, err)
	}
	err = s.Verify()
	if err != nil {
		return s, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func (s *Settings) String() string {
	output := "{CoordinatorSettings "
	output += fmt.Sprintf("ServerAddress: %s ", s.ServerAddress)
	output += fmt.Sprintf("WebsocketAddress: %s ", s.WebsocketAddress)
	output += fmt.Sprintf("HeartBeat: %ds ", s.HeartBeat)
	output += fmt.Sprintf("Session: %s}", s.SessionSettings.String())
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil)

	if s.HeartBeat <= 0 {
		s.HeartBeat = DefaultHeartBeatSecond
	}
	if s.ServerAddress == "" {
		address, err := misc.GetLocalAddress()
		if misc.CheckError(err, s.logger, misc.Warning) {
			address = "localhost"
		}
		s.ServerAddress = fmt.Sprintf("%s:%d", address, DefaultServerPort)
	}
	return s.SessionSettings.Verify()
}

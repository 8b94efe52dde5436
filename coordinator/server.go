package coordinator

import (
	"FractalExplorer/misc"
	"FractalExplorer/session"
	"context"
	"errors"
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"
	"net/http"
	"net/rpc"
	"time"
)

// WebsocketPath is the http path of the websocket endpoint
const WebsocketPath = "/ws"

// Server serves a Coordinator over tcp and, optionally, websockets
type Server struct {
	coordinator *Coordinator
	httpServer  *http.Server
	listener    *WebsocketListener
	logger      bslogger.Logger
	mux         *http.ServeMux
	rpcServer   *rpc.Server
	session     *session.Session
	settings    Settings
	shutdown    chan bool
	tcpServer   multirpc.TcpServer
}

func NewServer(settings Settings, s *session.Session) (*Server, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}

	coordinator := NewCoordinator(s)
	rpcServer := rpc.NewServer()
	if err := rpcServer.Register(coordinator); err != nil {
		return nil, err
	}

	server := &Server{
		coordinator: coordinator,
		listener:    NewWebsocketListener(context.Background(), settings.WebsocketAddress+WebsocketPath),
		logger:      bslogger.NewLogger("CoordinatorServer", bslogger.Normal, nil),
		mux:         http.NewServeMux(),
		rpcServer:   rpcServer,
		session:     s,
		settings:    settings,
		shutdown:    make(chan bool),
		tcpServer:   multirpc.NewTcpServer(coordinator, settings.ServerAddress, "CoordinatorTcpServer"),
	}
	server.mux.Handle(WebsocketPath, server.listener)
	return server, nil
}

// Handler is the http handler holding the websocket endpoint
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run starts serving and returns once the tcp server is listening
func (s *Server) Run() error {
	if err := s.tcpServer.Run(); err != nil {
		return err
	}

	go s.rpcServer.Accept(s.listener)
	if s.settings.WebsocketAddress != "" {
		s.httpServer = &http.Server{
			Addr:              s.settings.WebsocketAddress,
			Handler:           s.mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			err := s.httpServer.ListenAndServe()
			if !errors.Is(err, http.ErrServerClosed) {
				misc.CheckError(err, s.logger, misc.Error)
			}
		}()
		s.logger.Infof("Serving websockets at ws://%s%s", s.settings.WebsocketAddress, WebsocketPath)
	}

	go s.tickers()
	return nil
}

func (s *Server) tickers() {
	heartBeat := time.NewTicker(time.Duration(s.settings.HeartBeat) * time.Second)
	defer heartBeat.Stop()

	for {
		select {
		case <-heartBeat.C:
			viewport := s.session.Viewport()
			s.logger.Infof("Generation: %d | Calls: %d | %s", s.session.Generation(), s.coordinator.calls.Load(), viewport.String())
		case <-s.shutdown:
			return
		}
	}
}

func (s *Server) Stop() error {
	close(s.shutdown)
	misc.CheckError(s.listener.Close(), s.logger, misc.Warning)
	if s.httpServer != nil {
		misc.CheckError(s.httpServer.Close(), s.logger, misc.Warning)
	}
	return s.tcpServer.Stop()
}

// Wait blocks until Stop is called
func (s *Server) Wait() {
	s.tcpServer.Wait()
}

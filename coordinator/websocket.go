package coordinator

import (
	"context"
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/coder/websocket"
	"net"
	"net/http"
)

// WebsocketListener hands websocket connections accepted by an http handler to an rpc server as net.Conns
type WebsocketListener struct {
	address string
	cancel  context.CancelFunc
	conns   chan *websocket.Conn
	ctx     context.Context
	logger  bslogger.Logger
}

func NewWebsocketListener(ctx context.Context, address string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		address: address,
		cancel:  cancel,
		conns:   make(chan *websocket.Conn),
		ctx:     ctx,
		logger:  bslogger.NewLogger("WebsocketListener", bslogger.Normal, nil),
	}
}

// ServeHTTP upgrades the request and queues the connection for Accept
func (l *WebsocketListener) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		l.logger.Warningf("Unable to accept websocket from %s: %s", r.RemoteAddr, err)
		return
	}

	select {
	case l.conns <- c:
		l.logger.Infof("Accepted websocket from %s", r.RemoteAddr)
	case <-l.ctx.Done():
		c.Close(websocket.StatusGoingAway, "shutting down")
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.conns:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return websocketAddress(l.address)
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

type websocketAddress string

func (a websocketAddress) Network() string {
	return "ws"
}

func (a websocketAddress) String() string {
	return string(a)
}

package client

import (
	"FractalExplorer/coordinator"
	"FractalExplorer/fractal"
	"FractalExplorer/misc"
	"FractalExplorer/session"
	"FractalExplorer/task"
	"context"
	"errors"
	"fmt"
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"
	"github.com/coder/websocket"
	"net/rpc"
	"strings"
	"time"
)

// caller is the part of an rpc client the typed methods need
type caller interface {
	Call(method string, request interface{}, reply interface{}) error
}

// Client talks to a coordinator over tcp or websockets
type Client struct {
	caller caller
	close  func() error
	logger bslogger.Logger
	name   string
}

// NewClient connects to a coordinator over tcp
func NewClient(address string) (*Client, error) {
	tcp := multirpc.NewTcpClient(address, "CoordinatorClient")
	if err := tcp.Connect(); err != nil {
		return nil, err
	}
	return &Client{
		caller: &tcp,
		close:  tcp.Disconnect,
		logger: bslogger.NewLogger("CoordinatorClient", bslogger.Normal, nil),
		name:   address,
	}, nil
}

// DialWebsocket connects to the websocket endpoint of a coordinator, e.g. ws://localhost:8080/ws
func DialWebsocket(ctx context.Context, url string) (*Client, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to dial %s - %w", url, err)
	}
	rpcClient := rpc.NewClient(websocket.NetConn(context.Background(), c, websocket.MessageBinary))
	return &Client{
		caller: rpcClient,
		close:  rpcClient.Close,
		logger: bslogger.NewLogger("WebsocketClient", bslogger.Normal, nil),
		name:   url,
	}, nil
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) Close() error {
	return c.close()
}

// sentinels that survive the trip through net/rpc as plain text
var remoteErrors = []error{
	fractal.ErrDegenerateViewport,
	fractal.ErrInvalidDimensions,
	fractal.ErrIterationLimit,
	fractal.ErrOutOfBounds,
	session.ErrZoomUnsupported,
}

func (c *Client) call(method string, request interface{}, reply interface{}) error {
	err := c.caller.Call("Coordinator."+method, request, reply)
	if err == nil {
		return nil
	}
	var serverError rpc.ServerError
	if errors.As(err, &serverError) {
		for _, sentinel := range remoteErrors {
			if strings.Contains(err.Error(), sentinel.Error()) {
				return fmt.Errorf("%s: %w", method, sentinel)
			}
		}
	}
	c.logger.Warningf("%s on %s failed: %s", method, c.name, err)
	return fmt.Errorf("%s: %w", method, err)
}

func (c *Client) RollCall() (bool, error) {
	var present bool
	err := c.call("RollCall", misc.Nothing{}, &present)
	return present, err
}

func (c *Client) Compute() (fractal.Outcome, error) {
	var outcome fractal.Outcome
	err := c.call("Compute", misc.Nothing{}, &outcome)
	return outcome, err
}

// Resize returns the generation the coordinator moved to
func (c *Client) Resize(width int, height int) (uint64, error) {
	var generation uint64
	err := c.call("Resize", coordinator.Size{Height: height, Width: width}, &generation)
	return generation, err
}

func (c *Client) PixelIterations(x uint16, y uint16) (uint16, error) {
	var iterations uint16
	err := c.call("GetPixelIterations", task.Coordinate{Column: x, Row: y}, &iterations)
	return iterations, err
}

func (c *Client) Recenter(x float64, y float64) (fractal.Viewport, error) {
	var viewport fractal.Viewport
	err := c.call("Recenter", coordinator.Point{X: x, Y: y}, &viewport)
	return viewport, err
}

func (c *Client) ZoomIn() (fractal.Viewport, error) {
	return c.viewportCall("ZoomIn")
}

func (c *Client) ZoomOut() (fractal.Viewport, error) {
	return c.viewportCall("ZoomOut")
}

func (c *Client) IncreaseIterations() (fractal.Viewport, error) {
	return c.viewportCall("IncreaseIterations")
}

func (c *Client) DecreaseIterations() (fractal.Viewport, error) {
	return c.viewportCall("DecreaseIterations")
}

func (c *Client) viewportCall(method string) (fractal.Viewport, error) {
	var viewport fractal.Viewport
	err := c.call(method, misc.Nothing{}, &viewport)
	return viewport, err
}

func (c *Client) Viewport() (fractal.Viewport, error) {
	return c.viewportCall("GetViewport")
}

func (c *Client) SupportsZoom() (bool, error) {
	var supported bool
	err := c.call("SupportsZoom", misc.Nothing{}, &supported)
	return supported, err
}

func (c *Client) Frame() (session.Frame, error) {
	var frame session.Frame
	err := c.call("GetFrame", misc.Nothing{}, &frame)
	return frame, err
}

// KeepAlive calls the coordinator's roll call every interval. It returns nil once ctx is done, or the error of the
// first roll call the coordinator misses.
func (c *Client) KeepAlive(ctx context.Context, interval time.Duration) error {
	rollCall := time.NewTicker(interval)
	defer rollCall.Stop()

	for {
		select {
		case <-rollCall.C:
			c.logger.Debug("Roll call ticker")
			if _, err := c.RollCall(); err != nil {
				c.logger.Warningf("Coordinator %s missed roll call: %s", c.name, err)
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}

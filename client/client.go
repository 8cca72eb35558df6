package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/colonyprotocol/gocolony/connection"
	"github.com/colonyprotocol/gocolony/game"
	"github.com/colonyprotocol/gocolony/messages"
	"github.com/colonyprotocol/gocolony/protocol"
)

// Client represents a connection to a Colony arbiter.
type Client struct {
	opts   *Options
	router *Router
	log    *logrus.Logger

	mu      sync.Mutex
	writeMu sync.Mutex
	conn    connection.Transport

	// Read loop management
	stopCh    chan struct{}
	doneCh    chan struct{}
	connected bool

	// Disconnected channel - closed when connection is lost
	disconnectedCh chan struct{}
	disconnectErr  error
}

// New creates a new client with the given options.
// If opts is nil, DefaultOptions() is used.
func New(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		opts:   opts,
		router: NewRouter(),
		log:    log,
		// Inert until a connection is lost; never nil, so callers can
		// select on Disconnected() before connecting.
		disconnectedCh: make(chan struct{}),
	}
}

// Router returns the message router for registering handlers.
func (c *Client) Router() *Router {
	return c.router
}

// Connected reports whether the client currently has a live connection.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Disconnected returns a channel that is closed when the client loses
// its connection. The error can be retrieved with DisconnectError().
// Before the first connect, and after a local Disconnect, the channel
// simply never closes.
func (c *Client) Disconnected() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disconnectedCh
}

// DisconnectError returns the error that caused the disconnect, if any.
func (c *Client) DisconnectError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disconnectErr
}

// Connect establishes a TCP connection to the arbiter and starts the
// read loop.
func (c *Client) Connect(ctx context.Context) error {
	// Apply timeout from options if context doesn't have a deadline
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.ConnectTimeout)
		defer cancel()
	}

	conn, err := connection.Dial(ctx, c.opts.ServerAddress)
	if err != nil {
		return fmt.Errorf("dial arbiter: %w", err)
	}
	if err := c.ConnectWith(conn); err != nil {
		_ = conn.Close()
		return err
	}
	return nil
}

// ConnectWith starts the client over an already-established transport.
// This is how websocket clients and tests attach.
func (c *Client) ConnectWith(conn connection.Transport) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return errors.New("already connected")
	}

	c.conn = conn
	c.connected = true
	c.stopCh = make(chan struct{})
	c.doneCh = make(chan struct{})
	c.disconnectedCh = make(chan struct{})
	c.disconnectErr = nil

	go c.readLoop(conn, c.stopCh, c.doneCh)
	return nil
}

// Disconnect closes the connection and stops the read loop.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return nil
	}
	c.connected = false
	close(c.stopCh)
	conn := c.conn
	doneCh := c.doneCh
	c.conn = nil
	c.mu.Unlock()

	err := conn.Close()
	<-doneCh
	return err
}

// readLoop decodes incoming command lines and dispatches them via the
// router. A garbled line is logged and skipped; the connection stays
// open, since one corrupt line must not destabilize the session.
func (c *Client) readLoop(conn connection.Transport, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	for {
		line, err := conn.ReadCommand()
		if err != nil {
			select {
			case <-stopCh:
				// Local Disconnect; not a lost connection.
			default:
				c.lostConnection(err)
			}
			return
		}

		msg, err := messages.Decode(line)
		if err != nil {
			c.log.WithError(err).WithField("line", line).Warn("skipping garbled command")
			continue
		}
		c.router.Dispatch(msg)
	}
}

// lostConnection records an unexpected connection loss.
func (c *Client) lostConnection(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return
	}
	c.connected = false
	c.disconnectErr = err
	close(c.disconnectedCh)
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.log.WithError(err).Warn("connection lost")
}

// Send encodes the message and writes it to the arbiter.
func (c *Client) Send(msg messages.Message) error {
	c.mu.Lock()
	conn := c.conn
	connected := c.connected
	c.mu.Unlock()

	if !connected || conn == nil {
		return errors.New("not connected")
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.WriteCommand(msg.Encode()); err != nil {
		return fmt.Errorf("send command %d: %w", msg.Code(), err)
	}
	return nil
}

// JoinGame asks the arbiter to add a player to a game.
// Names from users enter the wire format here, so both are validated.
func (c *Client) JoinGame(ga, player string) error {
	if err := checkIdentifiers(ga, player); err != nil {
		return err
	}
	return c.Send(messages.NewJoinGame(ga, player))
}

// LeaveGame tells the arbiter a player is leaving a game.
func (c *Client) LeaveGame(ga, player string) error {
	if err := checkIdentifiers(ga, player); err != nil {
		return err
	}
	return c.Send(messages.NewLeaveGame(ga, player))
}

// RollDice requests a dice roll in the given game.
func (c *Client) RollDice(ga string) error {
	if err := checkIdentifiers(ga); err != nil {
		return err
	}
	return c.Send(messages.NewRollDice(ga))
}

// EndTurn ends the player's turn in the given game.
func (c *Client) EndTurn(ga string) error {
	if err := checkIdentifiers(ga); err != nil {
		return err
	}
	return c.Send(messages.NewEndTurn(ga))
}

// Discard answers a DiscardRequest with the given resources.
func (c *Client) Discard(ga string, rs game.ResourceSet) error {
	if err := checkIdentifiers(ga); err != nil {
		return err
	}
	return c.Send(messages.NewDiscardSet(ga, rs))
}

func checkIdentifiers(names ...string) error {
	for _, name := range names {
		if !protocol.ValidIdentifier(name) {
			return fmt.Errorf("invalid identifier %q", name)
		}
	}
	return nil
}

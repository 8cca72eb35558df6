package connection

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
)

// WSConn carries Colony commands over a websocket, one command per text
// frame, for browser clients. It implements Transport.
//
// Like the underlying gorilla connection, a WSConn supports one
// concurrent reader and one concurrent writer.
type WSConn struct {
	conn *websocket.Conn
}

// DialWS connects to a Colony arbiter over websocket.
// The URL uses the ws or wss scheme.
func DialWS(ctx context.Context, url string) (*WSConn, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	return NewWSConn(conn), nil
}

// NewWSConn wraps an existing websocket connection.
func NewWSConn(conn *websocket.Conn) *WSConn {
	return &WSConn{conn: conn}
}

// ReadCommand reads the next text frame as a command line.
// Non-text frames are skipped.
func (c *WSConn) ReadCommand() (string, error) {
	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			return "", fmt.Errorf("read command: %w", err)
		}
		if msgType != websocket.TextMessage {
			continue
		}
		return string(data), nil
	}
}

// WriteCommand writes one command as a text frame.
func (c *WSConn) WriteCommand(cmd string) error {
	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(cmd)); err != nil {
		return fmt.Errorf("write command: %w", err)
	}
	return nil
}

// Close closes the underlying websocket connection.
func (c *WSConn) Close() error {
	return c.conn.Close()
}

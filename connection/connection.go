// Package connection provides line-framed transports for the Colony protocol.
package connection

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// maxCommandLength caps a single command line to prevent OOM on a
// misbehaving peer.
const maxCommandLength = 64 * 1024

// Transport delivers one complete command line per read and accepts one
// complete command line per write. The codec layer never does I/O; it is
// handed lines by a Transport.
type Transport interface {
	ReadCommand() (string, error)
	WriteCommand(cmd string) error
	Close() error
}

// Conn handles newline-framed command I/O over a network connection.
// One command per line; the line terminator (and any carriage return)
// is stripped on read and appended on write.
type Conn struct {
	conn net.Conn
	sc   *bufio.Scanner
	w    *bufio.Writer
}

// Dial connects to a Colony arbiter.
func Dial(ctx context.Context, address string) (*Conn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", address, err)
	}
	return NewConn(conn), nil
}

// NewConn wraps an existing net.Conn.
// This is useful for testing with mock connections.
func NewConn(conn net.Conn) *Conn {
	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 4096), maxCommandLength)
	return &Conn{
		conn: conn,
		sc:   sc,
		w:    bufio.NewWriter(conn),
	}
}

// ReadCommand reads the next command line, without its line terminator.
// It returns io.EOF when the peer closes the connection cleanly.
func (c *Conn) ReadCommand() (string, error) {
	if !c.sc.Scan() {
		if err := c.sc.Err(); err != nil {
			return "", fmt.Errorf("read command: %w", err)
		}
		return "", io.EOF
	}
	return c.sc.Text(), nil
}

// WriteCommand writes one command line and flushes.
// The command must not contain a line terminator.
func (c *Conn) WriteCommand(cmd string) error {
	if strings.ContainsAny(cmd, "\r\n") {
		return fmt.Errorf("write command: embedded newline in %q", cmd)
	}
	if _, err := c.w.WriteString(cmd); err != nil {
		return fmt.Errorf("write command: %w", err)
	}
	if err := c.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write command: %w", err)
	}
	return c.w.Flush()
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

// SetDeadline sets read and write deadlines on the connection.
func (c *Conn) SetDeadline(t time.Time) error {
	return c.conn.SetDeadline(t)
}

// SetReadDeadline sets the read deadline on the connection.
func (c *Conn) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

// SetWriteDeadline sets the write deadline on the connection.
func (c *Conn) SetWriteDeadline(t time.Time) error {
	return c.conn.SetWriteDeadline(t)
}

// LocalAddr returns the local network address.
func (c *Conn) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// RemoteAddr returns the remote network address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

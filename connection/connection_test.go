package connection_test

import (
	"io"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyprotocol/gocolony/connection"
)

func TestConn_WriteReadCommand(t *testing.T) {
	// Create connected pipe for testing
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	clientConn := connection.NewConn(client)
	serverConn := connection.NewConn(server)

	cmd := "1033|game42,1,0,2,0,1,0"

	// Write in goroutine to prevent blocking
	errCh := make(chan error, 1)
	go func() {
		errCh <- clientConn.WriteCommand(cmd)
	}()

	got, err := serverConn.ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, cmd, got)

	require.NoError(t, <-errCh)
}

func TestConn_WriteCommand_Format(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	clientConn := connection.NewConn(client)

	go func() {
		_ = clientConn.WriteCommand("1031|game42")
	}()

	// Read raw bytes to verify newline framing
	buf := make([]byte, 12)
	_, err := io.ReadFull(server, buf)
	require.NoError(t, err)
	assert.Equal(t, "1031|game42\n", string(buf))
}

func TestConn_WriteCommand_EmbeddedNewline(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	clientConn := connection.NewConn(client)

	err := clientConn.WriteCommand("1031|game\n42")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedded newline")
}

func TestConn_ReadCommand_CRLF(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	clientConn := connection.NewConn(client)

	go func() {
		_, _ = server.Write([]byte("1031|game42\r\n"))
	}()

	got, err := clientConn.ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, "1031|game42", got)
}

func TestConn_ReadCommand_MultipleLines(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	clientConn := connection.NewConn(client)

	go func() {
		_, _ = server.Write([]byte("1031|game42\n1032|game42\n"))
	}()

	first, err := clientConn.ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, "1031|game42", first)

	second, err := clientConn.ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, "1032|game42", second)
}

func TestConn_ReadCommand_EOF(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()

	clientConn := connection.NewConn(client)

	go func() {
		_, _ = server.Write([]byte("1031|game42\n"))
		server.Close()
	}()

	_, err := clientConn.ReadCommand()
	require.NoError(t, err)

	_, err = clientConn.ReadCommand()
	assert.ErrorIs(t, err, io.EOF)
}

func TestConn_ReadCommand_TooLong(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	clientConn := connection.NewConn(client)

	go func() {
		// A single line well past the command length cap, never terminated.
		huge := strings.Repeat("x", 70*1024)
		_, _ = server.Write([]byte(huge))
	}()

	_, err := clientConn.ReadCommand()
	assert.Error(t, err)
}

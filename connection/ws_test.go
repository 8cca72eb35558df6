package connection_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyprotocol/gocolony/connection"
)

// echoWSServer upgrades each request and echoes text frames back.
func echoWSServer(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(msgType, data); err != nil {
				return
			}
		}
	}))
}

func TestWSConn_WriteReadCommand(t *testing.T) {
	srv := echoWSServer(t)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, err := connection.DialWS(context.Background(), url)
	require.NoError(t, err)
	defer conn.Close()

	cmd := "1033|game42,1,0,2,0,1,0"
	require.NoError(t, conn.WriteCommand(cmd))

	got, err := conn.ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, cmd, got)
}

func TestDialWS_BadURL(t *testing.T) {
	_, err := connection.DialWS(context.Background(), "ws://127.0.0.1:1")

	assert.Error(t, err)
}

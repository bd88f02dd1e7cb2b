package http

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/revealdeck/internal/adapters/secondary/logging"
	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

func newTestServer(t *testing.T, staticDir string) *Server {
	t.Helper()
	return NewServer(entities.ServerConfig{Host: "127.0.0.1", Port: 0}, staticDir, logging.NewNop())
}

func startTestServer(t *testing.T, staticDir string) *Server {
	t.Helper()
	s := newTestServer(t, staticDir)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	t.Cleanup(func() {
		if s.IsRunning() {
			_ = s.Stop(context.Background())
		}
		cancel()
	})
	return s
}

func TestServer_Lifecycle(t *testing.T) {
	s := newTestServer(t, "")
	assert.False(t, s.IsRunning())
	assert.Empty(t, s.Addr())
	assert.Error(t, s.Stop(context.Background()))
	assert.Error(t, s.NotifyClients(ports.UpdateEvent{Type: ports.EventTypeReload}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	assert.True(t, s.IsRunning())
	assert.NotEmpty(t, s.Addr())
	assert.Error(t, s.Start(ctx), "second start must fail")

	require.NoError(t, s.Stop(context.Background()))
	assert.False(t, s.IsRunning())
}

func TestServer_StartPortInUse(t *testing.T) {
	first := startTestServer(t, "")

	_, portStr, err := net.SplitHostPort(first.Addr())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	second := NewServer(entities.ServerConfig{Host: "127.0.0.1", Port: port}, "", logging.NewNop())
	err = second.Start(context.Background())

	require.Error(t, err)
	assert.False(t, second.IsRunning())
}

func TestServer_ServesDocument(t *testing.T) {
	s := startTestServer(t, "")
	s.SetDocument([]byte("<html><body><div class=\"reveal\"></div></body></html>"))

	resp, err := http.Get("http://" + s.Addr() + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `<div class="reveal"></div>`)
	assert.Contains(t, string(body), "/ws")
}

func TestServer_ReloadOverWebSocket(t *testing.T) {
	s := startTestServer(t, "")

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+s.Addr()+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var connected ports.UpdateEvent
	require.NoError(t, conn.ReadJSON(&connected))
	assert.Equal(t, ports.EventTypeConnected, connected.Type)

	require.Eventually(t, func() bool { return s.manager().Count() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, s.NotifyClients(ports.UpdateEvent{
		Type:      ports.EventTypeReload,
		Timestamp: time.Now(),
		Data:      map[string]string{"source": "deck.yaml"},
	}))

	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var reload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &reload))
	assert.Equal(t, ports.EventTypeReload, reload["type"])
	assert.Equal(t, map[string]interface{}{"source": "deck.yaml"}, reload["data"])
}

func TestServer_StopClosesClients(t *testing.T) {
	s := startTestServer(t, "")

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+s.Addr()+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return s.manager().Count() == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	assert.Equal(t, 0, s.manager().Count())
}

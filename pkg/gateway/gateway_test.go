package gateway

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomctl/loom/pkg/events"
)

func newTestGateway(t *testing.T) (*Gateway, *events.Broker, *httptest.Server) {
	t.Helper()
	broker := events.NewBroker()
	broker.Start()
	t.Cleanup(broker.Stop)

	g := New(DefaultConfig(), broker)
	t.Cleanup(g.Stop)
	srv := httptest.NewServer(g.Handler())
	t.Cleanup(srv.Close)
	return g, broker, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	var frame Frame
	require.NoError(t, json.Unmarshal(payload, &frame))
	return frame
}

func TestGatewayDeliversEvents(t *testing.T) {
	g, broker, srv := newTestGateway(t)
	conn := dial(t, srv, "")

	require.Eventually(t, func() bool { return g.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	broker.Emit(events.EventClusterRegistered, "cluster a joined", map[string]string{"cluster_id": "a"})

	frame := readFrame(t, conn)
	assert.Equal(t, string(events.EventClusterRegistered), frame.Type)
	assert.Equal(t, "cluster a joined", frame.Message)
	assert.Equal(t, "a", frame.Metadata["cluster_id"])
	assert.NotEmpty(t, frame.EventID)
	assert.False(t, frame.Timestamp.IsZero())
}

func TestGatewayTypeFilter(t *testing.T) {
	g, broker, srv := newTestGateway(t)
	conn := dial(t, srv, "?types="+string(events.EventAgentSpawned))

	require.Eventually(t, func() bool { return g.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	broker.Emit(events.EventClusterRegistered, "ignored", nil)
	broker.Emit(events.EventAgentSpawned, "agent up", map[string]string{"agent_id": "x"})

	frame := readFrame(t, conn)
	assert.Equal(t, string(events.EventAgentSpawned), frame.Type)
	assert.Equal(t, "x", frame.Metadata["agent_id"])
}

func TestGatewayMultipleClients(t *testing.T) {
	g, broker, srv := newTestGateway(t)
	first := dial(t, srv, "")
	second := dial(t, srv, "")

	require.Eventually(t, func() bool { return g.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	broker.Emit(events.EventAgentSpawned, "agent up", nil)

	assert.Equal(t, string(events.EventAgentSpawned), readFrame(t, first).Type)
	assert.Equal(t, string(events.EventAgentSpawned), readFrame(t, second).Type)
}

func TestGatewayStopClosesClients(t *testing.T) {
	g, _, srv := newTestGateway(t)
	conn := dial(t, srv, "")

	require.Eventually(t, func() bool { return g.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	g.Stop()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestGatewayClientDisconnectUnsubscribes(t *testing.T) {
	g, broker, srv := newTestGateway(t)
	base := broker.SubscriberCount()

	conn := dial(t, srv, "")
	require.Eventually(t, func() bool { return broker.SubscriberCount() == base+1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return broker.SubscriberCount() == base }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, g.ClientCount())
}

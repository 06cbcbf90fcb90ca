package gateway

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/log"
)

// Config tunes the WebSocket event gateway
type Config struct {
	// Path is the HTTP path that accepts upgrade requests
	Path string
	// WriteTimeout bounds each frame write; slow clients are dropped
	WriteTimeout time.Duration
	// PingInterval is the keepalive cadence
	PingInterval time.Duration
}

// DefaultConfig returns the gateway defaults
func DefaultConfig() Config {
	return Config{
		Path:         "/events",
		WriteTimeout: 10 * time.Second,
		PingInterval: 30 * time.Second,
	}
}

// Frame is the JSON shape pushed to every connected client, one frame
// per control-plane event.
type Frame struct {
	EventID   string            `json:"event_id"`
	Type      string            `json:"type"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Gateway bridges the in-process event broker onto WebSocket clients so
// non-gRPC consumers can follow control-plane activity. Each connection
// gets its own broker subscription; the broker's non-blocking fan-out
// plus the write deadline mean one stalled client never holds up the
// rest.
type Gateway struct {
	cfg      Config
	broker   *events.Broker
	logger   zerolog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	server  *http.Server
	clients map[*websocket.Conn]struct{}
	closed  bool
}

// New creates a gateway over the broker
func New(cfg Config, broker *events.Broker) *Gateway {
	if cfg.Path == "" {
		cfg.Path = "/events"
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = 30 * time.Second
	}
	return &Gateway{
		cfg:    cfg,
		broker: broker,
		logger: log.WithComponent("gateway"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handler returns the upgrade handler for embedding in another mux
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(g.cfg.Path, g.handleWS)
	return mux
}

// Start serves the gateway on addr. Blocks until Stop or a listener
// error.
func (g *Gateway) Start(addr string) error {
	server := &http.Server{
		Addr:        addr,
		Handler:     g.Handler(),
		ReadTimeout: 10 * time.Second,
	}
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return http.ErrServerClosed
	}
	g.server = server
	g.mu.Unlock()

	g.logger.Info().Str("addr", addr).Str("path", g.cfg.Path).Msg("Event gateway listening")
	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop closes the listener and every client connection
func (g *Gateway) Stop() {
	g.mu.Lock()
	g.closed = true
	server := g.server
	for conn := range g.clients {
		conn.Close()
	}
	g.clients = make(map[*websocket.Conn]struct{})
	g.mu.Unlock()

	if server != nil {
		server.Close()
	}
}

// ClientCount reports the number of connected clients
func (g *Gateway) ClientCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.clients)
}

// handleWS upgrades the request and runs the client until it hangs up.
// A comma-separated "types" query parameter narrows the subscription;
// absent, the client receives every event.
func (g *Gateway) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("Upgrade failed")
		return
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		conn.Close()
		return
	}
	g.clients[conn] = struct{}{}
	g.mu.Unlock()

	sub := g.subscribe(r.URL.Query().Get("types"))
	g.logger.Debug().Str("remote", r.RemoteAddr).Msg("Client connected")

	done := make(chan struct{})
	go g.readPump(conn, done)
	g.writePump(conn, sub, done)

	g.broker.Unsubscribe(sub)
	g.mu.Lock()
	delete(g.clients, conn)
	g.mu.Unlock()
	conn.Close()
	g.logger.Debug().Str("remote", r.RemoteAddr).Msg("Client disconnected")
}

func (g *Gateway) subscribe(typesParam string) events.Subscriber {
	if typesParam == "" {
		return g.broker.Subscribe()
	}
	var eventTypes []events.EventType
	for _, t := range strings.Split(typesParam, ",") {
		if t = strings.TrimSpace(t); t != "" {
			eventTypes = append(eventTypes, events.EventType(t))
		}
	}
	return g.broker.SubscribeTypes(eventTypes...)
}

// readPump drains the connection so control frames are processed and a
// client close is noticed promptly. Inbound data frames are discarded;
// the gateway is push-only.
func (g *Gateway) readPump(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (g *Gateway) writePump(conn *websocket.Conn, sub events.Subscriber, done chan struct{}) {
	ticker := time.NewTicker(g.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			payload, err := json.Marshal(Frame{
				EventID:   ev.ID,
				Type:      string(ev.Type),
				Message:   ev.Message,
				Timestamp: ev.Timestamp,
				Metadata:  ev.Metadata,
			})
			if err != nil {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(g.cfg.WriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(g.cfg.WriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

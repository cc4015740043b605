package gesture

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	readLimit    = 1 << 16 // 64KB, detections are tiny
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingInterval = 25 * time.Second
)

// Bridge accepts websocket connections from the hand recognizer and
// publishes decoded detections into a latest-value slot for the frame
// loop to poll. Multiple recognizer connections are allowed; the most
// recent detection wins regardless of source.
type Bridge struct {
	addr     string
	logger   *log.Logger
	slot     Slot
	server   *http.Server
	upgrader websocket.Upgrader
}

// NewBridge creates a bridge listening on addr (e.g. ":8765").
func NewBridge(addr string, logger *log.Logger) *Bridge {
	b := &Bridge{
		addr:   addr,
		logger: logger,
		upgrader: websocket.Upgrader{
			// The recognizer page is served from anywhere (usually a
			// local file or dev server), so origin checks stay open.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", b.handleWS)
	b.server = &http.Server{Addr: addr, Handler: mux}
	return b
}

// Latest returns the most recent detection, if any recognizer has ever
// published one.
func (b *Bridge) Latest() (Signal, bool) {
	return b.slot.Latest()
}

// Start begins listening. The listener is bound synchronously so that a
// busy port surfaces immediately; serving continues in the background.
// A bridge that fails to start disables only the gesture modality.
func (b *Bridge) Start() error {
	ln, err := net.Listen("tcp", b.addr)
	if err != nil {
		return err
	}

	go func() {
		if err := b.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			b.logger.Error("gesture bridge stopped", "error", err)
		}
	}()

	b.logger.Info("gesture bridge listening", "addr", b.addr, "endpoint", "/ws")
	return nil
}

// Shutdown stops the bridge, closing any recognizer connections.
func (b *Bridge) Shutdown(ctx context.Context) error {
	return b.server.Shutdown(ctx)
}

// Handler exposes the bridge's HTTP handler for tests and embedding.
func (b *Bridge) Handler() http.Handler {
	return b.server.Handler
}

func (b *Bridge) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	b.logger.Info("recognizer connected", "conn", connID, "remote", r.RemoteAddr)

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			b.logger.Info("recognizer disconnected", "conn", connID, "error", err)
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		sig, ok, err := DecodeSignal(msg)
		if err != nil {
			// Malformed traffic is logged and skipped; the game keeps
			// running on whatever signal it last had.
			b.logger.Warn("undecodable gesture message", "conn", connID, "error", err)
			continue
		}
		if ok {
			b.slot.Publish(sig)
		}
	}
}

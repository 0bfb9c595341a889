package websocket

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku-backend/internal/protocol"
)

const (
	sendQueueSize = 64

	writeWait  = 10 * time.Second
	readWait   = 60 * time.Second
	pingPeriod = 25 * time.Second

	maxMessageSize = 64 * 1024
)

// connection owns one socket. Outbound messages are queued and written by writePump; a
// connection whose queue overflows is closed.
type connection struct {
	logger *slog.Logger
	ws     *websocket.Conn

	send      chan protocol.Outbound
	done      chan struct{}
	closeOnce sync.Once
}

func newConnection(logger *slog.Logger, ws *websocket.Conn) *connection {
	return &connection{
		logger: logger,
		ws:     ws,
		send:   make(chan protocol.Outbound, sendQueueSize),
		done:   make(chan struct{}),
	}
}

// Send queues msg without blocking.
func (that *connection) Send(msg protocol.Outbound) {
	select {
	case <-that.done:
		return
	default:
	}

	select {
	case that.send <- msg:
	case <-that.done:
	default:
		that.logger.Warn("send queue full, closing connection", "method", "Send", "type", msg.Kind())
		that.Close()
	}
}

// Close shuts the socket down. Safe to call more than once.
func (that *connection) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
		_ = that.ws.Close()
	})
}

// readPump decodes inbound frames and passes them to handle until the socket fails.
func (that *connection) readPump(ctx context.Context, handle func(context.Context, protocol.Inbound)) {
	log := that.logger.With("method", "readPump")

	that.ws.SetReadLimit(maxMessageSize)
	_ = that.ws.SetReadDeadline(time.Now().Add(readWait))
	that.ws.SetPongHandler(func(string) error {
		return that.ws.SetReadDeadline(time.Now().Add(readWait))
	})

	for {
		_, data, err := that.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("unexpected close", "error", err)
			}
			return
		}

		_ = that.ws.SetReadDeadline(time.Now().Add(readWait))

		msg, err := protocol.Decode(data)
		if err != nil {
			log.Debug("dropping message", "error", err)
			continue
		}

		handle(ctx, msg)
	}
}

// writePump writes queued messages and keeps the peer alive with ping frames.
func (that *connection) writePump() {
	log := that.logger.With("method", "writePump")

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		that.Close()
	}()

	for {
		select {
		case msg := <-that.send:
			data, err := protocol.Encode(msg)
			if err != nil {
				log.Error("failed to encode message", "type", msg.Kind(), "error", err)
				continue
			}

			_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err = that.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Debug("failed to write message", "error", err)
				return
			}
		case <-ticker.C:
			_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug("failed to write ping", "error", err)
				return
			}
		case <-that.done:
			return
		}
	}
}

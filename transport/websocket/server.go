package websocket

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku-backend/internal/protocol"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
)

type manager interface {
	Attach(conn usecase.Conn) *usecase.Client
	Detach(client *usecase.Client)
	Handle(ctx context.Context, client *usecase.Client, msg protocol.Inbound)
}

// Server upgrades HTTP requests to WebSocket connections and feeds their messages to the room
// manager.
type Server struct {
	logger   *slog.Logger
	manager  manager
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, manager manager) *Server {
	return &Server{
		logger:  logger.With("component", "websocket"),
		manager: manager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}
}

// ServeHTTP upgrades the request and serves the connection until it closes.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	ws, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Debug("failed to upgrade connection", "error", err)
		return
	}

	conn := newConnection(that.logger, ws)
	client := that.manager.Attach(conn)

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	go conn.writePump()
	conn.readPump(req.Context(), func(ctx context.Context, msg protocol.Inbound) {
		that.manager.Handle(ctx, client, msg)
	})

	that.manager.Detach(client)
	conn.Close()

	log.Info("WebSocket connection closed", "remote", req.RemoteAddr)
}

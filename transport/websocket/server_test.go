package websocket_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/protocol"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
	"github.com/rocketscienceinc/gomoku-backend/transport/websocket"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	accounts, err := repository.NewFileAccountRepository(logger, filepath.Join(t.TempDir(), "accounts.json"))
	require.NoError(t, err)

	manager := usecase.NewManager(logger, accounts, clock.New())
	server := httptest.NewServer(websocket.New(logger, manager))
	t.Cleanup(server.Close)

	return server
}

func dial(t *testing.T, server *httptest.Server) *gorilla.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func write(t *testing.T, conn *gorilla.Conn, msg protocol.Message) {
	t.Helper()

	data, err := protocol.Encode(msg)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(gorilla.TextMessage, data))
}

func read(t *testing.T, conn *gorilla.Conn) protocol.Outbound {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	msg, err := protocol.DecodeOutbound(data)
	require.NoError(t, err)

	return msg
}

func TestServer(t *testing.T) {
	t.Run("answers ping with pong", func(t *testing.T) {
		// Given:
		conn := dial(t, newTestServer(t))

		// When:
		write(t, conn, protocol.Ping{})

		// Then:
		assert.IsType(t, protocol.Pong{}, read(t, conn))
	})

	t.Run("drops malformed frames and keeps the connection", func(t *testing.T) {
		// Given:
		conn := dial(t, newTestServer(t))

		// When:
		require.NoError(t, conn.WriteMessage(gorilla.TextMessage, []byte("{not json")))
		require.NoError(t, conn.WriteMessage(gorilla.TextMessage, []byte(`{"type":"teleport"}`)))
		write(t, conn, protocol.Ping{})

		// Then:
		assert.IsType(t, protocol.Pong{}, read(t, conn))
	})

	t.Run("registers and creates a room", func(t *testing.T) {
		// Given:
		conn := dial(t, newTestServer(t))

		// When:
		write(t, conn, protocol.Register{Username: "alice", Password: "pw"})
		auth := read(t, conn)
		write(t, conn, protocol.CreateRoom{})
		created := read(t, conn)

		// Then:
		require.IsType(t, protocol.AuthOK{}, auth)
		assert.Equal(t, "alice", auth.(protocol.AuthOK).Username)
		require.IsType(t, protocol.RoomCreated{}, created)
		assert.Equal(t, "room-1001", created.(protocol.RoomCreated).RoomID)
	})

	t.Run("rejects room messages before authentication", func(t *testing.T) {
		// Given:
		conn := dial(t, newTestServer(t))

		// When:
		write(t, conn, protocol.ListRooms{})

		// Then:
		msg := read(t, conn)
		require.IsType(t, protocol.Error{}, msg)
		assert.Equal(t, "AuthRequired", string(msg.(protocol.Error).Code))
	})
}

package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/protocol"
)

const (
	MaxRooms       = 5
	ReconnectGrace = 60 * time.Second

	firstRoomNumber = 1001
)

// Conn delivers messages to one client connection. Send must not block.
type Conn interface {
	Send(msg protocol.Outbound)
}

// Client is one attached connection. Its identity is set once it authenticates.
type Client struct {
	conn     Conn
	identity *identity
}

func (that *Client) Send(msg protocol.Outbound) {
	that.conn.Send(msg)
}

type accountRepo interface {
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)
	Create(ctx context.Context, account *entity.Account) error
}

type handler struct {
	fn func(ctx context.Context, client *Client, msg protocol.Inbound)
	// public handlers run without the lock and without an identity.
	public bool
}

// Manager is the single authority over rooms, seats and sessions. Every inbound message is
// processed to completion under one mutex.
type Manager struct {
	logger   *slog.Logger
	clock    clock.Clock
	accounts accountRepo

	mu       sync.Mutex
	clients  map[*Client]struct{}
	rooms    map[string]*room
	sessions *sessions
	// seated maps a credential to the id of the room where it holds a seat.
	seated   map[string]string
	nextRoom int

	handlers map[protocol.Type]handler
}

func NewManager(logger *slog.Logger, accounts accountRepo, clk clock.Clock) *Manager {
	manager := &Manager{
		logger:   logger.With("component", "manager"),
		clock:    clk,
		accounts: accounts,

		clients:  make(map[*Client]struct{}),
		rooms:    make(map[string]*room),
		sessions: newSessions(),
		seated:   make(map[string]string),
		nextRoom: firstRoomNumber,
	}

	manager.handlers = map[protocol.Type]handler{
		protocol.TypePing:           {fn: on(manager.ping), public: true},
		protocol.TypeRegister:       {fn: on(manager.register), public: true},
		protocol.TypeLogin:          {fn: on(manager.login), public: true},
		protocol.TypeAuthWithToken:  {fn: on(manager.authWithToken), public: true},
		protocol.TypeListRooms:      {fn: on(manager.listRooms)},
		protocol.TypeCreateRoom:     {fn: on(manager.createRoom)},
		protocol.TypeJoinRoom:       {fn: on(manager.joinRoom)},
		protocol.TypeLeaveRoom:      {fn: on(manager.leaveRoom)},
		protocol.TypeReady:          {fn: on(manager.ready)},
		protocol.TypeActionIntent:   {fn: on(manager.dispatchAction)},
		protocol.TypeRematchRequest: {fn: on(manager.requestRematch)},
	}

	return manager
}

// on adapts a typed handler to the handler table.
func on[T protocol.Inbound](fn func(context.Context, *Client, T)) func(context.Context, *Client, protocol.Inbound) {
	return func(ctx context.Context, client *Client, msg protocol.Inbound) {
		if typed, ok := msg.(T); ok {
			fn(ctx, client, typed)
		}
	}
}

// Attach registers a new connection.
func (that *Manager) Attach(conn Conn) *Client {
	client := &Client{conn: conn}

	that.mu.Lock()
	that.clients[client] = struct{}{}
	that.mu.Unlock()

	return client
}

// Detach forgets a closed connection and starts the grace period of its seat, if any.
func (that *Manager) Detach(client *Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.clients, client)
	that.disconnect(client)
}

// Handle processes one decoded message from client.
func (that *Manager) Handle(ctx context.Context, client *Client, msg protocol.Inbound) {
	h, ok := that.handlers[msg.Kind()]
	if !ok {
		that.logger.Debug("no handler for message", "type", msg.Kind())
		return
	}

	if h.public {
		h.fn(ctx, client, msg)
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if client.identity == nil && msg.Kind() != protocol.TypeJoinRoom {
		client.Send(protocol.NewError(apperror.ErrAuthRequired))
		return
	}

	h.fn(ctx, client, msg)
}

func (that *Manager) ping(_ context.Context, client *Client, _ protocol.Ping) {
	client.Send(protocol.Pong{})
}

// seatOf returns the room and seat held by client's identity. Called with mu held.
func (that *Manager) seatOf(client *Client) (*room, entity.Seat, bool) {
	if client.identity == nil {
		return nil, "", false
	}

	roomID, ok := that.seated[client.identity.credential]
	if !ok {
		return nil, "", false
	}

	r, ok := that.rooms[roomID]
	if !ok {
		delete(that.seated, client.identity.credential)
		return nil, "", false
	}

	s, ok := r.seatOf(client.identity.credential)
	if !ok {
		delete(that.seated, client.identity.credential)
		return nil, "", false
	}

	return r, s, true
}

package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/protocol"
)

type accountRepoMock struct {
	mock.Mock
}

func (that *accountRepoMock) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	args := that.Called(ctx, username)
	account, _ := args.Get(0).(*entity.Account)
	return account, args.Error(1)
}

func (that *accountRepoMock) Create(ctx context.Context, account *entity.Account) error {
	return that.Called(ctx, account).Error(0)
}

// fakeConn records everything the manager sends.
type fakeConn struct {
	mu   sync.Mutex
	msgs []protocol.Outbound
}

func (that *fakeConn) Send(msg protocol.Outbound) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.msgs = append(that.msgs, msg)
}

func (that *fakeConn) all() []protocol.Outbound {
	that.mu.Lock()
	defer that.mu.Unlock()

	out := make([]protocol.Outbound, len(that.msgs))
	copy(out, that.msgs)

	return out
}

func (that *fakeConn) reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.msgs = nil
}

func messagesOf[T protocol.Outbound](conn *fakeConn) []T {
	var out []T
	for _, msg := range conn.all() {
		if typed, ok := msg.(T); ok {
			out = append(out, typed)
		}
	}

	return out
}

func lastOf[T protocol.Outbound](t *testing.T, conn *fakeConn) T {
	t.Helper()

	msgs := messagesOf[T](conn)
	require.NotEmpty(t, msgs, "no %T received", *new(T))

	return msgs[len(msgs)-1]
}

type harness struct {
	t        *testing.T
	ctx      context.Context
	clock    *clock.Mock
	accounts *accountRepoMock
	manager  *Manager
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	accounts := &accountRepoMock{}
	accounts.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

	clk := clock.NewMock()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return &harness{
		t:        t,
		ctx:      context.Background(),
		clock:    clk,
		accounts: accounts,
		manager:  NewManager(logger, accounts, clk),
	}
}

type player struct {
	client *Client
	conn   *fakeConn
	token  string
}

func (that *harness) connect() player {
	conn := &fakeConn{}
	return player{client: that.manager.Attach(conn), conn: conn}
}

// register connects and signs up a new account named name.
func (that *harness) register(name string) player {
	that.t.Helper()

	p := that.connect()
	that.send(p, protocol.Register{Username: name, Password: "pw"})
	p.token = lastOf[protocol.AuthOK](that.t, p.conn).Token
	p.conn.reset()

	return p
}

// reconnect opens a new connection for the identity of p.
func (that *harness) reconnect(p player) player {
	that.t.Helper()

	next := that.connect()
	next.token = p.token
	that.send(next, protocol.AuthWithToken{Token: p.token})
	lastOf[protocol.AuthOK](that.t, next.conn)
	next.conn.reset()

	return next
}

func (that *harness) send(p player, msg protocol.Inbound) {
	that.manager.Handle(that.ctx, p.client, msg)
}

func (that *harness) place(p player, seq int, color entity.Color, x, y int) {
	action := entity.PlaceAction(color, x, y)
	that.send(p, protocol.ActionIntent{Seq: seq, Action: &action})
}

func (that *harness) skill(p player, seq int, color entity.Color, target entity.SkillTarget) {
	action := entity.SkillAction(color, target)
	that.send(p, protocol.ActionIntent{Seq: seq, Action: &action})
}

// startMatch registers two players, seats them in room-1001 and readies both.
func (that *harness) startMatch() (player, player) {
	that.t.Helper()

	alice := that.register("alice")
	bob := that.register("bob")

	that.send(alice, protocol.CreateRoom{PreferredColor: entity.ColorBlack})
	that.send(bob, protocol.JoinRoom{RoomID: "room-1001"})
	that.send(alice, protocol.Ready{})
	that.send(bob, protocol.Ready{})

	require.Equal(that.t, 2, that.version("room-1001"))
	alice.conn.reset()
	bob.conn.reset()

	return alice, bob
}

func (that *harness) version(roomID string) int {
	that.manager.mu.Lock()
	defer that.manager.mu.Unlock()

	r, ok := that.manager.rooms[roomID]
	if !ok {
		return 0
	}

	return r.version
}

func (that *harness) occupants(roomID string) int {
	that.manager.mu.Lock()
	defer that.manager.mu.Unlock()

	r, ok := that.manager.rooms[roomID]
	if !ok {
		return 0
	}

	return r.occupants()
}

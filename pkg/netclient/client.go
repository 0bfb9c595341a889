// Package netclient is a reconnecting WebSocket client for the game server. It keeps the link
// alive with JSON pings and redials with exponential back-off whenever the link drops.
package netclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/coder/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/gomoku-backend/internal/protocol"
)

var (
	ErrNotConnected = errors.New("not connected")
	ErrPongTimeout  = errors.New("no pong received in time")
)

const readLimit = 1 << 20

type Config struct {
	URL string

	PingInterval   time.Duration
	PongTimeout    time.Duration
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// OnConnect runs after every successful dial, before messages are read.
	OnConnect func(ctx context.Context, client *Client)
	// OnMessage receives every decoded server message in arrival order.
	OnMessage func(msg protocol.Outbound)
}

func (that *Config) withDefaults() {
	if that.PingInterval == 0 {
		that.PingInterval = 10 * time.Second
	}
	if that.PongTimeout == 0 {
		that.PongTimeout = 30 * time.Second
	}
	if that.InitialBackoff == 0 {
		that.InitialBackoff = time.Second
	}
	if that.MaxBackoff == 0 {
		that.MaxBackoff = 8 * time.Second
	}
}

type Client struct {
	logger *slog.Logger
	config Config

	mu   sync.Mutex
	conn *websocket.Conn

	lastPong atomic.Int64
}

func New(logger *slog.Logger, config Config) *Client {
	config.withDefaults()

	return &Client{
		logger: logger.With("component", "netclient"),
		config: config,
	}
}

// Run dials the server and keeps the link up until ctx is cancelled.
func (that *Client) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for {
		conn, err := backoff.RetryNotifyWithData(
			func() (*websocket.Conn, error) {
				return that.dial(ctx)
			},
			backoff.WithContext(that.backoff(), ctx),
			func(err error, wait time.Duration) {
				log.Warn("dial failed, retrying", "error", err, "wait", wait)
			},
		)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to connect: %w", err)
		}

		log.Info("connected", "url", that.config.URL)

		err = that.serve(ctx, conn)
		if ctx.Err() != nil {
			return nil
		}

		log.Warn("connection lost", "error", err)
	}
}

// Send writes msg to the current connection.
func (that *Client) Send(ctx context.Context, msg protocol.Inbound) error {
	that.mu.Lock()
	conn := that.conn
	that.mu.Unlock()

	if conn == nil {
		return ErrNotConnected
	}

	data, err := protocol.Encode(msg)
	if err != nil {
		return err
	}

	if err = conn.Write(ctx, websocket.MessageText, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", msg.Kind(), err)
	}

	return nil
}

func (that *Client) backoff() backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = that.config.InitialBackoff
	policy.MaxInterval = that.config.MaxBackoff
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxElapsedTime = 0

	return policy
}

func (that *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	conn, _, err := websocket.Dial(ctx, that.config.URL, nil)
	if err != nil {
		return nil, err
	}

	conn.SetReadLimit(readLimit)

	return conn, nil
}

// serve runs the reader and the heartbeat on conn until either fails.
func (that *Client) serve(ctx context.Context, conn *websocket.Conn) error {
	that.mu.Lock()
	that.conn = conn
	that.mu.Unlock()

	that.lastPong.Store(time.Now().UnixNano())

	defer func() {
		that.mu.Lock()
		that.conn = nil
		that.mu.Unlock()

		_ = conn.Close(websocket.StatusNormalClosure, "bye")
	}()

	group, groupCtx := errgroup.WithContext(ctx)

	if that.config.OnConnect != nil {
		that.config.OnConnect(groupCtx, that)
	}

	group.Go(func() error {
		return that.readLoop(groupCtx, conn)
	})
	group.Go(func() error {
		return that.heartbeat(groupCtx)
	})

	return group.Wait()
}

func (that *Client) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return fmt.Errorf("failed to read: %w", err)
		}

		msg, err := protocol.DecodeOutbound(data)
		if err != nil {
			that.logger.Debug("dropping message", "method", "readLoop", "error", err)
			continue
		}

		if _, ok := msg.(protocol.Pong); ok {
			that.lastPong.Store(time.Now().UnixNano())
		}

		if that.config.OnMessage != nil {
			that.config.OnMessage(msg)
		}
	}
}

func (that *Client) heartbeat(ctx context.Context) error {
	ticker := time.NewTicker(that.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if time.Since(time.Unix(0, that.lastPong.Load())) > that.config.PongTimeout {
			return ErrPongTimeout
		}

		if err := that.Send(ctx, protocol.Ping{}); err != nil {
			return err
		}
	}
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/protocol"
)

func (that *Manager) register(ctx context.Context, client *Client, msg protocol.Register) {
	log := that.logger.With("method", "register")

	username := strings.TrimSpace(msg.Username)
	if username == "" || strings.TrimSpace(msg.Password) == "" {
		client.Send(protocol.NewAuthError(apperror.ErrBlankCredentials))
		return
	}

	err := that.accounts.Create(ctx, &entity.Account{Username: username, Password: msg.Password})
	if errors.Is(err, apperror.ErrAlreadyExists) {
		client.Send(protocol.NewAuthError(apperror.ErrUserExists))
		return
	}

	if err != nil {
		log.Error("failed to create account", "username", username, "error", err)
		client.Send(protocol.NewAuthError(err))
		return
	}

	log.Info("account registered", "username", username)
	that.authenticate(client, username)
}

func (that *Manager) login(ctx context.Context, client *Client, msg protocol.Login) {
	log := that.logger.With("method", "login")

	username := strings.TrimSpace(msg.Username)

	account, err := that.accounts.GetByUsername(ctx, username)
	if errors.Is(err, apperror.ErrNotFound) || (err == nil && account.Password != msg.Password) {
		client.Send(protocol.NewAuthError(apperror.ErrAuthFailed))
		return
	}

	if err != nil {
		log.Error("failed to look up account", "username", username, "error", err)
		client.Send(protocol.NewAuthError(err))
		return
	}

	that.authenticate(client, username)
}

func (that *Manager) authWithToken(_ context.Context, client *Client, msg protocol.AuthWithToken) {
	that.mu.Lock()
	defer that.mu.Unlock()

	id, ok := that.sessions.lookup(msg.Token)
	if !ok || id.guest {
		client.Send(protocol.NewAuthError(apperror.ErrTokenExpired))
		return
	}

	that.bind(client, id)
	client.Send(protocol.AuthOK{Username: id.name, Token: id.credential})
}

// authenticate issues a fresh token for username and binds it to client.
func (that *Manager) authenticate(client *Client, username string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	id := that.sessions.issue(username, false)
	that.bind(client, id)
	client.Send(protocol.AuthOK{Username: id.name, Token: id.credential})
}

// authenticateGuest binds client to the guest session sessionID, or to a new one when the id is
// unknown. Called with mu held.
func (that *Manager) authenticateGuest(client *Client, playerName, sessionID string) *identity {
	id, ok := that.sessions.lookup(sessionID)
	if !ok || !id.guest {
		id = that.sessions.issue(strings.TrimSpace(playerName), true)
	}

	that.bind(client, id)

	return id
}

// bind switches client to id. A seat held through the previous identity is treated as
// disconnected. Called with mu held.
func (that *Manager) bind(client *Client, id *identity) {
	if client.identity != nil && client.identity != id {
		that.disconnect(client)
	}

	client.identity = id
}

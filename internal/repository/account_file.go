package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// fileAccount holds accounts in memory and rewrites the whole JSON file on every change.
type fileAccount struct {
	logger *slog.Logger
	path   string

	mu       sync.RWMutex
	accounts map[string]string
}

// NewFileAccountRepository loads the accounts file at path, creating it with an empty object
// when it does not exist.
func NewFileAccountRepository(logger *slog.Logger, path string) (AccountRepository, error) {
	repo := &fileAccount{
		logger:   logger.With("component", "accounts", "path", path),
		path:     path,
		accounts: make(map[string]string),
	}

	if err := repo.load(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (that *fileAccount) GetByUsername(_ context.Context, username string) (*entity.Account, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	password, ok := that.accounts[username]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", username, apperror.ErrNotFound)
	}

	return &entity.Account{Username: username, Password: password}, nil
}

func (that *fileAccount) Create(_ context.Context, account *entity.Account) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.accounts[account.Username]; ok {
		return fmt.Errorf("account %q: %w", account.Username, apperror.ErrAlreadyExists)
	}

	that.accounts[account.Username] = account.Password

	if err := that.save(); err != nil {
		delete(that.accounts, account.Username)
		return err
	}

	return nil
}

func (that *fileAccount) load() error {
	log := that.logger.With("method", "load")

	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("accounts file not found, creating an empty one")
		return that.save()
	}

	if err != nil {
		return fmt.Errorf("failed to read accounts file: %w", err)
	}

	var stored map[string]string
	if err = json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("failed to parse accounts file: %w", err)
	}

	for username, password := range stored {
		if username != "" {
			that.accounts[username] = password
		}
	}

	log.Info("accounts loaded", "count", len(that.accounts))

	return nil
}

// save must be called with mu held for writing, or before the repository is shared.
func (that *fileAccount) save() error {
	if err := os.MkdirAll(filepath.Dir(that.path), 0o755); err != nil {
		return fmt.Errorf("failed to create accounts directory: %w", err)
	}

	data, err := json.MarshalIndent(that.accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal accounts: %w", err)
	}

	if err = os.WriteFile(that.path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write accounts file: %w", err)
	}

	return nil
}

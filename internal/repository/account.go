package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const accountsKey = "gomoku:accounts"

type AccountRepository interface {
	// GetByUsername returns apperror.ErrNotFound for unknown usernames.
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)
	// Create returns apperror.ErrAlreadyExists when the username is taken.
	Create(ctx context.Context, account *entity.Account) error
}

// redisAccount keeps every account as a field of one Redis hash.
type redisAccount struct {
	client *redis.Client
}

func NewRedisAccountRepository(client *redis.Client) AccountRepository {
	return &redisAccount{
		client: client,
	}
}

func (that *redisAccount) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	password, err := that.client.HGet(ctx, accountsKey, username).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("account %q: %w", username, apperror.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &entity.Account{Username: username, Password: password}, nil
}

func (that *redisAccount) Create(ctx context.Context, account *entity.Account) error {
	created, err := that.client.HSetNX(ctx, accountsKey, account.Username, account.Password).Result()
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	if !created {
		return fmt.Errorf("account %q: %w", account.Username, apperror.ErrAlreadyExists)
	}

	return nil
}

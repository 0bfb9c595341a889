package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
	"github.com/rocketscienceinc/gomoku-backend/transport/rest"
	"github.com/rocketscienceinc/gomoku-backend/transport/websocket"
)

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	accounts, closeAccounts, err := openAccounts(ctx, logger, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeAccounts(); err != nil {
			log.Error("could not close account storage", "error", err)
		}
	}()

	manager := usecase.NewManager(logger, accounts, clock.New())
	router := rest.NewRouter(websocket.New(logger, manager))

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.Port)
		if httpErr := rest.Start(groupCtx, conf.Port, router); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")
	return nil
}

func openAccounts(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.AccountRepository, func() error, error) {
	if conf.AccountsBackend == config.AccountsBackendRedis {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisAccountRepository(redisStorage.Connection), redisStorage.Close, nil
	}

	accounts, err := repository.NewFileAccountRepository(logger, conf.AccountsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open accounts file: %w", err)
	}

	return accounts, func() error { return nil }, nil
}

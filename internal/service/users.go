// Package service holds orchestration logic that spans multiple stores.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/store"
)

// UserService handles user lifecycle operations that touch more than one
// store and therefore need a transaction.
type UserService struct {
	db            *sql.DB
	userStore     store.UserStore
	progressStore store.ProgressStore
	logger        *slog.Logger
}

// NewUserService creates a UserService backed by the given database handle
// and stores.
func NewUserService(
	db *sql.DB,
	userStore store.UserStore,
	progressStore store.ProgressStore,
	logger *slog.Logger,
) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		db:            db,
		userStore:     userStore,
		progressStore: progressStore,
		logger:        logger.With(slog.String("component", "user_service")),
	}
}

// Register creates the user account together with its initial empty
// progress record in a single transaction. A half-registered account with
// no progress row is never observable.
func (s *UserService) Register(ctx context.Context, user *domain.User) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.userStore.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		return s.progressStore.WithTx(tx).Save(ctx, user.ID, domain.NewProgress())
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register an existing email",
				"email", user.Email)
		} else {
			s.logger.Error("failed to register user",
				"error", err,
				"email", user.Email)
		}
		return fmt.Errorf("registering user: %w", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"email", user.Email)
	return nil
}

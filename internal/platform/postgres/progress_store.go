package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/platform/logger"
	"github.com/mkurosawa/kotoba-api/internal/store"
)

// PostgresProgressStore implements the store.ProgressStore interface using
// a PostgreSQL database as the storage backend. Each user's progress is kept
// as a single JSONB document and always written in full, so a read observes
// a complete snapshot.
type PostgresProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProgressStore creates a new PostgreSQL implementation of the
// ProgressStore interface. If logger is nil, the default logger is used.
func NewPostgresProgressStore(db store.DBTX, logger *slog.Logger) *PostgresProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

var _ store.ProgressStore = (*PostgresProgressStore)(nil)

// progressRecord is the JSONB document stored per user.
type progressRecord struct {
	MasteredIDs   []string       `json:"mastered_ids"`
	WeakIDs       map[string]int `json:"weak_ids"`
	SuccessCounts map[string]int `json:"success_counts"`
}

// Get implements store.ProgressStore.Get.
// A user without a stored record gets a fresh empty one, not an error.
func (s *PostgresProgressStore) Get(ctx context.Context, userID uuid.UUID) (*domain.Progress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT record
		FROM progress_records
		WHERE user_id = $1
	`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no progress record, returning fresh",
				slog.String("user_id", userID.String()))
			return domain.NewProgress(), nil
		}
		log.Error("failed to get progress record",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	var record progressRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Error("failed to decode progress record",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to decode progress record: %w", err)
	}

	progress := domain.NewProgress()
	for _, id := range record.MasteredIDs {
		progress.MasteredIDs[id] = true
	}
	for id, count := range record.WeakIDs {
		progress.WeakIDs[id] = count
	}
	for id, count := range record.SuccessCounts {
		progress.SuccessCounts[id] = count
	}

	if err := progress.Validate(); err != nil {
		log.Error("stored progress record is invalid",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	return progress, nil
}

// Save implements store.ProgressStore.Save.
// The record is upserted in full, creating it on the user's first answer.
func (s *PostgresProgressStore) Save(ctx context.Context, userID uuid.UUID, progress *domain.Progress) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := progress.Validate(); err != nil {
		log.Warn("progress validation failed during save",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	record := progressRecord{
		MasteredIDs:   make([]string, 0, len(progress.MasteredIDs)),
		WeakIDs:       progress.WeakIDs,
		SuccessCounts: progress.SuccessCounts,
	}
	for id := range progress.MasteredIDs {
		record.MasteredIDs = append(record.MasteredIDs, id)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode progress record: %w", err)
	}

	query := `
		INSERT INTO progress_records (user_id, record, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET record = EXCLUDED.record, updated_at = EXCLUDED.updated_at
	`

	now := time.Now().UTC()
	if _, err := s.db.ExecContext(ctx, query, userID, data, now); err != nil {
		log.Error("failed to save progress record",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return MapError(err)
	}

	log.Debug("progress record saved",
		slog.String("user_id", userID.String()),
		slog.Int("mastered", len(record.MasteredIDs)))
	return nil
}

// WithTx implements store.ProgressStore.WithTx.
func (s *PostgresProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return &PostgresProgressStore{
		db:     tx,
		logger: s.logger,
	}
}

package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jackc/pgx/v5"

	"github.com/magicjourney/backend/internal/domain"
)

// Settings keys. Each value is an opaque JSON document read and written whole.
const (
	KeyUserPreferences = "userPreferences"
	KeyVisitDate       = "visitDate"
)

const upsertSettingSQL = `
	INSERT INTO settings (key, value)
	VALUES (@key, @value)
	ON CONFLICT (key) DO UPDATE
	SET value      = EXCLUDED.value,
	    updated_at = now()`

// SettingsRepo is a key/value store of JSON documents.
type SettingsRepo interface {
	// Get returns the raw value for key.
	// Returns domain.ErrNotFound if the key has never been written.
	Get(ctx context.Context, key string) (json.RawMessage, error)

	// Put replaces the value for key.
	Put(ctx context.Context, key string, value json.RawMessage) error

	// PutAll replaces every key in values atomically: either all keys are
	// written or none is.
	PutAll(ctx context.Context, values map[string]json.RawMessage) error
}

// pgSettingsRepo is the Postgres implementation of SettingsRepo.
type pgSettingsRepo struct {
	db db
}

// NewSettingsRepo constructs a SettingsRepo backed by the provided db connection.
func NewSettingsRepo(db db) SettingsRepo {
	return &pgSettingsRepo{db: db}
}

func (r *pgSettingsRepo) Get(ctx context.Context, key string) (json.RawMessage, error) {
	const q = `SELECT value FROM settings WHERE key = @key`

	var raw []byte
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repo.SettingsRepo.Get: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.SettingsRepo.Get: %w", err)
	}
	return json.RawMessage(raw), nil
}

func (r *pgSettingsRepo) Put(ctx context.Context, key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return fmt.Errorf("repo.SettingsRepo.Put: %w: value for %q is not valid JSON", domain.ErrValidation, key)
	}

	if _, err := r.db.Exec(ctx, upsertSettingSQL, pgx.NamedArgs{"key": key, "value": []byte(value)}); err != nil {
		return fmt.Errorf("repo.SettingsRepo.Put: %w", err)
	}
	return nil
}

// PutAll sends one upsert per key in a single batch. pgx runs a batch in an
// implicit transaction, so a failure on any key leaves every key unchanged.
func (r *pgSettingsRepo) PutAll(ctx context.Context, values map[string]json.RawMessage) error {
	keys := slices.Sorted(maps.Keys(values))
	batch := &pgx.Batch{}
	for _, key := range keys {
		if !json.Valid(values[key]) {
			return fmt.Errorf("repo.SettingsRepo.PutAll: %w: value for %q is not valid JSON", domain.ErrValidation, key)
		}
		batch.Queue(upsertSettingSQL, pgx.NamedArgs{"key": key, "value": []byte(values[key])})
	}
	if batch.Len() == 0 {
		return nil
	}

	results := r.db.SendBatch(ctx, batch)
	for _, key := range keys {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("repo.SettingsRepo.PutAll: %s: %w", key, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("repo.SettingsRepo.PutAll: %w", err)
	}
	return nil
}

package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/magicjourney/backend/internal/domain"
)

// FavoriteRepo defines the persistence operations for Favorites.
// Favorites are identified by (kind, record_id).
type FavoriteRepo interface {
	// List returns all favorites, oldest first.
	List(ctx context.Context) (domain.Favorites, error)

	// Add inserts a favorite and returns it with created_at populated.
	// Adding an existing favorite returns the stored row unchanged.
	Add(ctx context.Context, f domain.Favorite) (domain.Favorite, error)

	// Delete removes a favorite. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, kind domain.RecordKind, recordID string) error
}

// pgFavoriteRepo is the Postgres implementation of FavoriteRepo.
type pgFavoriteRepo struct {
	db db
}

// NewFavoriteRepo constructs a FavoriteRepo backed by the provided db connection.
func NewFavoriteRepo(db db) FavoriteRepo {
	return &pgFavoriteRepo{db: db}
}

func (r *pgFavoriteRepo) List(ctx context.Context) (domain.Favorites, error) {
	const q = `
		SELECT kind, record_id, name, land, created_at
		FROM favorites
		ORDER BY created_at ASC, kind ASC, record_id ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.FavoriteRepo.List: %w", err)
	}
	defer rows.Close()

	favs := domain.Favorites{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.FavoriteRepo.List: scan: %w", err)
		}
		favs = append(favs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.FavoriteRepo.List: rows: %w", err)
	}
	return favs, nil
}

// Add uses a no-op update on conflict so RETURNING always yields the row.
func (r *pgFavoriteRepo) Add(ctx context.Context, f domain.Favorite) (domain.Favorite, error) {
	const q = `
		INSERT INTO favorites (kind, record_id, name, land)
		VALUES (@kind, @record_id, @name, @land)
		ON CONFLICT (kind, record_id) DO UPDATE SET kind = EXCLUDED.kind
		RETURNING kind, record_id, name, land, created_at`

	args := pgx.NamedArgs{
		"kind":      string(f.Kind),
		"record_id": f.RecordID,
		"name":      f.Name,
		"land":      f.Land,
	}
	got, err := scanFavorite(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("repo.FavoriteRepo.Add: %w", err)
	}
	return got, nil
}

func (r *pgFavoriteRepo) Delete(ctx context.Context, kind domain.RecordKind, recordID string) error {
	const q = `DELETE FROM favorites WHERE kind = @kind AND record_id = @record_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"kind": string(kind), "record_id": recordID})
	if err != nil {
		return fmt.Errorf("repo.FavoriteRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.FavoriteRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanFavorite(s scanner) (domain.Favorite, error) {
	var (
		f    domain.Favorite
		kind string
	)
	if err := s.Scan(&kind, &f.RecordID, &f.Name, &f.Land, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Favorite{}, domain.ErrNotFound
		}
		return domain.Favorite{}, err
	}
	f.Kind = domain.RecordKind(kind)
	return f, nil
}

// Package repo contains all database access logic for the Magic Journey API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/magicjourney/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PlanRepo persists day plans. A day is always read and written as a whole
// snapshot of its ordered activities; there is no per-activity update.
type PlanRepo interface {
	// GetDay returns the stored activities for day in stored order.
	// A day that was never saved yields an empty slice, not an error.
	GetDay(ctx context.Context, day domain.Day) ([]domain.Activity, error)

	// SaveDay replaces the snapshot for day. Saving an empty slice deletes it.
	SaveDay(ctx context.Context, day domain.Day, activities []domain.Activity) error

	// ListDays returns every day with a stored snapshot, ascending.
	ListDays(ctx context.Context) ([]domain.Day, error)

	// ListAll returns every stored activity ordered by day then position.
	ListAll(ctx context.Context) ([]domain.Activity, error)
}

// pgPlanRepo is the Postgres implementation of PlanRepo.
type pgPlanRepo struct {
	db db
}

// NewPlanRepo constructs a PlanRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPlanRepo(db db) PlanRepo {
	return &pgPlanRepo{db: db}
}

// GetDay loads one day's snapshot.
func (r *pgPlanRepo) GetDay(ctx context.Context, day domain.Day) ([]domain.Activity, error) {
	const q = `SELECT day, activities FROM day_plans WHERE day = @day`

	_, activities, err := scanDayPlan(r.db.QueryRow(ctx, q, pgx.NamedArgs{"day": day.Time()}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Activity{}, nil
		}
		return nil, fmt.Errorf("repo.PlanRepo.GetDay: %w", err)
	}
	return activities, nil
}

// SaveDay upserts the day's snapshot, or deletes it when activities is empty.
func (r *pgPlanRepo) SaveDay(ctx context.Context, day domain.Day, activities []domain.Activity) error {
	if len(activities) == 0 {
		const del = `DELETE FROM day_plans WHERE day = @day`
		if _, err := r.db.Exec(ctx, del, pgx.NamedArgs{"day": day.Time()}); err != nil {
			return fmt.Errorf("repo.PlanRepo.SaveDay: delete: %w", err)
		}
		return nil
	}

	raw, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("repo.PlanRepo.SaveDay: marshal: %w", err)
	}

	const q = `
		INSERT INTO day_plans (day, activities)
		VALUES (@day, @activities)
		ON CONFLICT (day) DO UPDATE
		SET activities = EXCLUDED.activities,
		    updated_at = now()`

	args := pgx.NamedArgs{
		"day":        day.Time(),
		"activities": raw,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.PlanRepo.SaveDay: %w", err)
	}
	return nil
}

// ListDays returns the stored days ascending.
func (r *pgPlanRepo) ListDays(ctx context.Context) ([]domain.Day, error) {
	const q = `SELECT day FROM day_plans ORDER BY day ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PlanRepo.ListDays: %w", err)
	}
	defer rows.Close()

	days := []domain.Day{}
	for rows.Next() {
		var d pgtype.Date
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("repo.PlanRepo.ListDays: scan: %w", err)
		}
		days = append(days, domain.NewDay(d.Time))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PlanRepo.ListDays: rows: %w", err)
	}
	return days, nil
}

// ListAll returns every activity across all days.
func (r *pgPlanRepo) ListAll(ctx context.Context) ([]domain.Activity, error) {
	const q = `SELECT day, activities FROM day_plans ORDER BY day ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PlanRepo.ListAll: %w", err)
	}
	defer rows.Close()

	all := []domain.Activity{}
	for rows.Next() {
		_, activities, err := scanDayPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PlanRepo.ListAll: scan: %w", err)
		}
		all = append(all, activities...)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PlanRepo.ListAll: rows: %w", err)
	}
	return all, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanDayPlan maps a (day, activities) row. The day column is authoritative:
// it overwrites whatever day the JSON snapshot carries, and positions are
// renumbered from the stored order.
func scanDayPlan(s scanner) (domain.Day, []domain.Activity, error) {
	var (
		d   pgtype.Date
		raw []byte
	)
	if err := s.Scan(&d, &raw); err != nil {
		return "", nil, err
	}

	day := domain.NewDay(d.Time)
	var activities []domain.Activity
	if err := json.Unmarshal(raw, &activities); err != nil {
		return "", nil, fmt.Errorf("decode activities for %s: %w", day, err)
	}
	for i := range activities {
		activities[i].Day = day
		activities[i].Position = i
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return day, activities, nil
}

package applications

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const applicationColumns = `id, user_id, job_id, document_id, teaching_style, availability, is_confirmed, status, created_at, updated_at`

const uniqueViolation = "23505"

func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO job_applications (` + applicationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	availability, err := json.Marshal(nonNilSlots(app.Availability))
	if err != nil {
		return fmt.Errorf("encode availability: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		app.ID,
		app.UserID,
		app.JobID,
		app.DocumentID,
		app.TeachingStyle,
		availability,
		app.IsConfirmed,
		app.Status,
		app.CreatedAt,
		app.UpdatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrAlreadyApplied
	}
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE id = $1`
	app, err := scanApplication(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Application{}, ErrNotFound
	}
	return app, err
}

func (r *PGRepo) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM job_applications WHERE user_id = $1 AND job_id = $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, userID, jobID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Application, error) {
	query := `SELECT ` + applicationColumns + `
FROM job_applications
WHERE user_id = $1
ORDER BY created_at DESC, id ASC`
	return r.list(ctx, query, userID)
}

func (r *PGRepo) ListByJobs(ctx context.Context, jobIDs []string) ([]Application, error) {
	if len(jobIDs) == 0 {
		return []Application{}, nil
	}
	placeholders := make([]string, len(jobIDs))
	args := make([]any, len(jobIDs))
	for i, id := range jobIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := `SELECT ` + applicationColumns + `
FROM job_applications
WHERE job_id IN (` + strings.Join(placeholders, ", ") + `)
ORDER BY created_at DESC, id ASC`
	return r.list(ctx, query, args...)
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	const query = `
UPDATE job_applications
SET status = $2, updated_at = $3
WHERE id = $1 AND status = $4`
	res, err := r.DB.ExecContext(ctx, query, id, status, at, StatusPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrInvalidTransition
}

func (r *PGRepo) list(ctx context.Context, query string, args ...any) ([]Application, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (Application, error) {
	var app Application
	var style sql.NullString
	var availability []byte
	err := row.Scan(
		&app.ID,
		&app.UserID,
		&app.JobID,
		&app.DocumentID,
		&style,
		&availability,
		&app.IsConfirmed,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return Application{}, err
	}
	app.TeachingStyle = style.String
	app.Availability = []Slot{}
	if len(availability) > 0 {
		if err := json.Unmarshal(availability, &app.Availability); err != nil {
			return Application{}, fmt.Errorf("decode availability: %w", err)
		}
	}
	return app, nil
}

func nonNilSlots(s []Slot) []Slot {
	if s == nil {
		return []Slot{}
	}
	return s
}

var _ Repo = (*PGRepo)(nil)

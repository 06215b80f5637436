package feedback

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, e Entry) error {
	const query = `
INSERT INTO feedback (id, user_id, full_name, user_email, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		nullableString(e.FullName),
		nullableString(e.UserEmail),
		e.Rating,
		nullableString(e.Comment),
		e.CreatedAt,
	)
	return err
}

func (r *PGRepo) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > 200 {
		limit = 200
	}
	const query = `
SELECT id, user_id, full_name, user_email, rating, comment, created_at
FROM feedback
ORDER BY created_at DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var e Entry
		var name, email, comment sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &name, &email, &e.Rating, &comment, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.FullName = name.String
		e.UserEmail = email.String
		e.Comment = comment.String
		out = append(out, e)
	}
	return out, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)

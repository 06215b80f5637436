package users

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts the user or refreshes role and last_seen_at. Empty email or
// name never overwrite stored values.
func (r *PGRepo) Upsert(ctx context.Context, user User) (User, error) {
	const query = `
INSERT INTO users (id, email, full_name, role, created_at, last_seen_at)
VALUES ($1, $2, $3, $4, now(), now())
ON CONFLICT (id) DO UPDATE SET
  email = COALESCE(EXCLUDED.email, users.email),
  full_name = COALESCE(EXCLUDED.full_name, users.full_name),
  role = EXCLUDED.role,
  last_seen_at = now()
RETURNING id, email, full_name, role, created_at, last_seen_at`
	row := r.DB.QueryRowContext(ctx, query,
		user.ID,
		nullableString(user.Email),
		nullableString(user.FullName),
		user.Role,
	)
	return scanUser(row)
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, email, full_name, role, created_at, last_seen_at
FROM users
WHERE id = $1
LIMIT 1`
	user, err := scanUser(r.DB.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func scanUser(row *sql.Row) (User, error) {
	var user User
	var email sql.NullString
	var fullName sql.NullString
	if err := row.Scan(
		&user.ID,
		&email,
		&fullName,
		&user.Role,
		&user.CreatedAt,
		&user.LastSeenAt,
	); err != nil {
		return User{}, err
	}
	user.Email = email.String
	user.FullName = fullName.String
	return user, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)

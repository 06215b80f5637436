package resumecheck

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Insert appends a check record.
func (r *PGRepo) Insert(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO resume_checks (
    id,
    user_id,
    name,
    email,
    score,
    page_count,
    field,
    level,
    skills,
    recommended_skills,
    document_id,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	skills, err := json.Marshal(nonNil(rec.Skills))
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}
	recommended, err := json.Marshal(nonNil(rec.RecommendedSkills))
	if err != nil {
		return fmt.Errorf("encode recommended skills: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		nullString(rec.Name),
		nullString(rec.Email),
		rec.Score,
		rec.PageCount,
		string(rec.Field),
		string(rec.Level),
		skills,
		recommended,
		nullString(rec.DocumentID),
		rec.CreatedAt,
	)
	return err
}

// ListByUser lists a user's records newest first. A limit of 0 returns up to 1000.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, name, email, score, page_count, field, level, skills, recommended_skills, document_id, created_at
FROM resume_checks
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var (
			rec                 Record
			name, email, docID  sql.NullString
			field, level        string
			skills, recommended []byte
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&name,
			&email,
			&rec.Score,
			&rec.PageCount,
			&field,
			&level,
			&skills,
			&recommended,
			&docID,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Name = name.String
		rec.Email = email.String
		rec.DocumentID = docID.String
		rec.Field = CareerField(field)
		rec.Level = Level(level)
		if err := decodeList(skills, &rec.Skills); err != nil {
			return nil, fmt.Errorf("decode skills: %w", err)
		}
		if err := decodeList(recommended, &rec.RecommendedSkills); err != nil {
			return nil, fmt.Errorf("decode recommended skills: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func decodeList(raw []byte, dst *[]string) error {
	if len(raw) == 0 {
		*dst = []string{}
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var _ Repo = (*PGRepo)(nil)

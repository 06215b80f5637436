package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const postingColumns = `id, parent_id, parent_email, full_name, phone_number, city, state,
detailed_address, preferred_contact, job_title, job_description, preferred_start_date,
job_frequency, required_skills, educational_background, age_range, hourly_rate,
rate_negotiable, job_subject, special_conditions, is_active, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, p Posting) error {
	const query = `
INSERT INTO job_listings (` + postingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.ParentID,
		nullableString(p.ParentEmail),
		nullableString(p.FullName),
		nullableString(p.PhoneNumber),
		nullableString(p.City),
		nullableString(p.State),
		nullableString(p.DetailedAddress),
		p.PreferredContact,
		p.Title,
		p.Description,
		nullableString(p.PreferredStartDate),
		nullableString(p.Frequency),
		nullableString(p.RequiredSkills),
		nullableString(p.EducationalBackground),
		nullableString(p.AgeRange),
		p.HourlyRate,
		p.RateNegotiable,
		nullableString(p.Subject),
		nullableString(p.SpecialConditions),
		p.IsActive,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Posting, error) {
	query := `SELECT ` + postingColumns + ` FROM job_listings WHERE id = $1`
	p, err := scanPosting(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Posting{}, ErrNotFound
	}
	return p, err
}

func (r *PGRepo) ListByParent(ctx context.Context, parentID string) ([]Posting, error) {
	query := `SELECT ` + postingColumns + `
FROM job_listings
WHERE parent_id = $1
ORDER BY created_at DESC`
	return r.list(ctx, query, parentID)
}

func (r *PGRepo) SetActive(ctx context.Context, id string, active bool, at time.Time) error {
	const query = `UPDATE job_listings SET is_active = $2, updated_at = $3 WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id, active, at)
	if err != nil {
		return err
	}
	return expectRow(res)
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM job_listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectRow(res)
}

func (r *PGRepo) Search(ctx context.Context, q SearchQuery) ([]Posting, error) {
	var where string
	switch q.Type {
	case SearchLocation:
		where = `(city ILIKE $1 OR state ILIKE $1)`
	case SearchTitle:
		where = `job_title ILIKE $1`
	case SearchSubject:
		where = `job_subject ILIKE $1`
	default:
		return nil, fmt.Errorf("%w: unknown search type %q", ErrInvalidInput, q.Type)
	}
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	query := `SELECT ` + postingColumns + `
FROM job_listings
WHERE is_active AND ` + where + `
ORDER BY created_at DESC
LIMIT $2`
	return r.list(ctx, query, likePattern(q.Term), limit)
}

func (r *PGRepo) ListAll(ctx context.Context) ([]Posting, error) {
	query := `SELECT ` + postingColumns + ` FROM job_listings ORDER BY created_at ASC, id ASC`
	return r.list(ctx, query)
}

func (r *PGRepo) list(ctx context.Context, query string, args ...any) ([]Posting, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Posting{}
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPosting(row rowScanner) (Posting, error) {
	var p Posting
	var email, name, phone, city, state, address, freq sql.NullString
	var skills, education, ageRange, subject, special sql.NullString
	var startDate sql.NullTime
	err := row.Scan(
		&p.ID,
		&p.ParentID,
		&email,
		&name,
		&phone,
		&city,
		&state,
		&address,
		&p.PreferredContact,
		&p.Title,
		&p.Description,
		&startDate,
		&freq,
		&skills,
		&education,
		&ageRange,
		&p.HourlyRate,
		&p.RateNegotiable,
		&subject,
		&special,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return Posting{}, err
	}
	p.ParentEmail = email.String
	p.FullName = name.String
	p.PhoneNumber = phone.String
	p.City = city.String
	p.State = state.String
	p.DetailedAddress = address.String
	p.Frequency = freq.String
	p.RequiredSkills = skills.String
	p.EducationalBackground = education.String
	p.AgeRange = ageRange.String
	p.Subject = subject.String
	p.SpecialConditions = special.String
	if startDate.Valid {
		p.PreferredStartDate = startDate.Time.Format(dateLayout)
	}
	return p, nil
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// likePattern escapes LIKE metacharacters and wraps the term for a contains match.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)

package jobs

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var postingColumnNames = []string{
	"id", "parent_id", "parent_email", "full_name", "phone_number", "city", "state",
	"detailed_address", "preferred_contact", "job_title", "job_description", "preferred_start_date",
	"job_frequency", "required_skills", "educational_background", "age_range", "hourly_rate",
	"rate_negotiable", "job_subject", "special_conditions", "is_active", "created_at", "updated_at",
}

func postingRow(id string, created time.Time, start driver.Value) []driver.Value {
	return []driver.Value{
		id, "parent-1", "p@example.com", nil, nil, "Ipoh", "Perak",
		nil, "Email", "Science tutor", "Form 3", start,
		"Weekly", "Biology", nil, nil, "35.50",
		false, "Science", nil, true, created, created,
	}
}

func TestPGRepoListAllCreationOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM job_listings ORDER BY created_at ASC").
		WillReturnRows(sqlmock.NewRows(postingColumnNames).
			AddRow(postingRow("j1", t1, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))...).
			AddRow(postingRow("j2", t1.Add(time.Hour), nil)...))

	list, err := (&PGRepo{DB: db}).ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "j1" || list[1].ID != "j2" {
		t.Fatalf("unexpected list %+v", list)
	}
	if list[0].HourlyRate != 35.5 || list[0].PreferredStartDate != "2026-02-01" || list[1].PreferredStartDate != "" {
		t.Fatalf("unexpected scan: %+v", list[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoSearchEscapesTerm(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`WHERE is_active AND job_title ILIKE \$1`).
		WithArgs(`%100\%%`, 100).
		WillReturnRows(sqlmock.NewRows(postingColumnNames))

	if _, err := (&PGRepo{DB: db}).Search(context.Background(), SearchQuery{Type: SearchTitle, Term: "100%"}); err != nil {
		t.Fatalf("search: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoSetActiveNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	at := time.Now().UTC()
	mock.ExpectExec("UPDATE job_listings SET is_active").
		WithArgs("missing", false, at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := (&PGRepo{DB: db}).SetActive(context.Background(), "missing", false, at); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

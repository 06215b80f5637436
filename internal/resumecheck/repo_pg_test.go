package resumecheck

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGRepoInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, time.May, 4, 9, 30, 0, 0, time.UTC)
	rec := Record{
		ID:                "chk-1",
		UserID:            "tutor-1",
		Email:             "a@example.com",
		Score:             40,
		PageCount:         1,
		Field:             FieldScience,
		Level:             LevelFresher,
		Skills:            []string{"Biology"},
		RecommendedSkills: []string{"Electrochemistry", "Biodiversity", "Science Experiments"},
		CreatedAt:         now,
	}

	mock.ExpectExec("INSERT INTO resume_checks").
		WithArgs("chk-1", "tutor-1", nil, "a@example.com", 40, 1, "Science", "Fresher",
			[]byte(`["Biology"]`), []byte(`["Electrochemistry","Biodiversity","Science Experiments"]`), nil, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, (&PGRepo{DB: db}).Insert(context.Background(), rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	cols := []string{"id", "user_id", "name", "email", "score", "page_count", "field", "level", "skills", "recommended_skills", "document_id", "created_at"}
	mock.ExpectQuery("FROM resume_checks").
		WithArgs("tutor-1", 1000, 0).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("chk-1", "tutor-1", "Ali", nil, 80, 2, "Mathematics", "Intermediate", []byte(`["Algebra"]`), []byte(`[]`), "doc-1", now))

	recs, err := (&PGRepo{DB: db}).ListByUser(context.Background(), "tutor-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Ali", recs[0].Name)
	assert.Empty(t, recs[0].Email)
	assert.Equal(t, FieldMathematics, recs[0].Field)
	assert.Equal(t, []string{"Algebra"}, recs[0].Skills)
	assert.Equal(t, []string{}, recs[0].RecommendedSkills)
	assert.Equal(t, "doc-1", recs[0].DocumentID)
}

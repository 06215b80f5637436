package resumecheck

import (
	"time"

	"github.com/Ayuniiieee02/Resume/internal/extract"
)

// Record is the persisted summary of one resume check. Records are append-only.
type Record struct {
	ID                string
	UserID            string
	Name              string
	Email             string
	Score             int
	PageCount         int
	Field             CareerField
	Level             Level
	Skills            []string
	RecommendedSkills []string
	DocumentID        string
	CreatedAt         time.Time
}

// Warning describes a degraded step of a check.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Warning codes.
const (
	WarnCatalogUnavailable = "catalog_unavailable"
	WarnStorageWriteFailed = "storage_write_failed"
	WarnDocumentNotStored  = "document_not_stored"
)

// Result is the full outcome of a resume check.
type Result struct {
	ID         string              `json:"id"`
	Candidate  extract.Candidate   `json:"candidate"`
	Keywords   []string            `json:"keywords"`
	Field      FieldClassification `json:"field"`
	Score      ResumeScore         `json:"score"`
	Level      Level               `json:"level"`
	Matches    []JobPosting        `json:"matches"`
	DocumentID string              `json:"documentId,omitempty"`
	Persisted  bool                `json:"persisted"`
	Warnings   []Warning           `json:"warnings"`
	CreatedAt  time.Time           `json:"createdAt"`

	// CatalogErr and StorageErr hold the degraded outcomes, if any.
	CatalogErr error `json:"-"`
	StorageErr error `json:"-"`
}

// RecordResponse is the API shape of a stored Record.
type RecordResponse struct {
	ID                string      `json:"id"`
	Name              *string     `json:"name"`
	Email             *string     `json:"email"`
	Score             int         `json:"score"`
	PageCount         int         `json:"pageCount"`
	Field             CareerField `json:"field"`
	Level             Level       `json:"level"`
	Skills            []string    `json:"skills"`
	RecommendedSkills []string    `json:"recommendedSkills"`
	DocumentID        string      `json:"documentId,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
}

func toRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:                rec.ID,
		Name:              optional(rec.Name),
		Email:             optional(rec.Email),
		Score:             rec.Score,
		PageCount:         rec.PageCount,
		Field:             rec.Field,
		Level:             rec.Level,
		Skills:            nonNil(rec.Skills),
		RecommendedSkills: nonNil(rec.RecommendedSkills),
		DocumentID:        rec.DocumentID,
		CreatedAt:         rec.CreatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

package resumecheck

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ayuniiieee02/Resume/internal/documents"
	"github.com/Ayuniiieee02/Resume/internal/extract"
	"github.com/Ayuniiieee02/Resume/internal/shared/metrics"
	"github.com/Ayuniiieee02/Resume/internal/shared/telemetry"
)

// DocumentStore keeps a copy of the submitted resume.
type DocumentStore interface {
	Upload(ctx context.Context, userID, fileName string, data []byte) (documents.Document, error)
}

// Service runs the resume-check pipeline.
type Service struct {
	Extractor extract.TextExtractor
	Documents DocumentStore
	Matcher   Matcher
	Repo      Repo
	Now       func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Check analyses one resume submission. Only an unreadable document (or bad
// input) aborts the check; catalog and storage failures degrade the result
// and are reported through Result.Warnings.
func (s *Service) Check(ctx context.Context, userID, fileName string, data []byte) (Result, error) {
	if strings.TrimSpace(userID) == "" || len(data) == 0 {
		return Result{}, ErrInvalidInput
	}

	start := time.Now()
	metrics.IncResumeCheckStarted()
	fields := map[string]any{"user_id": userID, "file_name": fileName, "size_bytes": len(data)}
	telemetry.Info("resume_check.started", fields)

	text, candidate, err := extract.Extract(ctx, s.Extractor, data)
	if err != nil {
		metrics.IncResumeCheckFailed()
		telemetry.Warn("resume_check.failed", withField(fields, "error", err.Error()))
		return Result{}, err
	}

	res := Result{
		ID:        uuid.NewString(),
		Candidate: candidate,
		Warnings:  []Warning{},
		CreatedAt: s.now(),
	}

	if s.Documents != nil {
		doc, err := s.Documents.Upload(ctx, userID, fileName, data)
		if err != nil {
			telemetry.Warn("resume_check.document_not_stored", withField(fields, "error", err.Error()))
			res.Warnings = append(res.Warnings, Warning{Code: WarnDocumentNotStored, Message: "The resume file could not be saved."})
		} else {
			res.DocumentID = doc.ID
		}
	}

	keywords := ExtractKeywords(text.Content)
	res.Keywords = keywords.Sorted()
	res.Field = ClassifyField(candidate.Skills)
	res.Score = ScoreResume(text.Content)
	res.Level = ClassifyLevel(candidate.PageCount, len(candidate.Skills))

	res.Matches, res.CatalogErr = s.Matcher.Match(ctx, keywords)
	if res.CatalogErr != nil {
		metrics.IncCatalogUnavailable()
		telemetry.Warn("resume_check.catalog_unavailable", withField(fields, "error", res.CatalogErr.Error()))
		res.Warnings = append(res.Warnings, Warning{Code: WarnCatalogUnavailable, Message: "Job recommendations are temporarily unavailable."})
	}

	rec := Record{
		ID:                res.ID,
		UserID:            userID,
		Name:              candidate.Name.Value,
		Email:             candidate.Email.Value,
		Score:             res.Score.Total,
		PageCount:         candidate.PageCount,
		Field:             res.Field.Field,
		Level:             res.Level,
		Skills:            candidate.Skills,
		RecommendedSkills: res.Field.RecommendedSkills,
		DocumentID:        res.DocumentID,
		CreatedAt:         res.CreatedAt,
	}
	if err := s.insert(ctx, rec); err != nil {
		res.StorageErr = err
		metrics.IncStorageWriteFailed()
		telemetry.Error("resume_check.storage_write_failed", withField(fields, "error", err.Error()))
		res.Warnings = append(res.Warnings, Warning{Code: WarnStorageWriteFailed, Message: "Your results could not be saved to your history."})
	} else {
		res.Persisted = true
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.IncResumeCheckCompleted()
	metrics.ObserveResumeCheckDurationMs(elapsed)
	telemetry.Info("resume_check.completed", map[string]any{
		"user_id":     userID,
		"check_id":    res.ID,
		"field":       string(res.Field.Field),
		"level":       string(res.Level),
		"score":       res.Score.Total,
		"matches":     len(res.Matches),
		"persisted":   res.Persisted,
		"duration_ms": elapsed,
	})
	return res, nil
}

func (s *Service) insert(ctx context.Context, rec Record) error {
	if s.Repo == nil {
		return ErrStorageWriteFailed
	}
	if err := s.Repo.Insert(ctx, rec); err != nil {
		return errors.Join(ErrStorageWriteFailed, err)
	}
	return nil
}

// History lists a user's past checks, newest first.
func (s *Service) History(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func withField(fields map[string]any, key string, value any) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out[key] = value
	return out
}

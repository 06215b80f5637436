package applications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ayuniiieee02/Resume/internal/documents"
	"github.com/Ayuniiieee02/Resume/internal/jobs"
	"github.com/Ayuniiieee02/Resume/internal/shared/telemetry"
	"github.com/Ayuniiieee02/Resume/internal/users"
)

// JobLookup reads job listings.
type JobLookup interface {
	Get(ctx context.Context, id string) (jobs.Posting, error)
	ListMine(ctx context.Context, parentID string) ([]jobs.Posting, error)
}

// ResumeStore stores and reads resume documents.
type ResumeStore interface {
	Upload(ctx context.Context, userID, fileName string, data []byte) (documents.Document, error)
	Get(ctx context.Context, documentID string) (documents.Document, error)
	Delete(ctx context.Context, doc documents.Document) error
}

// NameLookup resolves applicant display names.
type NameLookup interface {
	GetByID(ctx context.Context, userID string) (users.User, error)
}

const unknownApplicant = "Unknown"

// Service handles tutor applications and the parent review flow.
type Service struct {
	Repo      Repo
	Jobs      JobLookup
	Documents ResumeStore
	Users     NameLookup
	Now       func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Apply uploads the resume and records a Pending application.
func (s *Service) Apply(ctx context.Context, userID string, in ApplyInput) (Application, error) {
	if strings.TrimSpace(userID) == "" {
		return Application{}, ErrInvalidInput
	}
	in, err := validateApply(in)
	if err != nil {
		return Application{}, err
	}

	job, err := s.Jobs.Get(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return Application{}, ErrJobNotFound
		}
		return Application{}, fmt.Errorf("load job: %w", err)
	}
	if !job.IsActive {
		return Application{}, ErrJobClosed
	}

	exists, err := s.Repo.Exists(ctx, userID, job.ID)
	if err != nil {
		return Application{}, fmt.Errorf("check existing application: %w", err)
	}
	if exists {
		return Application{}, ErrAlreadyApplied
	}

	doc, err := s.Documents.Upload(ctx, userID, in.FileName, in.Resume)
	if err != nil {
		return Application{}, err
	}

	now := s.now()
	app := Application{
		ID:            uuid.NewString(),
		UserID:        userID,
		JobID:         job.ID,
		DocumentID:    doc.ID,
		TeachingStyle: in.TeachingStyle,
		Availability:  in.Availability,
		IsConfirmed:   in.Confirmed,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, app); err != nil {
		s.discardResume(ctx, doc)
		if errors.Is(err, ErrAlreadyApplied) {
			return Application{}, err
		}
		return Application{}, fmt.Errorf("create application: %w", err)
	}
	telemetry.Info("applications.submitted", map[string]any{
		"application_id": app.ID,
		"job_id":         app.JobID,
		"user_id":        userID,
	})
	return app, nil
}

// discardResume removes a resume uploaded for an application that was not
// recorded.
func (s *Service) discardResume(ctx context.Context, doc documents.Document) {
	if err := s.Documents.Delete(context.WithoutCancel(ctx), doc); err != nil {
		telemetry.Warn("applications.orphaned_resume", map[string]any{
			"document_id": doc.ID,
			"error":       err.Error(),
		})
	}
}

// ListApplied returns the tutor's applications with job details. Applications
// whose listing was removed are skipped.
func (s *Service) ListApplied(ctx context.Context, userID string) ([]AppliedJob, error) {
	apps, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cache := map[string]jobs.Posting{}
	out := make([]AppliedJob, 0, len(apps))
	for _, app := range apps {
		job, ok := cache[app.JobID]
		if !ok {
			job, err = s.Jobs.Get(ctx, app.JobID)
			if errors.Is(err, jobs.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("load job: %w", err)
			}
			cache[app.JobID] = job
		}
		out = append(out, AppliedJob{
			ApplicationID: app.ID,
			JobID:         job.ID,
			JobTitle:      job.Title,
			JobSubject:    job.Subject,
			City:          job.City,
			State:         job.State,
			JobFrequency:  job.Frequency,
			Status:        app.Status,
			AppliedAt:     app.CreatedAt,
		})
	}
	return out, nil
}

// Received returns applications to the parent's listings.
func (s *Service) Received(ctx context.Context, parentID string) ([]Received, error) {
	postings, err := s.Jobs.ListMine(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	byID := make(map[string]jobs.Posting, len(postings))
	ids := make([]string, 0, len(postings))
	for _, p := range postings {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}
	apps, err := s.Repo.ListByJobs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	out := make([]Received, 0, len(apps))
	for _, app := range apps {
		job := byID[app.JobID]
		name, ok := names[app.UserID]
		if !ok {
			name = s.applicantName(ctx, app.UserID)
			names[app.UserID] = name
		}
		out = append(out, Received{
			ApplicationID: app.ID,
			JobID:         job.ID,
			JobTitle:      job.Title,
			JobSubject:    job.Subject,
			ApplicantID:   app.UserID,
			ApplicantName: name,
			TeachingStyle: app.TeachingStyle,
			Availability:  app.Availability,
			Status:        app.Status,
			DocumentID:    app.DocumentID,
			AppliedAt:     app.CreatedAt,
		})
	}
	return out, nil
}

func (s *Service) applicantName(ctx context.Context, userID string) string {
	if s.Users == nil {
		return unknownApplicant
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil || strings.TrimSpace(u.FullName) == "" {
		return unknownApplicant
	}
	return u.FullName
}

// SetStatus accepts or rejects a pending application to one of the parent's listings.
func (s *Service) SetStatus(ctx context.Context, parentID, applicationID, status string) (Application, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case strings.ToLower(StatusAccepted):
		status = StatusAccepted
	case strings.ToLower(StatusRejected):
		status = StatusRejected
	default:
		return Application{}, &ValidationError{Fields: map[string]string{"status": "must be Accepted or Rejected"}}
	}

	app, err := s.owned(ctx, parentID, applicationID)
	if err != nil {
		return Application{}, err
	}
	if app.Status != StatusPending {
		return Application{}, ErrInvalidTransition
	}
	now := s.now()
	if err := s.Repo.UpdateStatus(ctx, app.ID, status, now); err != nil {
		return Application{}, err
	}
	app.Status = status
	app.UpdatedAt = now
	telemetry.Info("applications.status_changed", map[string]any{
		"application_id": app.ID,
		"job_id":         app.JobID,
		"status":         status,
	})
	return app, nil
}

// Resume returns the resume document of an application to the parent's listing.
func (s *Service) Resume(ctx context.Context, parentID, applicationID string) (documents.Document, error) {
	app, err := s.owned(ctx, parentID, applicationID)
	if err != nil {
		return documents.Document{}, err
	}
	return s.Documents.Get(ctx, app.DocumentID)
}

func (s *Service) owned(ctx context.Context, parentID, applicationID string) (Application, error) {
	if strings.TrimSpace(applicationID) == "" {
		return Application{}, ErrNotFound
	}
	app, err := s.Repo.GetByID(ctx, applicationID)
	if err != nil {
		return Application{}, err
	}
	job, err := s.Jobs.Get(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return Application{}, ErrNotFound
		}
		return Application{}, fmt.Errorf("load job: %w", err)
	}
	if job.ParentID != parentID {
		return Application{}, ErrForbidden
	}
	return app, nil
}

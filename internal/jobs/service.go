package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
	"github.com/Ayuniiieee02/Resume/internal/shared/telemetry"
)

// Service manages parents' job listings and the public catalog.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Create validates and stores a listing owned by the calling parent. Contact
// details default to the parent's identity.
func (s *Service) Create(ctx context.Context, owner middleware.Identity, in Posting) (Posting, error) {
	if strings.TrimSpace(owner.UserID) == "" {
		return Posting{}, ErrInvalidInput
	}
	p := normalize(in)
	if p.ParentEmail == "" {
		p.ParentEmail = owner.Email
	}
	if p.FullName == "" {
		p.FullName = owner.FullName
	}
	if err := validate(p); err != nil {
		return Posting{}, err
	}

	now := s.now()
	p.ID = uuid.NewString()
	p.ParentID = owner.UserID
	p.IsActive = true
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.Repo.Create(ctx, p); err != nil {
		return Posting{}, fmt.Errorf("create job listing: %w", err)
	}
	telemetry.Info("jobs.created", map[string]any{"job_id": p.ID, "parent_id": p.ParentID})
	return p, nil
}

// ListMine returns the parent's listings newest first.
func (s *Service) ListMine(ctx context.Context, parentID string) ([]Posting, error) {
	if strings.TrimSpace(parentID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByParent(ctx, parentID)
}

// GetOwned returns a listing only if parentID owns it.
func (s *Service) GetOwned(ctx context.Context, parentID, id string) (Posting, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return Posting{}, err
	}
	if p.ParentID != parentID {
		return Posting{}, ErrForbidden
	}
	return p, nil
}

// Get returns a listing by ID.
func (s *Service) Get(ctx context.Context, id string) (Posting, error) {
	if strings.TrimSpace(id) == "" {
		return Posting{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// SetActive toggles whether a listing appears in public search.
func (s *Service) SetActive(ctx context.Context, parentID, id string, active bool) (Posting, error) {
	p, err := s.GetOwned(ctx, parentID, id)
	if err != nil {
		return Posting{}, err
	}
	now := s.now()
	if err := s.Repo.SetActive(ctx, id, active, now); err != nil {
		return Posting{}, err
	}
	p.IsActive = active
	p.UpdatedAt = now
	return p, nil
}

// Delete removes a listing owned by parentID. Applications to it are removed too.
func (s *Service) Delete(ctx context.Context, parentID, id string) error {
	if _, err := s.GetOwned(ctx, parentID, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	telemetry.Info("jobs.deleted", map[string]any{"job_id": id, "parent_id": parentID})
	return nil
}

// Search finds active listings by location, title or subject.
func (s *Service) Search(ctx context.Context, searchType, term string, limit int) ([]Posting, error) {
	q := SearchQuery{
		Type:  strings.ToLower(strings.TrimSpace(searchType)),
		Term:  strings.TrimSpace(term),
		Limit: limit,
	}
	switch q.Type {
	case SearchLocation, SearchTitle, SearchSubject:
	default:
		return nil, &ValidationError{Fields: map[string]string{"type": "must be one of location, job_title, job_subject"}}
	}
	if q.Term == "" {
		return nil, &ValidationError{Fields: map[string]string{"q": "search term is required"}}
	}
	return s.Repo.Search(ctx, q)
}

// ListCatalog returns every listing in creation order.
func (s *Service) ListCatalog(ctx context.Context) ([]Posting, error) {
	if s == nil || s.Repo == nil {
		return nil, fmt.Errorf("jobs repo not configured")
	}
	return s.Repo.ListAll(ctx)
}

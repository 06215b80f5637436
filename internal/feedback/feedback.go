package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrLoginRequired = errors.New("please log in to leave feedback")
)

const maxCommentLen = 2000

// Entry is one piece of user feedback.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	FullName  string    `json:"fullName"`
	UserEmail string    `json:"userEmail"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repo persists feedback.
type Repo interface {
	Create(ctx context.Context, e Entry) error
	// List returns entries newest first.
	List(ctx context.Context, limit int) ([]Entry, error)
}

// Service accepts and lists feedback.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Submit stores feedback from a signed-in caller. Name and email come from the identity.
func (s *Service) Submit(ctx context.Context, id middleware.Identity, rating int, comment string) (Entry, error) {
	if id.UserID == "" || id.IsGuest {
		return Entry{}, ErrLoginRequired
	}
	if rating < 1 || rating > 5 {
		return Entry{}, ErrInvalidRating
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLen {
		comment = comment[:maxCommentLen]
	}
	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}
	e := Entry{
		ID:        uuid.NewString(),
		UserID:    id.UserID,
		FullName:  id.FullName,
		UserEmail: id.Email,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: now,
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return Entry{}, fmt.Errorf("store feedback: %w", err)
	}
	return e, nil
}

// List returns the most recent feedback.
func (s *Service) List(ctx context.Context, limit int) ([]Entry, error) {
	return s.Repo.List(ctx, limit)
}

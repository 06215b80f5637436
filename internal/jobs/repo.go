package jobs

import (
	"context"
	"time"
)

// Repo persists job listings.
type Repo interface {
	Create(ctx context.Context, p Posting) error
	GetByID(ctx context.Context, id string) (Posting, error)
	ListByParent(ctx context.Context, parentID string) ([]Posting, error)
	SetActive(ctx context.Context, id string, active bool, at time.Time) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q SearchQuery) ([]Posting, error)
	// ListAll returns every listing in creation order.
	ListAll(ctx context.Context) ([]Posting, error)
}

package applications

import (
	"context"
	"time"
)

// Repo persists applications.
type Repo interface {
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	Exists(ctx context.Context, userID, jobID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]Application, error)
	ListByJobs(ctx context.Context, jobIDs []string) ([]Application, error)
	// UpdateStatus moves an application out of Pending. It returns
	// ErrInvalidTransition when the application is no longer pending.
	UpdateStatus(ctx context.Context, id, status string, at time.Time) error
}

package resumecheck

import "context"

// Repo persists check records.
type Repo interface {
	Insert(ctx context.Context, rec Record) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error)
}

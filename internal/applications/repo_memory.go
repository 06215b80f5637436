package applications

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Application
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Application)}
}

func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.UserID == app.UserID && existing.JobID == app.JobID {
			return ErrAlreadyApplied
		}
	}
	app.Availability = append([]Slot(nil), app.Availability...)
	r.byID[app.ID] = app
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.byID[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}

func (r *MemoryRepo) Exists(ctx context.Context, userID, jobID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, app := range r.byID {
		if app.UserID == userID && app.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.collect(func(app Application) bool { return app.UserID == userID }), nil
}

func (r *MemoryRepo) ListByJobs(ctx context.Context, jobIDs []string) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wanted := make(map[string]struct{}, len(jobIDs))
	for _, id := range jobIDs {
		wanted[id] = struct{}{}
	}
	return r.collect(func(app Application) bool {
		_, ok := wanted[app.JobID]
		return ok
	}), nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if app.Status != StatusPending {
		return ErrInvalidTransition
	}
	app.Status = status
	app.UpdatedAt = at
	r.byID[id] = app
	return nil
}

// collect returns matching applications newest first.
func (r *MemoryRepo) collect(keep func(Application) bool) []Application {
	r.mu.RLock()
	out := make([]Application, 0)
	for _, app := range r.byID {
		if keep(app) {
			out = append(out, app)
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

var _ Repo = (*MemoryRepo)(nil)

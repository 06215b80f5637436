package jobs

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]Posting
	order []string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Posting)}
}

func (r *MemoryRepo) Create(ctx context.Context, p Posting) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.byID[p.ID] = p
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Posting, error) {
	if err := ctx.Err(); err != nil {
		return Posting{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return Posting{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryRepo) ListByParent(ctx context.Context, parentID string) ([]Posting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := r.filter(func(p Posting) bool { return p.ParentID == parentID })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) SetActive(ctx context.Context, id string, active bool, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	p.IsActive = active
	p.UpdatedAt = at
	r.byID[id] = p
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryRepo) Search(ctx context.Context, q SearchQuery) ([]Posting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	term := strings.ToLower(q.Term)
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), term) }
	out := r.filter(func(p Posting) bool {
		if !p.IsActive {
			return false
		}
		switch q.Type {
		case SearchLocation:
			return contains(p.City) || contains(p.State)
		case SearchTitle:
			return contains(p.Title)
		case SearchSubject:
			return contains(p.Subject)
		}
		return false
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *MemoryRepo) ListAll(ctx context.Context) ([]Posting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.filter(func(Posting) bool { return true }), nil
}

// filter walks listings in insertion order.
func (r *MemoryRepo) filter(keep func(Posting) bool) []Posting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Posting, 0)
	for _, id := range r.order {
		if p := r.byID[id]; keep(p) {
			out = append(out, p)
		}
	}
	return out
}

var _ Repo = (*MemoryRepo)(nil)

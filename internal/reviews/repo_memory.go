package reviews

import (
	"context"
	"sync"
)

// MemoryRepo is a simple in-memory review repository for tests and early
// development.
type MemoryRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]Review
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, byID: map[int64]Review{}}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Review, 0, len(r.byID))
	for id := int64(1); id < r.nextID; id++ {
		if rev, ok := r.byID[id]; ok {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *MemoryRepo) ListByPost(ctx context.Context, postID int64) ([]Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Review, 0)
	for id := int64(1); id < r.nextID; id++ {
		if rev, ok := r.byID[id]; ok && rev.PostID == postID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (*Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rev, ok := r.byID[id]; ok {
		out := rev
		return &out, nil
	}
	return nil, ErrNotFound
}

func (r *MemoryRepo) Create(ctx context.Context, rev *Review) (*Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rev.ID = r.nextID
	r.nextID++
	r.byID[rev.ID] = *rev
	out := *rev
	return &out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

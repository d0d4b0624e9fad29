package posts

import (
	"context"
	"sync"
)

// MemoryRepo is a simple in-memory post repository for tests and early
// development.
type MemoryRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]Post
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, byID: map[int64]Post{}}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Post, 0, len(r.byID))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.byID[id]; ok {
		out := p
		return &out, nil
	}
	return nil, ErrNotFound
}

func (r *MemoryRepo) Create(ctx context.Context, p *Post) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = *p
	out := *p
	return &out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, p *Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = *p
	return nil
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

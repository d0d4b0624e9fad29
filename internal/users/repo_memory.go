package users

import (
	"context"
	"sync"
)

// MemoryRepo is a simple in-memory user repository for tests and early
// development. It enforces the same email uniqueness rule as Postgres.
type MemoryRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, byID: map[int64]User{}}
}

func (r *MemoryRepo) Create(ctx context.Context, u *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, ErrEmailTaken
		}
	}
	u.ID = r.nextID
	r.nextID++
	r.byID[u.ID] = *u
	out := *u
	return &out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		out := u
		return &out, nil
	}
	return nil, ErrNotFound
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepo) List(ctx context.Context) ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]User, 0, len(r.byID))
	for id := int64(1); id < r.nextID; id++ {
		if u, ok := r.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	for id, existing := range r.byID {
		if id != u.ID && existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	r.byID[u.ID] = *u
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

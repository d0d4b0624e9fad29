package posts

import (
	"context"
	"time"
)

// Service provides post CRUD. The cache is optional; a nil cache means
// every read goes to storage.
type Service struct {
	repo  Repository
	cache ListCache
	// clock is injectable for deterministic tests.
	clock func() time.Time
}

func NewService(repo Repository, cache ListCache) *Service {
	return &Service{repo: repo, cache: cache, clock: time.Now}
}

type CreateRequest struct {
	Title  string `json:"title" binding:"required"`
	Text   string `json:"text" binding:"required,max=350"`
	UserID int64  `json:"user_id"`
}

func (s *Service) List(ctx context.Context) ([]Post, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetList(ctx); ok {
			return cached, nil
		}
	}

	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, out)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new post. authorID is the authenticated user and is used
// when the request does not name an author explicitly.
func (s *Service) Create(ctx context.Context, req CreateRequest, authorID int64) (*Post, error) {
	userID := req.UserID
	if userID == 0 {
		userID = authorID
	}

	p := &Post{
		Title:     req.Title,
		Text:      req.Text,
		CreatedAt: s.clock().UTC(),
		UserID:    userID,
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, req CreateRequest) (*Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Title = req.Title
	p.Text = req.Text
	if req.UserID != 0 {
		p.UserID = req.UserID
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

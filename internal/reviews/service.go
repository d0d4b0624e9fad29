package reviews

import (
	"context"
	"errors"
	"time"

	"microblog-platform/internal/posts"
)

// PostGetter is the slice of the posts module the review service needs:
// reviews can only target posts that exist.
type PostGetter interface {
	Get(ctx context.Context, id int64) (*posts.Post, error)
}

type Service struct {
	repo  Repository
	posts PostGetter
	// clock is injectable for deterministic tests.
	clock func() time.Time
}

func NewService(repo Repository, postGetter PostGetter) *Service {
	return &Service{repo: repo, posts: postGetter, clock: time.Now}
}

type CreateRequest struct {
	Comment string `json:"comment" binding:"required"`
	Grade   int    `json:"grade" binding:"required"`
	PostID  int64  `json:"post_id" binding:"required"`
	UserID  int64  `json:"user_id"`
}

func (s *Service) List(ctx context.Context) ([]Review, error) {
	return s.repo.List(ctx)
}

// ListByPost returns a post's reviews, or ErrPostNotFound if the post
// itself is missing.
func (s *Service) ListByPost(ctx context.Context, postID int64) ([]Review, error) {
	if err := s.checkPost(ctx, postID); err != nil {
		return nil, err
	}
	return s.repo.ListByPost(ctx, postID)
}

func (s *Service) Create(ctx context.Context, req CreateRequest, authorID int64) (*Review, error) {
	if err := s.checkPost(ctx, req.PostID); err != nil {
		return nil, err
	}

	userID := req.UserID
	if userID == 0 {
		userID = authorID
	}

	rev := &Review{
		Comment:     req.Comment,
		CommentDate: s.clock().UTC(),
		Grade:       req.Grade,
		IsActive:    true,
		PostID:      req.PostID,
		UserID:      userID,
	}
	return s.repo.Create(ctx, rev)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) checkPost(ctx context.Context, postID int64) error {
	if _, err := s.posts.Get(ctx, postID); err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

package reviews

import (
	"context"
	"errors"
	"time"
)

type Review struct {
	ID          int64     `json:"id"`
	Comment     string    `json:"comment"`
	CommentDate time.Time `json:"comment_date"`
	Grade       int       `json:"grade"`
	IsActive    bool      `json:"is_active"`
	PostID      int64     `json:"post_id"`
	UserID      int64     `json:"user_id"`
}

var ErrNotFound = errors.New("reviews: not found")

// ErrPostNotFound distinguishes a missing target post from a missing review.
var ErrPostNotFound = errors.New("reviews: post not found")

type Repository interface {
	List(ctx context.Context) ([]Review, error)
	ListByPost(ctx context.Context, postID int64) ([]Review, error)
	GetByID(ctx context.Context, id int64) (*Review, error)
	Create(ctx context.Context, rev *Review) (*Review, error)
	Delete(ctx context.Context, id int64) error
}

package posts

import (
	"context"
	"errors"
	"time"
)

// Post text is capped at 350 characters by the schema.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int64     `json:"user_id"`
}

var ErrNotFound = errors.New("posts: not found")

type Repository interface {
	List(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	Create(ctx context.Context, p *Post) (*Post, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id int64) error
}

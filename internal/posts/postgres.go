package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, text, created_at, user_id FROM microblog_posts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	defer rows.Close()

	out := make([]Post, 0)
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Text, &p.CreatedAt, &p.UserID); err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Post, error) {
	p := &Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, text, created_at, user_id FROM microblog_posts WHERE id = $1`, id,
	).Scan(&p.ID, &p.Title, &p.Text, &p.CreatedAt, &p.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying post: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *Post) (*Post, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO microblog_posts (title, text, created_at, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		p.Title, p.Text, p.CreatedAt, p.UserID,
	).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *Post) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE microblog_posts SET title = $1, text = $2, user_id = $3 WHERE id = $4`,
		p.Title, p.Text, p.UserID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM microblog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

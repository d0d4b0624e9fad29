package reviews

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

const selectColumns = `id, comment, comment_date, grade, is_active, post_id, user_id`

func (r *PostgresRepository) List(ctx context.Context) ([]Review, error) {
	return r.list(ctx, `SELECT `+selectColumns+` FROM reviews ORDER BY id`)
}

func (r *PostgresRepository) ListByPost(ctx context.Context, postID int64) ([]Review, error) {
	return r.list(ctx, `SELECT `+selectColumns+` FROM reviews WHERE post_id = $1 ORDER BY id`, postID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		var rev Review
		if err := rows.Scan(&rev.ID, &rev.Comment, &rev.CommentDate, &rev.Grade, &rev.IsActive, &rev.PostID, &rev.UserID); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Review, error) {
	rev := &Review{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM reviews WHERE id = $1`, id,
	).Scan(&rev.ID, &rev.Comment, &rev.CommentDate, &rev.Grade, &rev.IsActive, &rev.PostID, &rev.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying review: %w", err)
	}
	return rev, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rev *Review) (*Review, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO reviews (comment, comment_date, grade, is_active, post_id, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		rev.Comment, rev.CommentDate, rev.Grade, rev.IsActive, rev.PostID, rev.UserID,
	).Scan(&rev.ID)
	if err != nil {
		return nil, fmt.Errorf("creating review: %w", err)
	}
	return rev, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting review: %w", err)
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

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lakshanchamidu/Blog-Platform/internal/domain/entity"
	"github.com/lakshanchamidu/Blog-Platform/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (content, user_id, blog_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.Content, c.UserID, c.BlogID)

	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *CommentRepository) ListByBlog(ctx context.Context, blogID string) ([]entity.CommentView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.content, u.id, u.name, c.blog_id, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.blog_id = $1
		ORDER BY c.created_at
	`, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]entity.CommentView, 0)
	for rows.Next() {
		var v entity.CommentView
		if err := rows.Scan(&v.ID, &v.Content, &v.Author.ID, &v.Author.Name, &v.BlogID, &v.CreatedAt); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

var _ repository.CommentRepository = (*CommentRepository)(nil)

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lakshanchamidu/Blog-Platform/internal/domain/entity"
	"github.com/lakshanchamidu/Blog-Platform/internal/domain/repository"
)

type BlogRepository struct {
	pool *pgxpool.Pool
}

func NewBlogRepository(pool *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{pool: pool}
}

func (r *BlogRepository) Create(ctx context.Context, b *entity.Blog) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO blogs (title, content, user_id, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, b.Title, b.Content, b.UserID, b.CategoryID)

	if err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return translateConstraint(err)
	}
	return nil
}

// viewSelect joins users and categories so references come back populated
// with display names only; the password hash never leaves the users table.
const viewSelect = `
	SELECT b.id, b.title, b.content,
	       u.id, u.name,
	       c.id, c.name,
	       COALESCE(b.cover_url, ''),
	       (SELECT COUNT(*) FROM blog_likes l WHERE l.blog_id = b.id),
	       b.created_at, b.updated_at
	FROM blogs b
	JOIN users u ON u.id = b.user_id
	JOIN categories c ON c.id = b.category_id`

func scanView(row pgx.Row, v *entity.BlogView) error {
	return row.Scan(&v.ID, &v.Title, &v.Content,
		&v.Author.ID, &v.Author.Name,
		&v.Category.ID, &v.Category.Name,
		&v.CoverURL, &v.LikeCount,
		&v.CreatedAt, &v.UpdatedAt)
}

func (r *BlogRepository) List(ctx context.Context) ([]entity.BlogView, error) {
	rows, err := r.pool.Query(ctx, viewSelect+` ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]entity.BlogView, 0)
	for rows.Next() {
		var v entity.BlogView
		if err := scanView(rows, &v); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*entity.BlogView, error) {
	v := &entity.BlogView{}
	row := r.pool.QueryRow(ctx, viewSelect+` WHERE b.id = $1`, id)
	if err := scanView(row, v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *BlogRepository) GetOwner(ctx context.Context, id string) (string, error) {
	var owner string
	err := r.pool.QueryRow(ctx, `SELECT user_id FROM blogs WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", repository.ErrNotFound
		}
		return "", err
	}
	return owner, nil
}

func (r *BlogRepository) Update(ctx context.Context, b *entity.Blog) error {
	b.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE blogs
		SET title = $1, content = $2, category_id = $3, updated_at = $4
		WHERE id = $5
	`, b.Title, b.Content, b.CategoryID, b.UpdatedAt, b.ID)
	if err != nil {
		return translateConstraint(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) SetCoverURL(ctx context.Context, id, coverURL string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE blogs SET cover_url = $1, updated_at = now() WHERE id = $2
	`, coverURL, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM blogs WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *BlogRepository) Like(ctx context.Context, blogID, userID string) error {
	// Idempotent: liking twice is a no-op.
	_, err := r.pool.Exec(ctx, `
		INSERT INTO blog_likes (blog_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (blog_id, user_id) DO NOTHING
	`, blogID, userID)
	return translateConstraint(err)
}

func (r *BlogRepository) Unlike(ctx context.Context, blogID, userID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM blog_likes WHERE blog_id = $1 AND user_id = $2
	`, blogID, userID)
	return err
}

var _ repository.BlogRepository = (*BlogRepository)(nil)

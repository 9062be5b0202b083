package postgres

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lakshanchamidu/Blog-Platform/internal/domain/entity"
	"github.com/lakshanchamidu/Blog-Platform/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (name, description)
		VALUES ($1, NULLIF($2, ''))
		RETURNING id, created_at
	`, c.Name, c.Description)

	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, created_at
		FROM categories
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := make([]entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		var desc sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &desc, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Description = desc.String
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *CategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

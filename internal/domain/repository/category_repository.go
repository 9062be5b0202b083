package repository

import (
	"context"

	"github.com/lakshanchamidu/Blog-Platform/internal/domain/entity"
)

// CategoryRepository persists categories. Create-only lifecycle.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	List(ctx context.Context) ([]entity.Category, error)
	Exists(ctx context.Context, id string) (bool, error)
}

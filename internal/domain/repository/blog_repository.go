package repository

import (
	"context"

	"github.com/lakshanchamidu/Blog-Platform/internal/domain/entity"
)

// BlogRepository persists posts. Read methods return populated views; write
// methods operate on raw rows.
type BlogRepository interface {
	Create(ctx context.Context, b *entity.Blog) error
	List(ctx context.Context) ([]entity.BlogView, error)
	GetByID(ctx context.Context, id string) (*entity.BlogView, error)
	// GetOwner returns the owning user id of a post, or ErrNotFound.
	GetOwner(ctx context.Context, id string) (string, error)
	Update(ctx context.Context, b *entity.Blog) error
	SetCoverURL(ctx context.Context, id, coverURL string) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	Like(ctx context.Context, blogID, userID string) error
	Unlike(ctx context.Context, blogID, userID string) error
}

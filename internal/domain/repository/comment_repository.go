package repository

import (
	"context"

	"github.com/lakshanchamidu/Blog-Platform/internal/domain/entity"
)

// CommentRepository persists comments scoped to a blog.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	ListByBlog(ctx context.Context, blogID string) ([]entity.CommentView, error)
}

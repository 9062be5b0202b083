package application

import (
	"context"
	"errors"

	"github.com/lakshanchamidu/Blog-Platform/internal/domain/entity"
	repo "github.com/lakshanchamidu/Blog-Platform/internal/domain/repository"
	"github.com/lakshanchamidu/Blog-Platform/pkg/apperror"
)

// CommentService attaches comments to existing blogs.
type CommentService struct {
	Comments repo.CommentRepository
	Blogs    repo.BlogRepository
}

func NewCommentService(comments repo.CommentRepository, blogs repo.BlogRepository) *CommentService {
	return &CommentService{Comments: comments, Blogs: blogs}
}

// Add persists a comment by userID on blogID. The blog must exist; nothing
// is persisted otherwise.
func (s *CommentService) Add(ctx context.Context, userID, blogID, content string) (*entity.Comment, error) {
	ok, err := s.Blogs.Exists(ctx, blogID)
	if err != nil {
		return nil, apperror.NewDatabase("failed to fetch blog", err)
	}
	if !ok {
		return nil, apperror.NewNotFound("blog not found", nil)
	}

	c := &entity.Comment{Content: content, UserID: userID, BlogID: blogID}
	if err := s.Comments.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrForeignKey) {
			// Blog deleted between the existence check and the insert.
			return nil, apperror.NewNotFound("blog not found", nil)
		}
		return nil, apperror.NewDatabase("failed to add comment", err)
	}
	return c, nil
}

// ListByBlog returns a blog's comments with authors populated.
func (s *CommentService) ListByBlog(ctx context.Context, blogID string) ([]entity.CommentView, error) {
	views, err := s.Comments.ListByBlog(ctx, blogID)
	if err != nil {
		return nil, apperror.NewDatabase("failed to fetch comments", err)
	}
	return views, nil
}

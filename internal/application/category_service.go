package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/lakshanchamidu/Blog-Platform/internal/domain/entity"
	repo "github.com/lakshanchamidu/Blog-Platform/internal/domain/repository"
	"github.com/lakshanchamidu/Blog-Platform/pkg/apperror"
	"github.com/lakshanchamidu/Blog-Platform/pkg/helpers"
)

const (
	categoriesCacheKey = "categories:all"
	categoriesCacheTTL = 5 * time.Minute
)

// CategoryService implements create-only categories with a read-through Redis
// cache on the list. A nil Redis client disables caching.
type CategoryService struct {
	Categories repo.CategoryRepository
	Redis      *redis.Client
	Logger     *logrus.Logger
}

func NewCategoryService(categories repo.CategoryRepository, rdb *redis.Client, logger *logrus.Logger) *CategoryService {
	return &CategoryService{Categories: categories, Redis: rdb, Logger: logger}
}

type CategoryInput struct {
	Name        string
	Description string
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*entity.Category, error) {
	c := &entity.Category{Name: in.Name, Description: in.Description}
	if err := s.Categories.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, apperror.NewConflict("category already exists", nil)
		}
		return nil, apperror.NewDatabase("failed to create category", err)
	}
	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, categoriesCacheKey); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("category cache invalidation failed")
		}
	}
	return c, nil
}

func (s *CategoryService) List(ctx context.Context) ([]entity.Category, error) {
	if s.Redis != nil {
		var cached []entity.Category
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, categoriesCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	cats, err := s.Categories.List(ctx)
	if err != nil {
		return nil, apperror.NewDatabase("failed to fetch categories", err)
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, categoriesCacheKey, cats, categoriesCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("category cache write failed")
		}
	}
	return cats, nil
}

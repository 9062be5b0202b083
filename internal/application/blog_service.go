package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lakshanchamidu/Blog-Platform/internal/domain/entity"
	repo "github.com/lakshanchamidu/Blog-Platform/internal/domain/repository"
	"github.com/lakshanchamidu/Blog-Platform/pkg/apperror"
	"github.com/lakshanchamidu/Blog-Platform/pkg/helpers"
)

// BlogService implements ownership-scoped post CRUD. GCS and Elasticsearch
// are optional; a nil client disables covers and search respectively.
type BlogService struct {
	Blogs        repo.BlogRepository
	Categories   repo.CategoryRepository
	Logger       *logrus.Logger
	GCS          *storage.Client
	GCSBucket    string
	ES           *elasticsearch.Client
	ESPostsIndex string
}

func NewBlogService(blogs repo.BlogRepository, categories repo.CategoryRepository, logger *logrus.Logger, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esPostsIndex string) *BlogService {
	return &BlogService{
		Blogs:        blogs,
		Categories:   categories,
		Logger:       logger,
		GCS:          gcs,
		GCSBucket:    gcsBucket,
		ES:           es,
		ESPostsIndex: esPostsIndex,
	}
}

type BlogInput struct {
	Title      string
	Content    string
	CategoryID string
}

// Create persists a post owned by userID and returns it populated.
func (s *BlogService) Create(ctx context.Context, userID string, in BlogInput) (*entity.BlogView, error) {
	ok, err := s.Categories.Exists(ctx, in.CategoryID)
	if err != nil {
		return nil, apperror.NewDatabase("failed to fetch category", err)
	}
	if !ok {
		return nil, apperror.NewBadRequest("category not found", nil)
	}

	b := &entity.Blog{
		Title:      in.Title,
		Content:    in.Content,
		UserID:     userID,
		CategoryID: in.CategoryID,
	}
	if err := s.Blogs.Create(ctx, b); err != nil {
		if errors.Is(err, repo.ErrForeignKey) {
			return nil, apperror.NewBadRequest("category not found", nil)
		}
		return nil, apperror.NewDatabase("failed to create blog", err)
	}

	view, err := s.Blogs.GetByID(ctx, b.ID)
	if err != nil {
		return nil, apperror.NewDatabase("failed to load created blog", err)
	}
	s.index(ctx, view)
	return view, nil
}

func (s *BlogService) List(ctx context.Context) ([]entity.BlogView, error) {
	views, err := s.Blogs.List(ctx)
	if err != nil {
		return nil, apperror.NewDatabase("failed to fetch blogs", err)
	}
	return views, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (*entity.BlogView, error) {
	view, err := s.Blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, apperror.NewNotFound("blog not found", nil)
		}
		return nil, apperror.NewDatabase("failed to fetch blog", err)
	}
	return view, nil
}

// requireOwner resolves the post's owner and rejects callers who are not it.
func (s *BlogService) requireOwner(ctx context.Context, blogID, userID string) error {
	owner, err := s.Blogs.GetOwner(ctx, blogID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperror.NewNotFound("blog not found", nil)
		}
		return apperror.NewDatabase("failed to fetch blog", err)
	}
	if owner != userID {
		return apperror.NewForbidden("not the owner of this blog", nil)
	}
	return nil
}

// Update edits a post. Only the owner may edit.
func (s *BlogService) Update(ctx context.Context, userID, blogID string, in BlogInput) (*entity.BlogView, error) {
	if err := s.requireOwner(ctx, blogID, userID); err != nil {
		return nil, err
	}
	b := &entity.Blog{
		ID:         blogID,
		Title:      in.Title,
		Content:    in.Content,
		CategoryID: in.CategoryID,
	}
	if err := s.Blogs.Update(ctx, b); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return nil, apperror.NewNotFound("blog not found", nil)
		case errors.Is(err, repo.ErrForeignKey):
			return nil, apperror.NewBadRequest("category not found", nil)
		}
		return nil, apperror.NewDatabase("failed to update blog", err)
	}

	view, err := s.Blogs.GetByID(ctx, blogID)
	if err != nil {
		return nil, apperror.NewDatabase("failed to load updated blog", err)
	}
	s.index(ctx, view)
	return view, nil
}

// Delete removes a post. Only the owner may delete.
func (s *BlogService) Delete(ctx context.Context, userID, blogID string) error {
	if err := s.requireOwner(ctx, blogID, userID); err != nil {
		return err
	}
	if err := s.Blogs.Delete(ctx, blogID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperror.NewNotFound("blog not found", nil)
		}
		return apperror.NewDatabase("failed to delete blog", err)
	}
	s.deleteIndex(ctx, blogID)
	return nil
}

// Like records userID's like on a post. Liking twice is a no-op.
func (s *BlogService) Like(ctx context.Context, userID, blogID string) error {
	if err := s.ensureExists(ctx, blogID); err != nil {
		return err
	}
	if err := s.Blogs.Like(ctx, blogID, userID); err != nil {
		return apperror.NewDatabase("failed to like blog", err)
	}
	return nil
}

// Unlike removes userID's like, if any.
func (s *BlogService) Unlike(ctx context.Context, userID, blogID string) error {
	if err := s.ensureExists(ctx, blogID); err != nil {
		return err
	}
	if err := s.Blogs.Unlike(ctx, blogID, userID); err != nil {
		return apperror.NewDatabase("failed to unlike blog", err)
	}
	return nil
}

func (s *BlogService) ensureExists(ctx context.Context, blogID string) error {
	ok, err := s.Blogs.Exists(ctx, blogID)
	if err != nil {
		return apperror.NewDatabase("failed to fetch blog", err)
	}
	if !ok {
		return apperror.NewNotFound("blog not found", nil)
	}
	return nil
}

// UploadCover stores a cover image in GCS and records its public URL.
// Only the owner may change a post's cover.
func (s *BlogService) UploadCover(ctx context.Context, userID, blogID string, r io.Reader, filename, contentType string) (string, error) {
	if err := s.requireOwner(ctx, blogID, userID); err != nil {
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", apperror.NewInternal("cover storage not configured", nil)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("covers", blogID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", apperror.NewInternal("cover upload failed", err)
	}

	if err := s.Blogs.SetCoverURL(ctx, blogID, url); err != nil {
		return "", apperror.NewDatabase("failed to save cover url", err)
	}
	if view, err := s.Blogs.GetByID(ctx, blogID); err == nil {
		s.index(ctx, view)
	}
	return url, nil
}

// index pushes a post document to Elasticsearch. Failures are logged, never
// surfaced: search lags behind the database rather than failing writes.
func (s *BlogService) index(ctx context.Context, v *entity.BlogView) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         v.ID,
		"title":      v.Title,
		"content":    v.Content,
		"author":     v.Author.Name,
		"category":   v.Category.Name,
		"created_at": v.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPostsIndex, DocumentID: v.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("blog_id", v.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("blog_id", v.ID).Warn("es index response error")
	}
}

func (s *BlogService) deleteIndex(ctx context.Context, blogID string) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESPostsIndex, DocumentID: blogID}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("blog_id", blogID).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search runs a multi_match query over title and content. With no
// Elasticsearch configured it returns an empty result rather than an error.
func (s *BlogService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "content"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESPostsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, apperror.NewInternal("search failed", err)
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, apperror.NewInternal("search decode failed", err)
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

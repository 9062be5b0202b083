package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lakshanchamidu/Blog-Platform/internal/domain/entity"
	repo "github.com/lakshanchamidu/Blog-Platform/internal/domain/repository"
)

// In-memory repositories for service tests. They mirror the constraint
// behavior of the real postgres implementations: duplicate keys return
// ErrDuplicate, dangling references return ErrForeignKey.

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return repo.ErrDuplicate
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeBlogRepo struct {
	blogs      map[string]*entity.Blog
	likes      map[string]map[string]bool // blogID -> userID set
	categories map[string]string          // categoryID -> name
	authors    map[string]string          // userID -> name
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{
		blogs:      map[string]*entity.Blog{},
		likes:      map[string]map[string]bool{},
		categories: map[string]string{},
		authors:    map[string]string{},
	}
}

func (r *fakeBlogRepo) addCategory(name string) string {
	id := uuid.NewString()
	r.categories[id] = name
	return id
}

func (r *fakeBlogRepo) addAuthor(name string) string {
	id := uuid.NewString()
	r.authors[id] = name
	return id
}

func (r *fakeBlogRepo) Create(_ context.Context, b *entity.Blog) error {
	if _, ok := r.categories[b.CategoryID]; !ok {
		return repo.ErrForeignKey
	}
	b.ID = uuid.NewString()
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	cp := *b
	r.blogs[b.ID] = &cp
	return nil
}

func (r *fakeBlogRepo) view(b *entity.Blog) entity.BlogView {
	return entity.BlogView{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		Author:    entity.Ref{ID: b.UserID, Name: r.authors[b.UserID]},
		Category:  entity.Ref{ID: b.CategoryID, Name: r.categories[b.CategoryID]},
		CoverURL:  b.CoverURL,
		LikeCount: int64(len(r.likes[b.ID])),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (r *fakeBlogRepo) List(_ context.Context) ([]entity.BlogView, error) {
	out := make([]entity.BlogView, 0, len(r.blogs))
	for _, b := range r.blogs {
		out = append(out, r.view(b))
	}
	return out, nil
}

func (r *fakeBlogRepo) GetByID(_ context.Context, id string) (*entity.BlogView, error) {
	b, ok := r.blogs[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	v := r.view(b)
	return &v, nil
}

func (r *fakeBlogRepo) GetOwner(_ context.Context, id string) (string, error) {
	b, ok := r.blogs[id]
	if !ok {
		return "", repo.ErrNotFound
	}
	return b.UserID, nil
}

func (r *fakeBlogRepo) Update(_ context.Context, in *entity.Blog) error {
	b, ok := r.blogs[in.ID]
	if !ok {
		return repo.ErrNotFound
	}
	if _, ok := r.categories[in.CategoryID]; !ok {
		return repo.ErrForeignKey
	}
	b.Title = in.Title
	b.Content = in.Content
	b.CategoryID = in.CategoryID
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBlogRepo) SetCoverURL(_ context.Context, id, coverURL string) error {
	b, ok := r.blogs[id]
	if !ok {
		return repo.ErrNotFound
	}
	b.CoverURL = coverURL
	return nil
}

func (r *fakeBlogRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.blogs[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.blogs, id)
	delete(r.likes, id)
	return nil
}

func (r *fakeBlogRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.blogs[id]
	return ok, nil
}

func (r *fakeBlogRepo) Like(_ context.Context, blogID, userID string) error {
	if r.likes[blogID] == nil {
		r.likes[blogID] = map[string]bool{}
	}
	r.likes[blogID][userID] = true
	return nil
}

func (r *fakeBlogRepo) Unlike(_ context.Context, blogID, userID string) error {
	delete(r.likes[blogID], userID)
	return nil
}

// blogCategories exposes fakeBlogRepo's category set through the
// CategoryRepository interface so both repos agree on which categories exist.
type blogCategories struct{ blogs *fakeBlogRepo }

func (r blogCategories) Create(_ context.Context, c *entity.Category) error {
	c.ID = r.blogs.addCategory(c.Name)
	c.CreatedAt = time.Now()
	return nil
}

func (r blogCategories) List(_ context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, 0, len(r.blogs.categories))
	for id, name := range r.blogs.categories {
		out = append(out, entity.Category{ID: id, Name: name})
	}
	return out, nil
}

func (r blogCategories) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.blogs.categories[id]
	return ok, nil
}

type fakeCommentRepo struct {
	blogs    *fakeBlogRepo
	users    *fakeUserRepo
	comments []entity.Comment
}

func newFakeCommentRepo(blogs *fakeBlogRepo, users *fakeUserRepo) *fakeCommentRepo {
	return &fakeCommentRepo{blogs: blogs, users: users}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	if _, ok := r.blogs.blogs[c.BlogID]; !ok {
		return repo.ErrForeignKey
	}
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	r.comments = append(r.comments, *c)
	return nil
}

func (r *fakeCommentRepo) ListByBlog(_ context.Context, blogID string) ([]entity.CommentView, error) {
	out := []entity.CommentView{}
	for _, c := range r.comments {
		if c.BlogID != blogID {
			continue
		}
		name := ""
		if u, ok := r.users.byID[c.UserID]; ok {
			name = u.Name
		}
		out = append(out, entity.CommentView{
			ID:        c.ID,
			Content:   c.Content,
			Author:    entity.Ref{ID: c.UserID, Name: name},
			BlogID:    c.BlogID,
			CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}

type fakeCategoryRepo struct {
	byName map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byName: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	if _, ok := r.byName[c.Name]; ok {
		return repo.ErrDuplicate
	}
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	cp := *c
	r.byName[c.Name] = &cp
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, 0, len(r.byName))
	for _, c := range r.byName {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Exists(_ context.Context, id string) (bool, error) {
	for _, c := range r.byName {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

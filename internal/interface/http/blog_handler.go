package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lakshanchamidu/Blog-Platform/internal/application"
	"github.com/lakshanchamidu/Blog-Platform/internal/interface/middleware"
	"github.com/lakshanchamidu/Blog-Platform/pkg/response"
	"github.com/lakshanchamidu/Blog-Platform/pkg/validation"
)

// maxCoverSize caps cover uploads at 5 MiB.
const maxCoverSize = 5 << 20

type BlogHandler struct {
	Svc    *application.BlogService
	Logger *logrus.Logger
}

func NewBlogHandler(svc *application.BlogService, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{Svc: svc, Logger: logger}
}

type blogRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	CategoryID string `json:"categoryId" binding:"required,uuid"`
}

// Create POST /api/blogs
func (h *BlogHandler) Create(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	view, err := h.Svc.Create(c.Request.Context(), uid, application.BlogInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.Logger.WithFields(logrus.Fields{"blog_id": view.ID, "user_id": uid}).Info("blog created")
	response.Success(c, http.StatusCreated, view, "blog created", nil)
}

// List GET /api/blogs
func (h *BlogHandler) List(c *gin.Context) {
	views, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, views, "blogs", nil)
}

// Get GET /api/blogs/:id
func (h *BlogHandler) Get(c *gin.Context) {
	view, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, "blog", nil)
}

// Update PUT /api/blogs/:id (owner only)
func (h *BlogHandler) Update(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	view, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), application.BlogInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, "blog updated", nil)
}

// Delete DELETE /api/blogs/:id (owner only)
func (h *BlogHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "blog deleted", nil)
}

// Like POST /api/blogs/:id/like
func (h *BlogHandler) Like(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Like(c.Request.Context(), uid, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"liked": true}, "blog liked", nil)
}

// Unlike DELETE /api/blogs/:id/like
func (h *BlogHandler) Unlike(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Unlike(c.Request.Context(), uid, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"liked": false}, "blog unliked", nil)
}

// Search GET /api/blogs/search?q=
func (h *BlogHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}

// UploadCover POST /api/blogs/:id/cover (owner only, multipart field "cover")
func (h *BlogHandler) UploadCover(c *gin.Context) {
	fh, err := c.FormFile("cover")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "cover file is required", nil)
		return
	}
	if fh.Size > maxCoverSize {
		response.Error(c, http.StatusBadRequest, "cover file too large", nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read upload", nil)
		return
	}
	defer func() { _ = f.Close() }()

	uid := c.GetString(middleware.CtxUserIDKey)
	url, err := h.Svc.UploadCover(c.Request.Context(), uid, c.Param("id"), f,
		fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cover_url": url}, "cover uploaded", nil)
}

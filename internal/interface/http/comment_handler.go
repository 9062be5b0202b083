package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lakshanchamidu/Blog-Platform/internal/application"
	"github.com/lakshanchamidu/Blog-Platform/internal/interface/middleware"
	"github.com/lakshanchamidu/Blog-Platform/pkg/response"
	"github.com/lakshanchamidu/Blog-Platform/pkg/validation"
)

type CommentHandler struct {
	Svc    *application.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

type commentRequest struct {
	BlogID  string `json:"blogId" binding:"required,uuid"`
	Content string `json:"content" binding:"required"`
}

// Add POST /api/comments
func (h *CommentHandler) Add(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	comment, err := h.Svc.Add(c.Request.Context(), uid, req.BlogID, req.Content)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":         comment.ID,
		"content":    comment.Content,
		"userId":     comment.UserID,
		"blogId":     comment.BlogID,
		"created_at": comment.CreatedAt,
	}, "comment added successfully", nil)
}

// ListByBlog GET /api/comments/:blogId
func (h *CommentHandler) ListByBlog(c *gin.Context) {
	views, err := h.Svc.ListByBlog(c.Request.Context(), c.Param("blogId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, views, "comments", nil)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lakshanchamidu/Blog-Platform/internal/application"
	"github.com/lakshanchamidu/Blog-Platform/pkg/response"
	"github.com/lakshanchamidu/Blog-Platform/pkg/validation"
)

type CategoryHandler struct {
	Svc    *application.CategoryService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create POST /api/category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	cat, err := h.Svc.Create(c.Request.Context(), application.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cat, "category created successfully", nil)
}

// List GET /api/category
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cats, "categories", nil)
}

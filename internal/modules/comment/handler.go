package comment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sabor/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/comments/recipe/:id", h.ListByRecipe)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/comments/recipe/:id", h.Create)
	rg.DELETE("/comments/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	userID := c.GetInt64("user_id")
	cm, err := h.service.Create(c.Request.Context(), userID, recipeID, req)
	if errors.Is(err, ErrRecipeNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not create comment")
		return
	}

	response.Success(c, http.StatusCreated, cm)
}

func (h *Handler) ListByRecipe(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	comments, err := h.service.ListByRecipe(c.Request.Context(), recipeID)
	if errors.Is(err, ErrRecipeNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not list comments")
		return
	}

	response.Success(c, http.StatusOK, comments)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid comment id")
		return
	}

	userID := c.GetInt64("user_id")
	err = h.service.Delete(c.Request.Context(), userID, id)
	switch {
	case errors.Is(err, ErrCommentNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "comment not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you can only delete your own comments")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not delete comment")
	default:
		c.Status(http.StatusNoContent)
	}
}

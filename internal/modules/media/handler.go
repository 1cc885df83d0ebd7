package media

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

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/media/:recipeId", h.Attach)
	rg.DELETE("/media/:id", h.Remove)
}

func (h *Handler) Attach(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("recipeId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	var req CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	userID := c.GetInt64("user_id")
	m, err := h.service.Attach(c.Request.Context(), userID, recipeID, req)
	switch {
	case errors.Is(err, ErrInvalidType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "type must be IMAGEM or VIDEO")
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you are not the author of this recipe")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not attach media")
	default:
		response.Success(c, http.StatusCreated, m)
	}
}

func (h *Handler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid media id")
		return
	}

	userID := c.GetInt64("user_id")
	err = h.service.Remove(c.Request.Context(), userID, id)
	switch {
	case errors.Is(err, ErrMediaNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "media not found")
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you are not the author of this recipe")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not remove media")
	default:
		c.Status(http.StatusNoContent)
	}
}

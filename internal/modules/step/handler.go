package step

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
	rg.GET("/steps/recipe/:id", h.ListByRecipe)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/steps/recipe/:id", h.AddBatch)
	rg.DELETE("/steps/:recipeId/:id", h.Remove)
}

func (h *Handler) AddBatch(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	var req CreateStepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	userID := c.GetInt64("user_id")
	steps, err := h.service.AddBatch(c.Request.Context(), userID, recipeID, req)
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you are not the author of this recipe")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not save steps")
	default:
		response.Success(c, http.StatusCreated, steps)
	}
}

func (h *Handler) ListByRecipe(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	steps, err := h.service.ListByRecipe(c.Request.Context(), recipeID)
	if errors.Is(err, ErrRecipeNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not list steps")
		return
	}

	response.Success(c, http.StatusOK, steps)
}

func (h *Handler) Remove(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("recipeId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}
	stepID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid step id")
		return
	}

	userID := c.GetInt64("user_id")
	err = h.service.Remove(c.Request.Context(), userID, recipeID, stepID)
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
	case errors.Is(err, ErrStepNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "step not found")
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you are not the author of this recipe")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not remove step")
	default:
		c.Status(http.StatusNoContent)
	}
}

package ingredient

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
	rg.GET("/ingredients/recipe/:id", h.ListByRecipe)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/ingredients/:recipeId", h.Add)
	rg.DELETE("/ingredients/:id/", h.Remove)
}

func (h *Handler) Add(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("recipeId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	userID := c.GetInt64("user_id")
	ing, err := h.service.Add(c.Request.Context(), userID, recipeID, req)
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you are not the author of this recipe")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not add ingredient")
	default:
		response.Success(c, http.StatusCreated, ing)
	}
}

func (h *Handler) ListByRecipe(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	items, err := h.service.ListByRecipe(c.Request.Context(), recipeID)
	if errors.Is(err, ErrRecipeNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not list ingredients")
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid ingredient id")
		return
	}

	userID := c.GetInt64("user_id")
	err = h.service.Remove(c.Request.Context(), userID, id)
	switch {
	case errors.Is(err, ErrIngredientNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "ingredient not found")
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you are not the author of this recipe")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not remove ingredient")
	default:
		c.Status(http.StatusNoContent)
	}
}

package recipe

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
	rg.GET("/recipes/", h.Search)
	rg.GET("/recipes/random/", h.Random)
	rg.GET("/recipes/:id/", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/recipes/create/", h.Create)
	rg.PATCH("/recipes/edite/:id", h.Update)
	rg.DELETE("/recipes/:id", h.Delete)
}

// Create godoc
// @Summary Publish a new recipe
// @Tags recipes
// @Security BearerAuth
func (h *Handler) Create(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	userID := c.GetInt64("user_id")
	r, err := h.service.Create(c.Request.Context(), userID, req)
	if errors.Is(err, ErrInvalidInput) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid difficulty or state")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not create recipe")
		return
	}

	response.Success(c, http.StatusCreated, r)
}

func (h *Handler) Search(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	results, err := h.service.Search(c.Request.Context(), q)
	if errors.Is(err, ErrRecipeNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "no recipes found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not search recipes")
		return
	}

	response.Success(c, http.StatusOK, results)
}

func (h *Handler) Random(c *gin.Context) {
	r, err := h.service.Random(c.Request.Context())
	if errors.Is(err, ErrRecipeNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "no recipes available")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not pick a recipe")
		return
	}

	response.Success(c, http.StatusOK, r)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	r, err := h.service.Get(c.Request.Context(), id)
	if errors.Is(err, ErrRecipeNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not load recipe")
		return
	}

	response.Success(c, http.StatusOK, r)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	userID := c.GetInt64("user_id")
	r, err := h.service.Update(c.Request.Context(), userID, id, req)
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you are not the author of this recipe")
	case errors.Is(err, ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid field value")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not update recipe")
	default:
		response.Success(c, http.StatusOK, r)
	}
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	userID := c.GetInt64("user_id")
	err = h.service.Delete(c.Request.Context(), userID, id)
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
	case errors.Is(err, ErrNotAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "you are not the author of this recipe")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not delete recipe")
	default:
		c.Status(http.StatusNoContent)
	}
}

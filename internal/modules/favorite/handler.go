package favorite

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
	rg.GET("/favorites/", h.List)
	rg.POST("/favorites/:recipeId", h.Add)
	rg.DELETE("/favorites/:recipeId", h.Remove)
}

func (h *Handler) Add(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("recipeId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	userID := c.GetInt64("user_id")
	fav, err := h.service.Add(c.Request.Context(), userID, recipeID)
	switch {
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
	case errors.Is(err, ErrAlreadyFavorited):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "recipe already in favorites")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not add favorite")
	default:
		response.Success(c, http.StatusCreated, fav)
	}
}

func (h *Handler) Remove(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("recipeId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	userID := c.GetInt64("user_id")
	err = h.service.Remove(c.Request.Context(), userID, recipeID)
	switch {
	case errors.Is(err, ErrFavoriteNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "favorite not found")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not remove favorite")
	default:
		c.Status(http.StatusNoContent)
	}
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	favorites, total, err := h.service.List(c.Request.Context(), userID, page, perPage)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not list favorites")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"favorites": favorites,
		"total":     total,
		"page":      page,
		"per_page":  perPage,
	})
}

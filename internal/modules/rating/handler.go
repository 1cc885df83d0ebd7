package rating

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

// The /rattings prefix is kept as-is; existing clients depend on it.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/rattings/recipes/:id/avaliation", h.Evaluation)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/rattings/recipes/:id", h.Rate)
}

func (h *Handler) Rate(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "rating must be an integer between 1 and 5")
		return
	}

	userID := c.GetInt64("user_id")
	result, err := h.service.Rate(c.Request.Context(), userID, recipeID, int64(req.Rating))
	switch {
	case errors.Is(err, ErrInvalidRating):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "rating must be an integer between 1 and 5")
	case errors.Is(err, ErrRecipeNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not save rating")
	case result.Created:
		response.Success(c, http.StatusCreated, result.Rating)
	default:
		response.Success(c, http.StatusOK, result.Rating)
	}
}

func (h *Handler) Evaluation(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe id")
		return
	}

	eval, err := h.service.Evaluation(c.Request.Context(), recipeID)
	if errors.Is(err, ErrRecipeNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "recipe not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not load ratings")
		return
	}

	response.Success(c, http.StatusOK, eval)
}

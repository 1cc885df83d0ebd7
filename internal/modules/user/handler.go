package user

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"sabor/internal/pkg/response"
	"sabor/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	users := protected.Group("/users")
	{
		users.PATCH("/", h.UpdateProfile)
		users.POST("/:id/follow", h.Follow)
		users.POST("/:id/unfollow", h.Unfollow)
	}
}

// UpdateProfile godoc
// @Summary Edit the authenticated user's profile
// @Tags Users
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "fields to change; unset fields stay as they are"
// @Success 200 {object} map[string]interface{}
// @Router /users/ [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if details := validator.Validate(&req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input",
				gin.H{"email": "already in use"})
		case errors.Is(err, ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field value")
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update profile")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":         u.ID,
			"username":   u.Username,
			"email":      u.Email,
			"profile":    u.Profile,
			"state":      u.State,
			"avatar_url": u.AvatarURL,
		},
	})
}

// Follow godoc
// @Summary Follow another user
// @Tags Users
// @Security BearerAuth
// @Param id path int true "user to follow"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/follow [post]
func (h *Handler) Follow(c *gin.Context) {
	userID := c.GetInt64("user_id")
	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || targetID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	target, err := h.service.Follow(c.Request.Context(), userID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, ErrCannotFollowSelf):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "You cannot follow yourself")
		default:
			response.Error(c, http.StatusInternalServerError, "FOLLOW_FAILED", "Failed to follow user")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"status": fmt.Sprintf("You are now following %s", target.Username),
	})
}

// Unfollow godoc
// @Summary Stop following a user
// @Tags Users
// @Security BearerAuth
// @Param id path int true "user to unfollow"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/unfollow [post]
func (h *Handler) Unfollow(c *gin.Context) {
	userID := c.GetInt64("user_id")
	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || targetID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	target, err := h.service.Unfollow(c.Request.Context(), userID, targetID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UNFOLLOW_FAILED", "Failed to unfollow user")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"status": fmt.Sprintf("You stopped following %s", target.Username),
	})
}

package report

import (
	"errors"
	"net/http"

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
	rg.POST("/reports/", h.Create)
	rg.GET("/reports/", h.List)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	userID := c.GetInt64("user_id")
	rp, err := h.service.Create(c.Request.Context(), userID, req)
	switch {
	case errors.Is(err, ErrInvalidReason), errors.Is(err, ErrInvalidContent):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrContentNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "reported content not found")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not create report")
	default:
		response.Success(c, http.StatusCreated, rp)
	}
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	reports, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "could not list reports")
		return
	}
	response.Success(c, http.StatusOK, reports)
}

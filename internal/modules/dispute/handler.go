package dispute

import (
	"errors"
	"net/http"

	"mentorconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterMenteeRoutes(mentee *gin.RouterGroup) {
	mentee.POST("/disputes", h.Raise)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/disputes/open", h.ListOpen)
	admin.POST("/disputes/resolve", h.Resolve)
}

func (h *Handler) Raise(c *gin.Context) {
	menteeID := c.GetInt64("user_id")

	var req RaiseDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking ID and reason are required")
		return
	}

	d, err := h.service.Raise(c.Request.Context(), menteeID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking ID and reason are required")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "NOT_YOUR_BOOKING", "You can only dispute your own bookings")
		case errors.Is(err, ErrDuplicate):
			response.Error(c, http.StatusConflict, "DISPUTE_EXISTS", "A dispute already exists for this booking")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"dispute": d})
}

func (h *Handler) Resolve(c *gin.Context) {
	adminID := c.GetInt64("user_id")

	var req ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dispute ID is required")
		return
	}

	if err := h.service.Resolve(c.Request.Context(), adminID, req); err != nil {
		if errors.Is(err, ErrStateConflict) {
			response.Error(c, http.StatusNotFound, "DISPUTE_NOT_OPEN", "Open dispute not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Dispute resolved"})
}

func (h *Handler) ListOpen(c *gin.Context) {
	disputes, err := h.service.ListOpen(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"disputes": disputes})
}

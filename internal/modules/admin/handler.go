package admin

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

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/pending-mentors", h.PendingMentors)
	admin.POST("/verify-mentor", h.VerifyMentor)
	admin.GET("/cancellation-requests", h.CancellationRequests)
	admin.GET("/stats", h.Stats)
}

func (h *Handler) PendingMentors(c *gin.Context) {
	mentors, err := h.service.PendingMentors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"mentors": mentors})
}

func (h *Handler) VerifyMentor(c *gin.Context) {
	var req VerifyMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Mentor ID is required")
		return
	}

	if err := h.service.VerifyMentor(c.Request.Context(), req.MentorID); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Mentor ID is required")
		case errors.Is(err, ErrStateConflict):
			response.Error(c, http.StatusNotFound, "MENTOR_NOT_PENDING", "Pending mentor not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Server error")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Mentor verified"})
}

func (h *Handler) CancellationRequests(c *gin.Context) {
	requests, err := h.service.CancellationRequests(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

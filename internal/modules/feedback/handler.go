package feedback

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
	mentee.POST("/feedback", h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	raterID := c.GetInt64("user_id")

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Session ID and a score from 1 to 5 are required")
		return
	}

	fb, err := h.service.Submit(c.Request.Context(), raterID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Session ID and a score from 1 to 5 are required")
		case errors.Is(err, ErrStateConflict):
			response.Error(c, http.StatusNotFound, "SESSION_NOT_RATEABLE", "Completed session not found for this user")
		case errors.Is(err, ErrDuplicate):
			response.Error(c, http.StatusConflict, "FEEDBACK_EXISTS", "Feedback already submitted for this session")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"feedback": fb})
}

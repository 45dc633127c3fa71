package session

import (
	"errors"
	"net/http"
	"strconv"

	"mentorconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterProtectedRoutes mounts the endpoints available to any authenticated
// user.
func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/sessions/:id", h.SessionDetails)
}

func (h *Handler) RegisterMenteeRoutes(mentee *gin.RouterGroup) {
	mentee.POST("/bookings", h.ConfirmBooking)
	mentee.GET("/bookings", h.MyBookings)
}

func (h *Handler) RegisterMentorRoutes(mentor *gin.RouterGroup) {
	mentor.POST("/sessions", h.CreateSlot)
	mentor.DELETE("/sessions/:id", h.DeleteSlot)
	mentor.POST("/sessions/:id/complete", h.CompleteSession)
	mentor.POST("/cancellation-requests", h.RequestCancellation)
	mentor.GET("/my-sessions", h.MySessions)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/cancellations/approve", h.ApproveCancellation)
}

func (h *Handler) CreateSlot(c *gin.Context) {
	mentorID := c.GetInt64("user_id")

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Start time is required")
		return
	}

	slot, err := h.service.CreateSlot(c.Request.Context(), mentorID, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Start time must be in the future")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Server error creating session")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": slot})
}

func (h *Handler) DeleteSlot(c *gin.Context) {
	mentorID := c.GetInt64("user_id")

	sessionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid session ID")
		return
	}

	if err := h.service.DeleteSlot(c.Request.Context(), mentorID, sessionID); err != nil {
		if errors.Is(err, ErrStateConflict) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND",
				"Slot not found, already booked, or you do not own it")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Available slot deleted"})
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	menteeID := c.GetInt64("user_id")

	var req ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Session ID is required")
		return
	}

	booking, err := h.service.ConfirmBooking(c.Request.Context(), menteeID, req.SessionID)
	if err != nil {
		if errors.Is(err, ErrStateConflict) {
			response.Error(c, http.StatusConflict, "SESSION_UNAVAILABLE", "Session just became unavailable")
			return
		}
		response.Error(c, http.StatusInternalServerError, "BOOKING_FAILED", "Server error during booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

func (h *Handler) SessionDetails(c *gin.Context) {
	sessionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid session ID")
		return
	}

	summary, err := h.service.SessionSummary(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrStateConflict) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Session not found or is no longer available")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": summary})
}

func (h *Handler) CompleteSession(c *gin.Context) {
	mentorID := c.GetInt64("user_id")

	sessionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid session ID")
		return
	}

	if err := h.service.CompleteSession(c.Request.Context(), mentorID, sessionID); err != nil {
		if errors.Is(err, ErrStateConflict) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", `Session not found or not in "booked" state`)
			return
		}
		response.Error(c, http.StatusInternalServerError, "COMPLETE_FAILED", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Session marked as complete"})
}

func (h *Handler) RequestCancellation(c *gin.Context) {
	mentorID := c.GetInt64("user_id")

	var req RequestCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Session ID and reason are required")
		return
	}

	request, err := h.service.RequestCancellation(c.Request.Context(), mentorID, req.SessionID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Session ID and reason are required")
		case errors.Is(err, ErrStateConflict):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", `Session not found or not in "booked" state`)
		default:
			response.Error(c, http.StatusInternalServerError, "CANCELLATION_FAILED", "Server error")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Cancellation request submitted to admin",
		"request": request,
	})
}

func (h *Handler) ApproveCancellation(c *gin.Context) {
	adminID := c.GetInt64("user_id")

	var req ApproveCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Request ID is required")
		return
	}

	request, err := h.service.ApproveCancellation(c.Request.Context(), adminID, req.RequestID, req.AdminNotes)
	if err != nil {
		if errors.Is(err, ErrStateConflict) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found or already handled")
			return
		}
		response.Error(c, http.StatusInternalServerError, "APPROVE_FAILED", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Cancellation approved",
		"request": request,
	})
}

func (h *Handler) MyBookings(c *gin.Context) {
	menteeID := c.GetInt64("user_id")

	rows, err := h.service.MyBookings(c.Request.Context(), menteeID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) MySessions(c *gin.Context) {
	mentorID := c.GetInt64("user_id")

	rows, err := h.service.MySessions(c.Request.Context(), mentorID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sessions": rows})
}

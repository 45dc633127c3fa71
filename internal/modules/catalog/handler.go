package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"mentorconnect/internal/pkg/response"
	"mentorconnect/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts mentor browsing, which needs no authentication.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/mentors", h.ListMentors)
	v1.GET("/mentors/:id", h.MentorDetail)
}

func (h *Handler) RegisterMentorRoutes(mentor *gin.RouterGroup) {
	mentor.GET("/profile/check", h.CheckProfile)
	mentor.POST("/profile", h.CreateProfile)
}

func (h *Handler) ListMentors(c *gin.Context) {
	mentors, err := h.service.ListMentors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Server error fetching mentors")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"mentors": mentors})
}

func (h *Handler) MentorDetail(c *gin.Context) {
	mentorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid mentor ID")
		return
	}

	detail, err := h.service.MentorDetail(c.Request.Context(), mentorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Mentor not found or not verified")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Server error")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) CheckProfile(c *gin.Context) {
	mentorID := c.GetInt64("user_id")

	has, err := h.service.HasProfile(c.Request.Context(), mentorID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"has_profile": has})
}

func (h *Handler) CreateProfile(c *gin.Context) {
	mentorID := c.GetInt64("user_id")

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Headline and bio are required")
		return
	}

	if details := validator.Validate(&req); details != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid profile fields", details)
		return
	}

	profile, err := h.service.CreateProfile(c.Request.Context(), mentorID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Headline and bio are required")
		case errors.Is(err, ErrProfileExists):
			response.Error(c, http.StatusConflict, "PROFILE_EXISTS", "Profile already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"profile": profile})
}

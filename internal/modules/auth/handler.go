package auth

import (
	"errors"
	"net/http"

	"mentorconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/users/me", h.GetMe)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please provide all fields")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusBadRequest, "EMAIL_EXISTS", "Email already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Server error during registration")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user_id": user.ID,
		"user": UserPublic{
			ID:                 user.ID,
			Name:               user.Name,
			Email:              user.Email,
			Role:               string(user.Role),
			VerificationStatus: string(user.VerificationStatus),
		},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please provide email and password")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		case errors.Is(err, ErrMentorNotVerified):
			response.Error(c, http.StatusUnauthorized, "MENTOR_PENDING", "Your mentor account is still pending approval")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Server error")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": result.Token,
		"name":  result.User.Name,
		"role":  result.User.Role,
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": UserPublic{
			ID:                 user.ID,
			Name:               user.Name,
			Email:              user.Email,
			Role:               string(user.Role),
			VerificationStatus: string(user.VerificationStatus),
		},
	})
}

package auth

import (
	"context"
	"errors"
	"strings"

	"mentorconnect/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains all business logic for authentication
type Service struct {
	users UserRepository
	jwt   TokenIssuer
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepository, jwt TokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register creates a mentee or mentor account. Mentors start out pending and
// cannot log in until an admin verifies them.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok || role == domain.RoleAdmin {
		return nil, errors.New("invalid role")
	}

	verification := domain.VerificationVerified
	if role == domain.RoleMentor {
		verification = domain.VerificationPending
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:               req.Name,
		Email:              email,
		PasswordHash:       string(hash),
		Role:               role,
		VerificationStatus: verification,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Pending mentors are rejected before the password check, matching the
	// onboarding flow: the account exists but is not usable yet.
	if user.Role == domain.RoleMentor && user.VerificationStatus != domain.VerificationVerified {
		return nil, ErrMentorNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role), user.Name)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

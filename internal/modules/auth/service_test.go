package auth

import (
	"context"
	"testing"

	"mentorconnect/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 101 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, role, name string) (string, error) {
	args := m.Called(userID, role, name)
	return args.String(0), args.Error(1)
}

func TestRegister_MentorStartsPending(t *testing.T) {
	users := new(MockUserRepository)
	issuer := new(MockTokenIssuer)
	service := NewService(users, issuer)

	users.On("ExistsByEmail", mock.Anything, "mentor@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Maya",
		Email:    "Mentor@Example.com",
		Password: "secret1",
		Role:     "mentor",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleMentor, user.Role)
	assert.Equal(t, domain.VerificationPending, user.VerificationStatus)
	assert.Equal(t, "mentor@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestRegister_MenteeIsVerifiedImmediately(t *testing.T) {
	users := new(MockUserRepository)
	issuer := new(MockTokenIssuer)
	service := NewService(users, issuer)

	users.On("ExistsByEmail", mock.Anything, "mentee@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Noah",
		Email:    "mentee@example.com",
		Password: "secret1",
		Role:     "mentee",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.VerificationVerified, user.VerificationStatus)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	issuer := new(MockTokenIssuer)
	service := NewService(users, issuer)

	users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	_, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Dup",
		Email:    "taken@example.com",
		Password: "secret1",
		Role:     "mentee",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_PendingMentorRejectedBeforePasswordCheck(t *testing.T) {
	users := new(MockUserRepository)
	issuer := new(MockTokenIssuer)
	service := NewService(users, issuer)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "mentor@example.com").Return(&domain.User{
		ID:                 7,
		Email:              "mentor@example.com",
		PasswordHash:       string(hash),
		Role:               domain.RoleMentor,
		VerificationStatus: domain.VerificationPending,
	}, nil)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "mentor@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrMentorNotVerified)
	issuer.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	issuer := new(MockTokenIssuer)
	service := NewService(users, issuer)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "mentee@example.com").Return(&domain.User{
		ID:                 9,
		Name:               "Noah",
		Email:              "mentee@example.com",
		PasswordHash:       string(hash),
		Role:               domain.RoleMentee,
		VerificationStatus: domain.VerificationVerified,
	}, nil)
	issuer.On("GenerateToken", int64(9), "mentee", "Noah").Return("tok-123", nil)

	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "mentee@example.com",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok-123", result.Token)
	assert.Empty(t, result.User.PasswordHash)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	issuer := new(MockTokenIssuer)
	service := NewService(users, issuer)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	issuer := new(MockTokenIssuer)
	service := NewService(users, issuer)

	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "mentee@example.com").Return(&domain.User{
		ID:                 9,
		Email:              "mentee@example.com",
		PasswordHash:       string(hash),
		Role:               domain.RoleMentee,
		VerificationStatus: domain.VerificationVerified,
	}, nil)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "mentee@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

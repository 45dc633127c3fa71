package admin

import (
	"context"
	"testing"

	"mentorconnect/internal/domain"
	"mentorconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) PendingMentors(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserDirectory) VerifyMentor(ctx context.Context, mentorID int64) (bool, error) {
	args := m.Called(ctx, mentorID)
	return args.Bool(0), args.Error(1)
}

type MockCancellationQueue struct {
	mock.Mock
}

func (m *MockCancellationQueue) ListPending(ctx context.Context) ([]repository.PendingRequestRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PendingRequestRow), args.Error(1)
}

type MockStatsSource struct {
	mock.Mock
}

func (m *MockStatsSource) Collect(ctx context.Context) (*repository.PlatformStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PlatformStats), args.Error(1)
}

func TestVerifyMentor_Success(t *testing.T) {
	users := new(MockUserDirectory)
	service := NewService(users, new(MockCancellationQueue), new(MockStatsSource))

	users.On("VerifyMentor", mock.Anything, int64(10)).Return(true, nil)

	err := service.VerifyMentor(context.Background(), 10)

	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestVerifyMentor_NotPending(t *testing.T) {
	users := new(MockUserDirectory)
	service := NewService(users, new(MockCancellationQueue), new(MockStatsSource))

	users.On("VerifyMentor", mock.Anything, int64(10)).Return(false, nil)

	err := service.VerifyMentor(context.Background(), 10)

	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestVerifyMentor_InvalidID(t *testing.T) {
	users := new(MockUserDirectory)
	service := NewService(users, new(MockCancellationQueue), new(MockStatsSource))

	err := service.VerifyMentor(context.Background(), 0)

	assert.ErrorIs(t, err, ErrValidation)
	users.AssertNotCalled(t, "VerifyMentor", mock.Anything, mock.Anything)
}

func TestStats_Passthrough(t *testing.T) {
	stats := new(MockStatsSource)
	service := NewService(new(MockUserDirectory), new(MockCancellationQueue), stats)

	stats.On("Collect", mock.Anything).Return(&repository.PlatformStats{
		TotalMentees:  3,
		TotalMentors:  2,
		TotalSessions: 5,
		TotalRevenue:  250,
	}, nil)

	got, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(5), got.TotalSessions)
	assert.Equal(t, 250.0, got.TotalRevenue)
}

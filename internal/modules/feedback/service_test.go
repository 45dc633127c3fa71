package feedback

import (
	"context"
	"testing"

	"mentorconnect/internal/domain"
	"mentorconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockSessionReader struct {
	mock.Mock
}

func (m *MockSessionReader) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	args := m.Called(ctx, f)
	if f != nil {
		f.ID = 77 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockFeedbackRepository) ExistsForRater(ctx context.Context, sessionID, raterID int64) (bool, error) {
	args := m.Called(ctx, sessionID, raterID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedbackRepository) ListForRatee(ctx context.Context, rateeID int64) ([]repository.FeedbackRow, error) {
	args := m.Called(ctx, rateeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FeedbackRow), args.Error(1)
}

func completedSession(menteeID int64) *domain.Session {
	return &domain.Session{
		ID:       42,
		MentorID: 10,
		MenteeID: &menteeID,
		Status:   domain.SessionCompleted,
	}
}

func TestSubmit_Success(t *testing.T) {
	sessions := new(MockSessionReader)
	feedback := new(MockFeedbackRepository)
	service := NewService(sessions, feedback)

	sessions.On("GetByID", mock.Anything, int64(42)).Return(completedSession(20), nil)
	feedback.On("ExistsForRater", mock.Anything, int64(42), int64(20)).Return(false, nil)
	feedback.On("Create", mock.Anything, mock.Anything).Return(nil)

	fb, err := service.Submit(context.Background(), 20, SubmitFeedbackRequest{
		SessionID: 42,
		Score:     5,
		Comments:  "great call",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), fb.RateeID)
	assert.Equal(t, int64(20), fb.RaterID)
	feedback.AssertExpectations(t)
}

func TestSubmit_SessionNotCompleted(t *testing.T) {
	sessions := new(MockSessionReader)
	feedback := new(MockFeedbackRepository)
	service := NewService(sessions, feedback)

	menteeID := int64(20)
	sessions.On("GetByID", mock.Anything, int64(42)).Return(&domain.Session{
		ID:       42,
		MentorID: 10,
		MenteeID: &menteeID,
		Status:   domain.SessionBooked,
	}, nil)

	_, err := service.Submit(context.Background(), 20, SubmitFeedbackRequest{SessionID: 42, Score: 4})

	assert.ErrorIs(t, err, ErrStateConflict)
	feedback.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_SessionMissing(t *testing.T) {
	sessions := new(MockSessionReader)
	feedback := new(MockFeedbackRepository)
	service := NewService(sessions, feedback)

	sessions.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Submit(context.Background(), 20, SubmitFeedbackRequest{SessionID: 99, Score: 4})

	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestSubmit_NotTheMentee(t *testing.T) {
	sessions := new(MockSessionReader)
	feedback := new(MockFeedbackRepository)
	service := NewService(sessions, feedback)

	sessions.On("GetByID", mock.Anything, int64(42)).Return(completedSession(20), nil)

	_, err := service.Submit(context.Background(), 21, SubmitFeedbackRequest{SessionID: 42, Score: 4})

	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestSubmit_Duplicate(t *testing.T) {
	sessions := new(MockSessionReader)
	feedback := new(MockFeedbackRepository)
	service := NewService(sessions, feedback)

	sessions.On("GetByID", mock.Anything, int64(42)).Return(completedSession(20), nil)
	feedback.On("ExistsForRater", mock.Anything, int64(42), int64(20)).Return(true, nil)

	_, err := service.Submit(context.Background(), 20, SubmitFeedbackRequest{SessionID: 42, Score: 4})

	assert.ErrorIs(t, err, ErrDuplicate)
	feedback.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_ScoreOutOfRange(t *testing.T) {
	sessions := new(MockSessionReader)
	feedback := new(MockFeedbackRepository)
	service := NewService(sessions, feedback)

	_, err := service.Submit(context.Background(), 20, SubmitFeedbackRequest{SessionID: 42, Score: 6})

	assert.ErrorIs(t, err, ErrValidation)
	sessions.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

package repository

import (
	"context"
	"errors"
	"time"

	"mentorconnect/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) DB() *gorm.DB { return r.db }

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	var s domain.Session
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteAvailable removes a slot only while it is still available and owned by
// the mentor. Returns false when no row matched.
func (r *SessionRepository) DeleteAvailable(ctx context.Context, sessionID, mentorID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND mentor_id = ? AND status = ?", sessionID, mentorID, domain.SessionAvailable).
		Delete(&domain.Session{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// ApplyOwnedTransition performs a guarded status write: the row must still be
// in tr.From and belong to the mentor. Returns false when nothing matched.
func (r *SessionRepository) ApplyOwnedTransition(ctx context.Context, sessionID, mentorID int64, tr domain.SessionTransition) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ? AND mentor_id = ? AND status = ?", sessionID, mentorID, tr.From).
		Updates(map[string]any{"status": tr.To, "updated_at": time.Now()})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// lockRow adds an exclusive row lock on dialects that support it. SQLite has a
// single writer per database, so the surrounding transaction already
// serializes the check-then-write there.
func (r *SessionRepository) lockRow(tx *gorm.DB) *gorm.DB {
	if r.db.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// Book occupies an available slot for the mentee: it locks the session row,
// re-checks that the slot is still available, writes mentee_id plus the booked
// status, and inserts the Booking — all in one transaction. ErrStaleState is
// returned with zero writes when the slot was taken first.
func (r *SessionRepository) Book(ctx context.Context, sessionID, menteeID int64, reference string) (*domain.Booking, error) {
	var booking *domain.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s domain.Session
		if err := r.lockRow(tx).Where("id = ?", sessionID).First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStaleState
			}
			return err
		}

		tr, ok := domain.TransitionFor(s.Status, domain.EventBook)
		if !ok {
			return ErrStaleState
		}

		if err := tx.Model(&domain.Session{}).
			Where("id = ?", s.ID).
			Updates(map[string]any{
				"mentee_id":  menteeID,
				"status":     tr.To,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return err
		}

		b := &domain.Booking{
			Reference:     reference,
			SessionID:     s.ID,
			MenteeID:      menteeID,
			PaymentStatus: domain.PaymentPaid,
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}

		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// RequestCancellation moves a booked session to pending_cancellation and files
// the request, atomically. Returns ErrStaleState when the session is not a
// booked slot owned by the mentor.
func (r *SessionRepository) RequestCancellation(ctx context.Context, sessionID, mentorID int64, reason string) (*domain.CancellationRequest, error) {
	var request *domain.CancellationRequest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s domain.Session
		if err := r.lockRow(tx).
			Where("id = ? AND mentor_id = ?", sessionID, mentorID).
			First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStaleState
			}
			return err
		}

		tr, ok := domain.TransitionFor(s.Status, domain.EventRequestCancellation)
		if !ok {
			return ErrStaleState
		}

		if err := tx.Model(&domain.Session{}).
			Where("id = ?", s.ID).
			Updates(map[string]any{"status": tr.To, "updated_at": time.Now()}).Error; err != nil {
			return err
		}

		cr := &domain.CancellationRequest{
			SessionID: s.ID,
			MentorID:  mentorID,
			Reason:    reason,
			Status:    domain.CancellationPending,
		}
		if err := tx.Create(cr).Error; err != nil {
			return err
		}

		request = cr
		return nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// ApproveCancellation resolves a pending request: locks it, re-checks the
// pending status, then updates request, session, and booking together. A
// partial apply is never observable; any failure rolls back all three.
func (r *SessionRepository) ApproveCancellation(ctx context.Context, requestID, adminID int64, notes string) (*domain.CancellationRequest, error) {
	var request *domain.CancellationRequest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cr domain.CancellationRequest
		if err := r.lockRow(tx).Where("id = ?", requestID).First(&cr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStaleState
			}
			return err
		}
		if cr.Status != domain.CancellationPending {
			return ErrStaleState
		}

		var s domain.Session
		if err := r.lockRow(tx).Where("id = ?", cr.SessionID).First(&s).Error; err != nil {
			return err
		}
		tr, ok := domain.TransitionFor(s.Status, domain.EventApproveCancellation)
		if !ok {
			return ErrStaleState
		}

		if err := tx.Model(&domain.CancellationRequest{}).
			Where("id = ?", cr.ID).
			Updates(map[string]any{
				"status":               domain.CancellationApproved,
				"resolved_by_admin_id": adminID,
				"admin_notes":          notes,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&domain.Session{}).
			Where("id = ?", s.ID).
			Updates(map[string]any{
				"status":              tr.To,
				"cancellation_reason": cr.Reason,
				"updated_at":          time.Now(),
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&domain.Booking{}).
			Where("session_id = ?", s.ID).
			Update("payment_status", domain.PaymentRefunded).Error; err != nil {
			return err
		}

		cr.Status = domain.CancellationApproved
		cr.ResolvedByAdminID = &adminID
		cr.AdminNotes = notes
		request = &cr
		return nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// UpcomingAvailableByMentor lists a mentor's future open slots.
func (r *SessionRepository) UpcomingAvailableByMentor(ctx context.Context, mentorID int64, now time.Time) ([]domain.Session, error) {
	var sessions []domain.Session
	err := r.db.WithContext(ctx).
		Where("mentor_id = ? AND status = ? AND start_time > ?", mentorID, domain.SessionAvailable, now).
		Order("start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// SessionSummary is the pre-payment view of an available slot.
type SessionSummary struct {
	SessionID  int64     `json:"session_id"`
	StartTime  time.Time `json:"start_time"`
	Fee        float64   `json:"fee"`
	MentorName string    `json:"mentor_name"`
}

func (r *SessionRepository) AvailableSummary(ctx context.Context, sessionID int64) (*SessionSummary, error) {
	var row SessionSummary
	err := r.db.WithContext(ctx).
		Table("sessions s").
		Select("s.id AS session_id, s.start_time, s.fee, u.name AS mentor_name").
		Joins("JOIN users u ON u.id = s.mentor_id").
		Where("s.id = ? AND s.status = ?", sessionID, domain.SessionAvailable).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// MenteeBookingRow is one row of the mentee dashboard.
type MenteeBookingRow struct {
	SessionID     int64                `json:"session_id"`
	BookingID     int64                `json:"booking_id"`
	StartTime     time.Time            `json:"start_time"`
	Status        domain.SessionStatus `json:"status"`
	MentorName    string               `json:"mentor_name"`
	FeedbackGiven bool                 `json:"feedback_given"`
}

func (r *SessionRepository) MenteeBookings(ctx context.Context, menteeID int64) ([]MenteeBookingRow, error) {
	rows := make([]MenteeBookingRow, 0)
	err := r.db.WithContext(ctx).
		Table("sessions s").
		Select(`s.id AS session_id, b.id AS booking_id, s.start_time, s.status, u.name AS mentor_name,
			(SELECT COUNT(*) FROM feedback f WHERE f.session_id = s.id AND f.rater_id = ?) > 0 AS feedback_given`,
			menteeID).
		Joins("JOIN users u ON u.id = s.mentor_id").
		Joins("JOIN bookings b ON b.session_id = s.id AND b.mentee_id = s.mentee_id").
		Where("s.mentee_id = ? AND s.status IN ?", menteeID, []domain.SessionStatus{
			domain.SessionBooked, domain.SessionCompleted, domain.SessionCanceled, domain.SessionPendingCancellation,
		}).
		Order("s.start_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MentorSessionRow is one row of the mentor dashboard.
type MentorSessionRow struct {
	SessionID  int64                `json:"session_id"`
	StartTime  time.Time            `json:"start_time"`
	Status     domain.SessionStatus `json:"status"`
	MenteeName *string              `json:"mentee_name"`
}

func (r *SessionRepository) MentorSessions(ctx context.Context, mentorID int64) ([]MentorSessionRow, error) {
	rows := make([]MentorSessionRow, 0)
	err := r.db.WithContext(ctx).
		Table("sessions s").
		Select("s.id AS session_id, s.start_time, s.status, u.name AS mentee_name").
		Joins("LEFT JOIN users u ON u.id = s.mentee_id").
		Where("s.mentor_id = ? AND s.status IN ?", mentorID, []domain.SessionStatus{
			domain.SessionBooked, domain.SessionAvailable, domain.SessionCompleted, domain.SessionPendingCancellation,
		}).
		Order("s.start_time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

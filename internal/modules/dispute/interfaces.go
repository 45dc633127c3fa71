package dispute

import (
	"context"

	"mentorconnect/internal/domain"
	"mentorconnect/internal/repository"
)

type BookingReader interface {
	IsOwnedByMentee(ctx context.Context, bookingID, menteeID int64) (bool, error)
}

type DisputeRepository interface {
	Create(ctx context.Context, d *domain.Dispute) error
	ExistsForBooking(ctx context.Context, bookingID int64) (bool, error)
	Resolve(ctx context.Context, disputeID, adminID int64, notes string) (bool, error)
	ListOpen(ctx context.Context) ([]repository.OpenDisputeRow, error)
}

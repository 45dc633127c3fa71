package dispute

type RaiseDisputeRequest struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type ResolveDisputeRequest struct {
	DisputeID       int64  `json:"dispute_id" binding:"required"`
	ResolutionNotes string `json:"resolution_notes"`
}

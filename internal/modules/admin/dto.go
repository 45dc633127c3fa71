package admin

type VerifyMentorRequest struct {
	MentorID int64 `json:"mentor_id" binding:"required"`
}

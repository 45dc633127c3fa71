package feedback

type SubmitFeedbackRequest struct {
	SessionID int64  `json:"session_id" binding:"required"`
	Score     int    `json:"score" binding:"required,min=1,max=5"`
	Comments  string `json:"comments"`
}

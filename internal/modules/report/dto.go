package report

type ContentRef struct {
	Type string `json:"type" binding:"required"`
	ID   int64  `json:"id" binding:"required"`
}

type CreateReportRequest struct {
	Reason  string     `json:"reason" binding:"required"`
	Content ContentRef `json:"content" binding:"required"`
}

package rating

type RateRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

type EvaluationResponse struct {
	Ratings       []RatingItem `json:"ratings"`
	TotalRatings  int64        `json:"total_ratings"`
	AverageRating float64      `json:"average_rating"`
}

type RatingItem struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
}

package domain

import "time"

// Rating is unique per (user, recipe); re-rating updates the row in place.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_rating_user_recipe"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_rating_user_recipe"`
	Rating    int       `json:"rating" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Rating) TableName() string { return "ratings" }

// RatingSummary is the aggregate returned alongside a recipe's ratings.
type RatingSummary struct {
	Total   int64   `json:"total_ratings"`
	Average float64 `json:"average_rating"`
}

package repository

import (
	"context"
	"math"
	"time"

	"sabor/internal/domain"

	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert inserts the rating or updates the existing (user, recipe) row.
// Returns true when a new row was created.
func (r *RatingRepository) Upsert(ctx context.Context, rt *domain.Rating) (bool, error) {
	var existing domain.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", rt.UserID, rt.RecipeID).
		First(&existing).Error
	if err == nil {
		tx := r.db.WithContext(ctx).Model(&domain.Rating{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"rating":     rt.Rating,
				"updated_at": time.Now().UTC(),
			})
		if tx.Error != nil {
			return false, tx.Error
		}
		existing.Rating = rt.Rating
		*rt = existing
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	if err := r.db.WithContext(ctx).Create(rt).Error; err != nil {
		// lost the duplicate-key race: fall back to the update path
		if IsUniqueViolation(err) {
			return r.Upsert(ctx, rt)
		}
		return false, err
	}
	return true, nil
}

func (r *RatingRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Rating, error) {
	var ratings []domain.Rating
	err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at").
		Find(&ratings).Error
	return ratings, err
}

// Summary computes count and arithmetic mean rounded to 2 decimals;
// average is 0 when the recipe has no ratings.
func (r *RatingRepository) Summary(ctx context.Context, recipeID int64) (*domain.RatingSummary, error) {
	var row struct {
		Total   int64
		Average *float64
	}
	err := r.db.WithContext(ctx).Model(&domain.Rating{}).
		Select("COUNT(*) AS total, AVG(rating) AS average").
		Where("recipe_id = ?", recipeID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	summary := &domain.RatingSummary{Total: row.Total}
	if row.Average != nil {
		summary.Average = math.Round(*row.Average*100) / 100
	}
	return summary, nil
}

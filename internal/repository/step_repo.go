package repository

import (
	"context"

	"sabor/internal/domain"

	"gorm.io/gorm"
)

type StepRepository struct {
	db *gorm.DB
}

func NewStepRepository(db *gorm.DB) *StepRepository {
	return &StepRepository{db: db}
}

// CreateBatch inserts all steps or none of them.
func (r *StepRepository) CreateBatch(ctx context.Context, steps []domain.PreparationStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range steps {
			if err := tx.Create(&steps[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *StepRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.PreparationStep, error) {
	var steps []domain.PreparationStep
	err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("step_order ASC").
		Find(&steps).Error
	return steps, err
}

// Delete removes the step scoped by the (recipe, step) pair.
func (r *StepRepository) Delete(ctx context.Context, recipeID, stepID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("recipe_id = ? AND id = ?", recipeID, stepID).
		Delete(&domain.PreparationStep{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

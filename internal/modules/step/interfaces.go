package step

import (
	"context"

	"sabor/internal/domain"
)

type StepRepositoryInterface interface {
	CreateBatch(ctx context.Context, steps []domain.PreparationStep) error
	ListByRecipe(ctx context.Context, recipeID int64) ([]domain.PreparationStep, error)
	Delete(ctx context.Context, recipeID, stepID int64) (bool, error)
}

type RecipeReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
}

package ingredient

import (
	"context"

	"sabor/internal/domain"
)

type IngredientRepositoryInterface interface {
	Create(ctx context.Context, ing *domain.Ingredient) error
	GetByID(ctx context.Context, id int64) (*domain.Ingredient, error)
	ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Ingredient, error)
	Delete(ctx context.Context, id int64) error
}

type RecipeReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
}

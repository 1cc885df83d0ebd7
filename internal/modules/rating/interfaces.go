package rating

import (
	"context"

	"sabor/internal/domain"
)

type RatingRepositoryInterface interface {
	Upsert(ctx context.Context, rt *domain.Rating) (bool, error)
	ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Rating, error)
	Summary(ctx context.Context, recipeID int64) (*domain.RatingSummary, error)
}

type RecipeReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int64, t domain.NotificationType, data map[string]any)
}

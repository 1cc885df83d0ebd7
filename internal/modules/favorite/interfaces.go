package favorite

import (
	"context"

	"sabor/internal/domain"
)

type FavoriteRepositoryInterface interface {
	Add(ctx context.Context, userID, recipeID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, recipeID int64) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Favorite, int64, error)
}

type RecipeReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int64, t domain.NotificationType, data map[string]any)
}

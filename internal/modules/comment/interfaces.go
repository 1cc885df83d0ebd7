package comment

import (
	"context"

	"sabor/internal/domain"
)

type CommentRepositoryInterface interface {
	Create(ctx context.Context, cm *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type RecipeReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int64, t domain.NotificationType, data map[string]any)
}

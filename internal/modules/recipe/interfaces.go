package recipe

import (
	"context"

	"sabor/internal/domain"
	"sabor/internal/repository"
)

type RecipeRepositoryInterface interface {
	Create(ctx context.Context, r *domain.Recipe) error
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	Search(ctx context.Context, f repository.RecipeFilter) ([]domain.Recipe, error)
	Random(ctx context.Context) (*domain.Recipe, error)
	Update(ctx context.Context, r *domain.Recipe) error
	Delete(ctx context.Context, id int64) error
}

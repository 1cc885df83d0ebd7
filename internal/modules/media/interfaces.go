package media

import (
	"context"

	"sabor/internal/domain"
)

type MediaRepositoryInterface interface {
	Create(ctx context.Context, m *domain.Media) error
	GetByID(ctx context.Context, id int64) (*domain.Media, error)
	Delete(ctx context.Context, id int64) error
}

type RecipeReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
}

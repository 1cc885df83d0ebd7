package report

import (
	"context"

	"sabor/internal/domain"
)

type ReportRepositoryInterface interface {
	Create(ctx context.Context, rp *domain.Report) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Report, error)
}

type RecipeReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
}

type CommentReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
}

package report

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"sabor/internal/domain"
)

type Service struct {
	reports  ReportRepositoryInterface
	recipes  RecipeReader
	comments CommentReader
}

func NewService(reports ReportRepositoryInterface, recipes RecipeReader, comments CommentReader) *Service {
	return &Service{reports: reports, recipes: recipes, comments: comments}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateReportRequest) (*domain.Report, error) {
	reason := domain.ReportReason(strings.ToUpper(req.Reason))
	if !reason.Valid() {
		return nil, ErrInvalidReason
	}
	contentType := domain.ContentType(strings.ToUpper(req.Content.Type))
	if !contentType.Valid() {
		return nil, ErrInvalidContent
	}

	if err := s.verifyTarget(ctx, contentType, req.Content.ID); err != nil {
		return nil, err
	}

	rp := &domain.Report{
		UserID: userID,
		Reason: reason,
		Status: domain.StatusPending,
		Content: domain.ReportedContent{
			Type: contentType,
			ID:   req.Content.ID,
		},
	}
	if err := s.reports.Create(ctx, rp); err != nil {
		return nil, err
	}
	return rp, nil
}

func (s *Service) verifyTarget(ctx context.Context, t domain.ContentType, id int64) error {
	var err error
	switch t {
	case domain.ContentRecipe:
		_, err = s.recipes.GetByID(ctx, id)
	case domain.ContentComment:
		_, err = s.comments.GetByID(ctx, id)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrContentNotFound
	}
	return err
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Report, error) {
	return s.reports.ListByUser(ctx, userID)
}

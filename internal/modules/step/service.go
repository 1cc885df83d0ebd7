package step

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sabor/internal/domain"
)

type Service struct {
	steps   StepRepositoryInterface
	recipes RecipeReader
}

func NewService(steps StepRepositoryInterface, recipes RecipeReader) *Service {
	return &Service{steps: steps, recipes: recipes}
}

// AddBatch persists every step or none of them.
func (s *Service) AddBatch(ctx context.Context, userID, recipeID int64, req CreateStepsRequest) ([]domain.PreparationStep, error) {
	r, err := s.recipes.GetByID(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	if r.AuthorID != userID {
		return nil, ErrNotAuthor
	}

	steps := make([]domain.PreparationStep, 0, len(req.Steps))
	for _, in := range req.Steps {
		steps = append(steps, domain.PreparationStep{
			RecipeID:    recipeID,
			Order:       in.Order,
			Description: in.Description,
		})
	}
	if err := s.steps.CreateBatch(ctx, steps); err != nil {
		return nil, err
	}
	return steps, nil
}

func (s *Service) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.PreparationStep, error) {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return s.steps.ListByRecipe(ctx, recipeID)
}

func (s *Service) Remove(ctx context.Context, userID, recipeID, stepID int64) error {
	r, err := s.recipes.GetByID(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecipeNotFound
	}
	if err != nil {
		return err
	}
	if r.AuthorID != userID {
		return ErrNotAuthor
	}

	removed, err := s.steps.Delete(ctx, recipeID, stepID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrStepNotFound
	}
	return nil
}

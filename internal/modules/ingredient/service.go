package ingredient

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sabor/internal/domain"
)

type Service struct {
	ingredients IngredientRepositoryInterface
	recipes     RecipeReader
}

func NewService(ingredients IngredientRepositoryInterface, recipes RecipeReader) *Service {
	return &Service{ingredients: ingredients, recipes: recipes}
}

func (s *Service) Add(ctx context.Context, userID, recipeID int64, req CreateIngredientRequest) (*domain.Ingredient, error) {
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

	ing := &domain.Ingredient{
		RecipeID:    recipeID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		MeasureUnit: req.MeasureUnit,
	}
	if err := s.ingredients.Create(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

func (s *Service) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Ingredient, error) {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return s.ingredients.ListByRecipe(ctx, recipeID)
}

func (s *Service) Remove(ctx context.Context, userID, ingredientID int64) error {
	ing, err := s.ingredients.GetByID(ctx, ingredientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrIngredientNotFound
	}
	if err != nil {
		return err
	}

	r, err := s.recipes.GetByID(ctx, ing.RecipeID)
	if err != nil {
		return err
	}
	if r.AuthorID != userID {
		return ErrNotAuthor
	}
	return s.ingredients.Delete(ctx, ingredientID)
}

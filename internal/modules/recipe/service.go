package recipe

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"sabor/internal/domain"
	"sabor/internal/repository"
)

type Service struct {
	recipes RecipeRepositoryInterface
}

func NewService(recipes RecipeRepositoryInterface) *Service {
	return &Service{recipes: recipes}
}

func (s *Service) Create(ctx context.Context, authorID int64, req CreateRecipeRequest) (*domain.Recipe, error) {
	difficulty := domain.Difficulty(strings.ToUpper(req.Difficulty))
	if !difficulty.Valid() {
		return nil, ErrInvalidInput
	}
	state := strings.ToUpper(req.State)
	if !domain.ValidState(state) {
		return nil, ErrInvalidInput
	}

	r := &domain.Recipe{
		AuthorID:   authorID,
		Title:      req.Title,
		Difficulty: difficulty,
		PrepTime:   req.PrepTime,
		State:      state,
	}
	if err := s.recipes.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	r, err := s.recipes.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Search returns the recipes matching the filter. An empty result is
// reported as ErrRecipeNotFound so the handler can answer 404, which is
// the contract clients already depend on.
func (s *Service) Search(ctx context.Context, q SearchQuery) ([]domain.Recipe, error) {
	f := repository.RecipeFilter{
		Title:       q.Title,
		Difficulty:  domain.Difficulty(strings.ToUpper(q.Difficulty)),
		MaxPrepTime: q.PrepTime,
		State:       strings.ToUpper(q.State),
	}
	results, err := s.recipes.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrRecipeNotFound
	}
	return results, nil
}

func (s *Service) Random(ctx context.Context) (*domain.Recipe, error) {
	r, err := s.recipes.Random(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Update(ctx context.Context, userID, recipeID int64, req UpdateRecipeRequest) (*domain.Recipe, error) {
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

	if req.Title != nil {
		r.Title = *req.Title
	}
	if req.Difficulty != nil {
		difficulty := domain.Difficulty(strings.ToUpper(*req.Difficulty))
		if !difficulty.Valid() {
			return nil, ErrInvalidInput
		}
		r.Difficulty = difficulty
	}
	if req.PrepTime != nil {
		if *req.PrepTime <= 0 {
			return nil, ErrInvalidInput
		}
		r.PrepTime = *req.PrepTime
	}
	if req.State != nil {
		state := strings.ToUpper(*req.State)
		if !domain.ValidState(state) {
			return nil, ErrInvalidInput
		}
		r.State = state
	}

	if err := s.recipes.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, userID, recipeID int64) error {
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
	return s.recipes.Delete(ctx, recipeID)
}

package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sabor/internal/domain"
	"sabor/internal/repository"
)

type Service struct {
	favorites FavoriteRepositoryInterface
	recipes   RecipeReader
	notifier  Notifier
}

func NewService(favorites FavoriteRepositoryInterface, recipes RecipeReader, notifier Notifier) *Service {
	return &Service{favorites: favorites, recipes: recipes, notifier: notifier}
}

func (s *Service) Add(ctx context.Context, userID, recipeID int64) (*domain.Favorite, error) {
	r, err := s.recipes.GetByID(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}

	fav, err := s.favorites.Add(ctx, userID, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyFavorited) {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}

	if s.notifier != nil && r.AuthorID != userID {
		s.notifier.Notify(ctx, r.AuthorID, domain.NotifFavorite, map[string]any{
			"recipe_id": recipeID,
			"user_id":   userID,
		})
	}
	return fav, nil
}

func (s *Service) Remove(ctx context.Context, userID, recipeID int64) error {
	err := s.favorites.Remove(ctx, userID, recipeID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return ErrFavoriteNotFound
	}
	return err
}

func (s *Service) List(ctx context.Context, userID int64, page, perPage int) ([]domain.Favorite, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return s.favorites.ListByUser(ctx, userID, perPage, (page-1)*perPage)
}

package media

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"sabor/internal/domain"
)

type Service struct {
	media   MediaRepositoryInterface
	recipes RecipeReader
}

func NewService(media MediaRepositoryInterface, recipes RecipeReader) *Service {
	return &Service{media: media, recipes: recipes}
}

func (s *Service) Attach(ctx context.Context, userID, recipeID int64, req CreateMediaRequest) (*domain.Media, error) {
	mediaType := domain.MediaType(strings.ToUpper(req.Type))
	if !mediaType.Valid() {
		return nil, ErrInvalidType
	}

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

	m := &domain.Media{RecipeID: recipeID, URL: req.URL, Type: mediaType}
	if err := s.media.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Remove(ctx context.Context, userID, mediaID int64) error {
	m, err := s.media.GetByID(ctx, mediaID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMediaNotFound
	}
	if err != nil {
		return err
	}

	r, err := s.recipes.GetByID(ctx, m.RecipeID)
	if err != nil {
		return err
	}
	if r.AuthorID != userID {
		return ErrNotAuthor
	}
	return s.media.Delete(ctx, mediaID)
}

package comment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sabor/internal/domain"
)

type Service struct {
	comments CommentRepositoryInterface
	recipes  RecipeReader
	notifier Notifier
}

func NewService(comments CommentRepositoryInterface, recipes RecipeReader, notifier Notifier) *Service {
	return &Service{comments: comments, recipes: recipes, notifier: notifier}
}

func (s *Service) Create(ctx context.Context, userID, recipeID int64, req CreateCommentRequest) (*domain.Comment, error) {
	r, err := s.recipes.GetByID(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}

	cm := &domain.Comment{
		UserID:   userID,
		RecipeID: recipeID,
		Text:     req.Text,
	}
	if err := s.comments.Create(ctx, cm); err != nil {
		return nil, err
	}

	// Commenting on your own recipe does not generate a notification.
	if s.notifier != nil && r.AuthorID != userID {
		s.notifier.Notify(ctx, r.AuthorID, domain.NotifComment, map[string]any{
			"recipe_id":  recipeID,
			"comment_id": cm.ID,
			"user_id":    userID,
		})
	}
	return cm, nil
}

func (s *Service) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Comment, error) {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return s.comments.ListByRecipe(ctx, recipeID)
}

func (s *Service) Delete(ctx context.Context, userID, commentID int64) error {
	cm, err := s.comments.GetByID(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCommentNotFound
	}
	if err != nil {
		return err
	}
	if cm.UserID != userID {
		return ErrNotOwner
	}
	return s.comments.Delete(ctx, commentID)
}

package rating

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"sabor/internal/domain"
)

const summaryCacheTTL = 5 * time.Minute

type Service struct {
	ratings  RatingRepositoryInterface
	recipes  RecipeReader
	notifier Notifier
	cache    *redis.Client
}

// NewService wires the rating flow; cache may be nil, in which case every
// summary read hits the database.
func NewService(ratings RatingRepositoryInterface, recipes RecipeReader, notifier Notifier, cache *redis.Client) *Service {
	return &Service{ratings: ratings, recipes: recipes, notifier: notifier, cache: cache}
}

type RateResult struct {
	Rating  *domain.Rating
	Created bool
}

func (s *Service) Rate(ctx context.Context, userID, recipeID, value int64) (*RateResult, error) {
	if value < 1 || value > 5 {
		return nil, ErrInvalidRating
	}

	r, err := s.recipes.GetByID(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}

	rt := &domain.Rating{UserID: userID, RecipeID: recipeID, Rating: int(value)}
	created, err := s.ratings.Upsert(ctx, rt)
	if err != nil {
		return nil, err
	}

	s.invalidateSummary(ctx, recipeID)

	if created && s.notifier != nil && r.AuthorID != userID {
		s.notifier.Notify(ctx, r.AuthorID, domain.NotifRating, map[string]any{
			"recipe_id": recipeID,
			"user_id":   userID,
			"rating":    value,
		})
	}
	return &RateResult{Rating: rt, Created: created}, nil
}

func (s *Service) Evaluation(ctx context.Context, recipeID int64) (*EvaluationResponse, error) {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	summary, err := s.summary(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratings.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	items := make([]RatingItem, 0, len(ratings))
	for _, rt := range ratings {
		items = append(items, RatingItem{
			ID:        rt.ID,
			UserID:    rt.UserID,
			Rating:    rt.Rating,
			CreatedAt: rt.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return &EvaluationResponse{
		Ratings:       items,
		TotalRatings:  summary.Total,
		AverageRating: summary.Average,
	}, nil
}

func (s *Service) summary(ctx context.Context, recipeID int64) (*domain.RatingSummary, error) {
	key := summaryKey(recipeID)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var cached domain.RatingSummary
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	summary, err := s.ratings.Summary(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(summary); err == nil {
			s.cache.Set(ctx, key, raw, summaryCacheTTL)
		}
	}
	return summary, nil
}

func (s *Service) invalidateSummary(ctx context.Context, recipeID int64) {
	if s.cache == nil {
		return
	}
	s.cache.Del(ctx, summaryKey(recipeID))
}

func summaryKey(recipeID int64) string {
	return fmt.Sprintf("rating:summary:%d", recipeID)
}

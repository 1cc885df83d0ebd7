package rating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sabor/internal/domain"
)

type mockRatingRepo struct {
	mock.Mock
}

func (m *mockRatingRepo) Upsert(ctx context.Context, rt *domain.Rating) (bool, error) {
	args := m.Called(ctx, rt)
	return args.Bool(0), args.Error(1)
}

func (m *mockRatingRepo) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Rating, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *mockRatingRepo) Summary(ctx context.Context, recipeID int64) (*domain.RatingSummary, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RatingSummary), args.Error(1)
}

type mockRecipeReader struct {
	mock.Mock
}

func (m *mockRecipeReader) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, userID int64, t domain.NotificationType, data map[string]any) {
	m.Called(ctx, userID, t, data)
}

func TestRate_OutOfRange(t *testing.T) {
	svc := NewService(new(mockRatingRepo), new(mockRecipeReader), nil, nil)

	for _, v := range []int64{0, 6, -1} {
		_, err := svc.Rate(context.Background(), 1, 1, v)
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
}

func TestRate_RecipeMissing(t *testing.T) {
	recipes := new(mockRecipeReader)
	svc := NewService(new(mockRatingRepo), recipes, nil, nil)

	recipes.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Rate(context.Background(), 1, 9, 4)

	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRate_InsertNotifiesAuthor(t *testing.T) {
	ratings := new(mockRatingRepo)
	recipes := new(mockRecipeReader)
	notifier := new(mockNotifier)
	svc := NewService(ratings, recipes, notifier, nil)

	recipes.On("GetByID", mock.Anything, int64(3)).Return(&domain.Recipe{ID: 3, AuthorID: 2}, nil)
	ratings.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Rating")).Return(true, nil)
	notifier.On("Notify", mock.Anything, int64(2), domain.NotifRating, mock.Anything).Once()

	result, err := svc.Rate(context.Background(), 1, 3, 5)

	require.NoError(t, err)
	assert.True(t, result.Created)
	notifier.AssertExpectations(t)
}

func TestRate_UpdateDoesNotNotify(t *testing.T) {
	ratings := new(mockRatingRepo)
	recipes := new(mockRecipeReader)
	notifier := new(mockNotifier)
	svc := NewService(ratings, recipes, notifier, nil)

	recipes.On("GetByID", mock.Anything, int64(3)).Return(&domain.Recipe{ID: 3, AuthorID: 2}, nil)
	ratings.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Rating")).Return(false, nil)

	result, err := svc.Rate(context.Background(), 1, 3, 4)

	require.NoError(t, err)
	assert.False(t, result.Created)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRate_OwnRecipeDoesNotNotify(t *testing.T) {
	ratings := new(mockRatingRepo)
	recipes := new(mockRecipeReader)
	notifier := new(mockNotifier)
	svc := NewService(ratings, recipes, notifier, nil)

	recipes.On("GetByID", mock.Anything, int64(3)).Return(&domain.Recipe{ID: 3, AuthorID: 1}, nil)
	ratings.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Rating")).Return(true, nil)

	_, err := svc.Rate(context.Background(), 1, 3, 5)

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEvaluation(t *testing.T) {
	ratings := new(mockRatingRepo)
	recipes := new(mockRecipeReader)
	svc := NewService(ratings, recipes, nil, nil)

	now := time.Now()
	recipes.On("GetByID", mock.Anything, int64(3)).Return(&domain.Recipe{ID: 3}, nil)
	ratings.On("Summary", mock.Anything, int64(3)).Return(&domain.RatingSummary{Total: 2, Average: 4}, nil)
	ratings.On("ListByRecipe", mock.Anything, int64(3)).Return([]domain.Rating{
		{ID: 1, UserID: 10, Rating: 3, CreatedAt: now},
		{ID: 2, UserID: 11, Rating: 5, CreatedAt: now},
	}, nil)

	eval, err := svc.Evaluation(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(2), eval.TotalRatings)
	assert.Equal(t, 4.0, eval.AverageRating)
	assert.Len(t, eval.Ratings, 2)
}

func TestEvaluation_EmptyRecipe(t *testing.T) {
	ratings := new(mockRatingRepo)
	recipes := new(mockRecipeReader)
	svc := NewService(ratings, recipes, nil, nil)

	recipes.On("GetByID", mock.Anything, int64(3)).Return(&domain.Recipe{ID: 3}, nil)
	ratings.On("Summary", mock.Anything, int64(3)).Return(&domain.RatingSummary{Total: 0, Average: 0}, nil)
	ratings.On("ListByRecipe", mock.Anything, int64(3)).Return([]domain.Rating{}, nil)

	eval, err := svc.Evaluation(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(0), eval.TotalRatings)
	assert.Equal(t, 0.0, eval.AverageRating)
	assert.Empty(t, eval.Ratings)
}

package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sabor/internal/domain"
	"sabor/internal/repository"
)

type mockRecipeRepo struct {
	mock.Mock
}

func (m *mockRecipeRepo) Create(ctx context.Context, r *domain.Recipe) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil {
		r.ID = 1
	}
	return args.Error(0)
}

func (m *mockRecipeRepo) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *mockRecipeRepo) Search(ctx context.Context, f repository.RecipeFilter) ([]domain.Recipe, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *mockRecipeRepo) Random(ctx context.Context) (*domain.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *mockRecipeRepo) Update(ctx context.Context, r *domain.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockRecipeRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreate_InvalidDifficulty(t *testing.T) {
	svc := NewService(new(mockRecipeRepo))

	_, err := svc.Create(context.Background(), 1, CreateRecipeRequest{
		Title:      "Bolo",
		Difficulty: "IMPOSSIVEL",
		PrepTime:   30,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_NormalizesFields(t *testing.T) {
	repo := new(mockRecipeRepo)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Recipe")).Return(nil)

	r, err := svc.Create(context.Background(), 7, CreateRecipeRequest{
		Title:      "Bolo de Fubá",
		Difficulty: "facil",
		PrepTime:   45,
		State:      "mg",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyEasy, r.Difficulty)
	assert.Equal(t, "MG", r.State)
	assert.Equal(t, int64(7), r.AuthorID)
}

func TestSearch_EmptyResultIsNotFound(t *testing.T) {
	repo := new(mockRecipeRepo)
	svc := NewService(repo)

	repo.On("Search", mock.Anything, mock.AnythingOfType("repository.RecipeFilter")).
		Return([]domain.Recipe{}, nil)

	_, err := svc.Search(context.Background(), SearchQuery{Title: "inexistente"})

	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestSearch_UppercasesFilters(t *testing.T) {
	repo := new(mockRecipeRepo)
	svc := NewService(repo)

	expected := repository.RecipeFilter{Difficulty: "FACIL", MaxPrepTime: 30, State: "SP"}
	repo.On("Search", mock.Anything, expected).Return([]domain.Recipe{{ID: 1}}, nil)

	results, err := svc.Search(context.Background(), SearchQuery{
		Difficulty: "facil",
		PrepTime:   30,
		State:      "sp",
	})

	require.NoError(t, err)
	assert.Len(t, results, 1)
	repo.AssertExpectations(t)
}

func TestUpdate_OnlyAuthor(t *testing.T) {
	repo := new(mockRecipeRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Recipe{ID: 3, AuthorID: 2}, nil)

	title := "Novo título"
	_, err := svc.Update(context.Background(), 1, 3, UpdateRecipeRequest{Title: &title})

	assert.ErrorIs(t, err, ErrNotAuthor)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := new(mockRecipeRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Recipe{
		ID:         3,
		AuthorID:   1,
		Title:      "Original",
		Difficulty: domain.DifficultyEasy,
		PrepTime:   20,
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Recipe")).Return(nil)

	prepTime := 35
	r, err := svc.Update(context.Background(), 1, 3, UpdateRecipeRequest{PrepTime: &prepTime})

	require.NoError(t, err)
	assert.Equal(t, 35, r.PrepTime)
	assert.Equal(t, "Original", r.Title)
}

func TestDelete_OnlyAuthor(t *testing.T) {
	repo := new(mockRecipeRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Recipe{ID: 3, AuthorID: 2}, nil)

	err := svc.Delete(context.Background(), 1, 3)

	assert.ErrorIs(t, err, ErrNotAuthor)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRandom_Empty(t *testing.T) {
	repo := new(mockRecipeRepo)
	svc := NewService(repo)

	repo.On("Random", mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Random(context.Background())

	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

package media

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sabor/internal/domain"
)

type mockMediaRepo struct {
	mock.Mock
}

func (m *mockMediaRepo) Create(ctx context.Context, media *domain.Media) error {
	args := m.Called(ctx, media)
	if args.Error(0) == nil {
		media.ID = 1
	}
	return args.Error(0)
}

func (m *mockMediaRepo) GetByID(ctx context.Context, id int64) (*domain.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Media), args.Error(1)
}

func (m *mockMediaRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

func newTestService() (*Service, *mockMediaRepo, *mockRecipeReader) {
	media := new(mockMediaRepo)
	recipes := new(mockRecipeReader)
	return NewService(media, recipes), media, recipes
}

func TestAttach_NormalizesType(t *testing.T) {
	svc, media, recipes := newTestService()

	recipes.On("GetByID", mock.Anything, int64(10)).Return(&domain.Recipe{ID: 10, AuthorID: 7}, nil)
	media.On("Create", mock.Anything, mock.AnythingOfType("*domain.Media")).Return(nil)

	m, err := svc.Attach(context.Background(), 7, 10, CreateMediaRequest{
		URL:  "https://example.com/foto.jpg",
		Type: "imagem",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.MediaImage, m.Type)
	assert.Equal(t, int64(10), m.RecipeID)
}

func TestAttach_InvalidType(t *testing.T) {
	svc, media, _ := newTestService()

	_, err := svc.Attach(context.Background(), 7, 10, CreateMediaRequest{
		URL:  "https://example.com/foto.gif",
		Type: "GIF",
	})

	assert.ErrorIs(t, err, ErrInvalidType)
	media.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAttach_RecipeMissing(t *testing.T) {
	svc, _, recipes := newTestService()

	recipes.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Attach(context.Background(), 7, 99, CreateMediaRequest{
		URL:  "https://example.com/foto.jpg",
		Type: "IMAGEM",
	})

	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestAttach_OnlyAuthor(t *testing.T) {
	svc, media, recipes := newTestService()

	recipes.On("GetByID", mock.Anything, int64(10)).Return(&domain.Recipe{ID: 10, AuthorID: 7}, nil)

	_, err := svc.Attach(context.Background(), 8, 10, CreateMediaRequest{
		URL:  "https://example.com/foto.jpg",
		Type: "VIDEO",
	})

	assert.ErrorIs(t, err, ErrNotAuthor)
	media.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRemove_OnlyAuthor(t *testing.T) {
	svc, media, recipes := newTestService()

	media.On("GetByID", mock.Anything, int64(3)).Return(&domain.Media{ID: 3, RecipeID: 10}, nil)
	recipes.On("GetByID", mock.Anything, int64(10)).Return(&domain.Recipe{ID: 10, AuthorID: 7}, nil)

	err := svc.Remove(context.Background(), 8, 3)

	assert.ErrorIs(t, err, ErrNotAuthor)
	media.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRemove_Success(t *testing.T) {
	svc, media, recipes := newTestService()

	media.On("GetByID", mock.Anything, int64(3)).Return(&domain.Media{ID: 3, RecipeID: 10}, nil)
	recipes.On("GetByID", mock.Anything, int64(10)).Return(&domain.Recipe{ID: 10, AuthorID: 7}, nil)
	media.On("Delete", mock.Anything, int64(3)).Return(nil)

	err := svc.Remove(context.Background(), 7, 3)

	require.NoError(t, err)
	media.AssertExpectations(t)
}

func TestRemove_MediaMissing(t *testing.T) {
	svc, media, _ := newTestService()

	media.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Remove(context.Background(), 7, 404)

	assert.ErrorIs(t, err, ErrMediaNotFound)
}

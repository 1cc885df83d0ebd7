package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sabor/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type mockFollowRepo struct {
	mock.Mock
}

func (m *mockFollowRepo) Add(ctx context.Context, followerID, followeeID int64) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFollowRepo) Remove(ctx context.Context, followerID, followeeID int64) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, userID int64, t domain.NotificationType, data map[string]any) {
	m.Called(ctx, userID, t, data)
}

func strPtr(s string) *string { return &s }

func TestUpdateProfile_PartialFields(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockFollowRepo), nil)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{
		ID:      1,
		Email:   "old@example.com",
		Profile: domain.RoleComum,
		State:   "SP",
	}, nil)
	users.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	u, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileRequest{
		State: strPtr("rj"),
	})

	require.NoError(t, err)
	assert.Equal(t, "RJ", u.State)
	assert.Equal(t, "old@example.com", u.Email, "unset fields stay unchanged")
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockFollowRepo), nil)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	users.On("ExistsByEmail", mock.Anything, "taken@example.com", int64(1)).Return(true, nil)

	_, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileRequest{
		Email: strPtr("taken@example.com"),
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateProfile_InvalidProfile(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockFollowRepo), nil)

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)

	_, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileRequest{
		Profile: strPtr("ROOT"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFollow_Self(t *testing.T) {
	svc := NewService(new(mockUserRepo), new(mockFollowRepo), nil)

	_, err := svc.Follow(context.Background(), 5, 5)

	assert.ErrorIs(t, err, ErrCannotFollowSelf)
}

func TestFollow_UnknownTarget(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockFollowRepo), nil)

	users.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Follow(context.Background(), 1, 9)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollow_NotifiesOnNewEdgeOnly(t *testing.T) {
	users := new(mockUserRepo)
	follows := new(mockFollowRepo)
	notifier := new(mockNotifier)
	svc := NewService(users, follows, notifier)

	target := &domain.User{ID: 2, Username: "ana"}
	users.On("GetByID", mock.Anything, int64(2)).Return(target, nil)
	follows.On("Add", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()
	notifier.On("Notify", mock.Anything, int64(2), domain.NotifFollower, mock.Anything).Once()

	got, err := svc.Follow(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "ana", got.Username)

	// second follow: edge already exists, no new notification
	follows.On("Add", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()

	_, err = svc.Follow(context.Background(), 1, 2)
	require.NoError(t, err)

	notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestUnfollow_MissingEdgeIsNoop(t *testing.T) {
	users := new(mockUserRepo)
	follows := new(mockFollowRepo)
	svc := NewService(users, follows, nil)

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	follows.On("Remove", mock.Anything, int64(1), int64(2)).Return(false, nil)

	_, err := svc.Unfollow(context.Background(), 1, 2)

	assert.NoError(t, err)
}

package user

import (
	"context"

	"sabor/internal/domain"
)

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, u *domain.User) error
}

type FollowRepositoryInterface interface {
	Add(ctx context.Context, followerID, followeeID int64) (bool, error)
	Remove(ctx context.Context, followerID, followeeID int64) (bool, error)
}

// Notifier records a notification for a user; implementations must not
// fail the request when writing fails.
type Notifier interface {
	Notify(ctx context.Context, userID int64, t domain.NotificationType, data map[string]any)
}

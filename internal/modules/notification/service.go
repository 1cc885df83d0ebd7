package notification

import (
	"context"
	"log"

	"sabor/internal/domain"
)

type Service struct {
	notifications NotificationRepositoryInterface
}

func NewService(notifications NotificationRepositoryInterface) *Service {
	return &Service{notifications: notifications}
}

// Notify records an event for a user. Failures are logged and swallowed
// so a broken notification never fails the request that triggered it.
func (s *Service) Notify(ctx context.Context, userID int64, t domain.NotificationType, data map[string]any) {
	n := &domain.Notification{
		UserID: userID,
		Type:   t,
		Data:   data,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		log.Printf("notification: failed to record %s for user %d: %v", t, userID, err)
	}
}

type ListResult struct {
	Notifications []domain.Notification `json:"notifications"`
	Unread        int64                 `json:"unread"`
}

func (s *Service) List(ctx context.Context, userID int64, limit int) (*ListResult, error) {
	items, err := s.notifications.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ListResult{Notifications: items, Unread: unread}, nil
}

func (s *Service) MarkRead(ctx context.Context, userID, id int64) error {
	ok, err := s.notifications.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notifications.MarkAllRead(ctx, userID)
}

package user

import (
	"context"
	"errors"
	"strings"

	"sabor/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	users    UserRepositoryInterface
	follows  FollowRepositoryInterface
	notifier Notifier
}

func NewService(users UserRepositoryInterface, follows FollowRepositoryInterface, notifier Notifier) *Service {
	return &Service{users: users, follows: follows, notifier: notifier}
}

// UpdateProfile applies partial edits; nil fields stay unchanged.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" {
			return nil, ErrInvalidInput
		}
		taken, err := s.users.ExistsByEmail(ctx, email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		u.Email = email
	}

	if req.Profile != nil {
		profile := domain.ProfileRole(strings.ToUpper(strings.TrimSpace(*req.Profile)))
		if !profile.Valid() {
			return nil, ErrInvalidInput
		}
		u.Profile = profile
	}

	if req.State != nil {
		state := strings.ToUpper(strings.TrimSpace(*req.State))
		if !domain.ValidState(state) {
			return nil, ErrInvalidInput
		}
		u.State = state
	}

	if req.AvatarURL != nil {
		u.AvatarURL = strings.TrimSpace(*req.AvatarURL)
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

// Follow adds an edge. Re-following is a no-op; the SEGUIDOR notification
// only fires when the edge is new.
func (s *Service) Follow(ctx context.Context, followerID, targetID int64) (*domain.User, error) {
	if followerID == targetID {
		return nil, ErrCannotFollowSelf
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	created, err := s.follows.Add(ctx, followerID, targetID)
	if err != nil {
		return nil, err
	}

	if created && s.notifier != nil {
		s.notifier.Notify(ctx, targetID, domain.NotifFollower, map[string]any{
			"follower_id": followerID,
		})
	}

	return target, nil
}

// Unfollow removes the edge when present; a missing edge is not an error.
func (s *Service) Unfollow(ctx context.Context, followerID, targetID int64) (*domain.User, error) {
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.follows.Remove(ctx, followerID, targetID); err != nil {
		return nil, err
	}

	return target, nil
}

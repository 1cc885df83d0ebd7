package auth

import (
	"context"
	"errors"
	"strings"

	"sabor/internal/domain"
	"sabor/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID int64, profile string) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users   UserRepositoryInterface
	follows FollowReader
	jwt     jwtService
}

type RegisterResult struct {
	User  *domain.User
	Token string
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepositoryInterface, follows FollowReader, jwt jwtService) *Service {
	return &Service{users: users, follows: follows, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	profile := domain.ProfileRole(strings.ToUpper(strings.TrimSpace(req.Profile)))
	if profile == "" {
		profile = domain.RoleComum
	}
	if !profile.Valid() {
		return nil, ErrInvalidInput
	}

	state := strings.ToUpper(strings.TrimSpace(req.State))
	if !domain.ValidState(state) {
		return nil, ErrInvalidInput
	}

	taken, err := s.users.ExistsByEmail(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	taken, err = s.users.ExistsByUsername(ctx, req.Username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Profile:      profile,
		State:        state,
		AvatarURL:    strings.TrimSpace(req.AvatarURL),
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// duplicate-key race on the unique indexes; recheck to report the field that lost
		if repository.IsUniqueViolation(err) {
			if taken, checkErr := s.users.ExistsByEmail(ctx, user.Email, 0); checkErr == nil && taken {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Profile))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &RegisterResult{User: user, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Profile))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

// GetCurrentUser loads the profile plus both sides of the follow graph.
func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	following, err := s.follows.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.follows.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Profile:   string(user.Profile),
		State:     user.State,
		AvatarURL: user.AvatarURL,
		Following: following,
		Followers: followers,
	}, nil
}

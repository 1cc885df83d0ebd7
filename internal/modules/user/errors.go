package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCannotFollowSelf = errors.New("cannot follow yourself")
	ErrEmailTaken       = errors.New("email already in use")
	ErrInvalidInput     = errors.New("invalid input")
)

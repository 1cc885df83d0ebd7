package recipe

import "errors"

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotAuthor      = errors.New("only the author can modify this recipe")
	ErrInvalidInput   = errors.New("invalid recipe input")
)

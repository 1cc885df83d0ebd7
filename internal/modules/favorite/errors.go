package favorite

import "errors"

var (
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrAlreadyFavorited = errors.New("recipe already favorited")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

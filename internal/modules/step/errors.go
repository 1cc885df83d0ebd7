package step

import "errors"

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrStepNotFound   = errors.New("preparation step not found")
	ErrNotAuthor      = errors.New("only the recipe author can manage steps")
)

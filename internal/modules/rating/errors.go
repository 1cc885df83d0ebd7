package rating

import "errors"

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidRating  = errors.New("rating must be an integer between 1 and 5")
)

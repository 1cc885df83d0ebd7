package ingredient

import "errors"

var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrNotAuthor          = errors.New("only the recipe author can manage ingredients")
)

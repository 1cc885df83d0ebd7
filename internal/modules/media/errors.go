package media

import "errors"

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrMediaNotFound  = errors.New("media not found")
	ErrNotAuthor      = errors.New("only the recipe author can manage media")
	ErrInvalidType    = errors.New("media type must be IMAGEM or VIDEO")
)

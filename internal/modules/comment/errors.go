package comment

import "errors"

var (
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotOwner        = errors.New("only the comment owner can delete it")
)

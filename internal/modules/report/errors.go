package report

import "errors"

var (
	ErrContentNotFound = errors.New("reported content not found")
	ErrInvalidReason   = errors.New("invalid report reason")
	ErrInvalidContent  = errors.New("invalid content type")
)

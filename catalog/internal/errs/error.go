package errs

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("book not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

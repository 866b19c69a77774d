package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("reading list not found")
	ErrRatingNotFound     = errors.New("rating not found")
	ErrBookNotFound       = errors.New("book not found")
	ErrBookNotInList      = errors.New("book is not in the reading list")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidUserName    = errors.New("name must be between 2 and 50 characters")
	ErrStorage            = errors.New("failed to persist changes")
	ErrCatalogUnavailable = errors.New("catalog is unavailable")
)

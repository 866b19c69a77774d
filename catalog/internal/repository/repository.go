package repository

import (
	"context"

	"github.com/Astemirdum/bookbuddy-service/catalog/internal/model"
)

const booksTableName = `books`

type Repository interface {
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetBook(ctx context.Context, bookID string) (model.Book, error)
	// ListByGenre returns up to limit books of genre other than excludeID.
	ListByGenre(ctx context.Context, genre, excludeID string, limit int) ([]model.Book, error)
	Recommended(ctx context.Context, limit int) ([]model.Book, error)
	// UpdateBookRating folds one rating into the stored average atomically.
	UpdateBookRating(ctx context.Context, bookID string, rating int) (model.Book, error)
	Seed(ctx context.Context, books []model.Book) error
}

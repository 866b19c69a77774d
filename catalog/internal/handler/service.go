package handler

import (
	"context"

	"github.com/Astemirdum/bookbuddy-service/catalog/internal/model"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ CatalogService = (*service.Service)(nil)

type CatalogService interface {
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetBook(ctx context.Context, bookID string) (model.Book, error)
	RecommendedBooks(ctx context.Context) ([]model.Book, error)
	SimilarBooks(ctx context.Context, bookID string) ([]model.Book, error)
	RateBook(ctx context.Context, bookID string, rating int) (model.Book, error)
}

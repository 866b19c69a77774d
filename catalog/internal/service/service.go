package service

import (
	"context"

	"github.com/Astemirdum/bookbuddy-service/catalog/internal/errs"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/model"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	recommendedLimit = 5
	similarLimit     = 5
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
	}
}

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, filter)
}

func (s *Service) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	return s.repo.GetBook(ctx, bookID)
}

func (s *Service) RecommendedBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.Recommended(ctx, recommendedLimit)
}

// SimilarBooks lists other books of the same genre. An unknown id has none.
func (s *Service) SimilarBooks(ctx context.Context, bookID string) ([]model.Book, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if errors.Is(err, errs.ErrNotFound) {
		return []model.Book{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.repo.ListByGenre(ctx, book.Genre, book.ID, similarLimit)
}

func (s *Service) RateBook(ctx context.Context, bookID string, rating int) (model.Book, error) {
	book, err := s.repo.UpdateBookRating(ctx, bookID, rating)
	if err != nil {
		return model.Book{}, err
	}
	s.log.Debug("book rated",
		zap.String("book", bookID),
		zap.Int("rating", rating),
		zap.Float64("average", book.AverageRating),
		zap.Int("count", book.RatingsCount))
	return book, nil
}

package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/Astemirdum/bookbuddy-service/catalog/internal/errs"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/model"
	"github.com/Astemirdum/bookbuddy-service/pkg/rating"
	"go.uber.org/zap"
)

type memoryRepository struct {
	mu    sync.RWMutex
	books []model.Book
	log   *zap.Logger
}

// NewMemoryRepository keeps the catalog in process, in insertion order.
func NewMemoryRepository(log *zap.Logger) *memoryRepository {
	return &memoryRepository{
		books: make([]model.Book, 0),
		log:   log.Named("repo"),
	}
}

func (r *memoryRepository) ListBooks(_ context.Context, filter model.BookFilter) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		if filter.Matches(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryRepository) GetBook(_ context.Context, bookID string) (model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(bookID)
	if i < 0 {
		return model.Book{}, errs.ErrNotFound
	}
	return r.books[i], nil
}

func (r *memoryRepository) ListByGenre(_ context.Context, genre, excludeID string, limit int) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	want := model.NormalizeGenre(genre)
	out := make([]model.Book, 0, limit)
	for _, b := range r.books {
		if len(out) == limit {
			break
		}
		if b.ID != excludeID && model.NormalizeGenre(b.Genre) == want {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryRepository) Recommended(_ context.Context, limit int) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.books[:min(limit, len(r.books))]), nil
}

func (r *memoryRepository) UpdateBookRating(_ context.Context, bookID string, stars int) (model.Book, error) {
	if !rating.Valid(stars) {
		return model.Book{}, errs.ErrInvalidRating
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(bookID)
	if i < 0 {
		return model.Book{}, errs.ErrNotFound
	}
	b := &r.books[i]
	b.AverageRating, b.RatingsCount = rating.RunningAverage(b.AverageRating, b.RatingsCount, stars)
	return *b, nil
}

// Seed adds books whose ids are not present yet.
func (r *memoryRepository) Seed(_ context.Context, books []model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range books {
		if r.index(b.ID) >= 0 {
			continue
		}
		r.books = append(r.books, b)
	}
	r.log.Debug("seeded", zap.Int("books", len(r.books)))
	return nil
}

func (r *memoryRepository) index(bookID string) int {
	return slices.IndexFunc(r.books, func(b model.Book) bool { return b.ID == bookID })
}

package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/Astemirdum/bookbuddy-service/catalog/internal/errs"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/model"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seeded(t *testing.T) repository.Repository {
	t.Helper()
	repo := repository.NewMemoryRepository(zap.NewNop())
	require.NoError(t, repo.Seed(context.Background(), model.Seed()))
	return repo
}

func ids(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestMemory_ListBooks(t *testing.T) {
	t.Parallel()
	repo := seeded(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter model.BookFilter
		want   []string
	}{
		{name: "all", filter: model.BookFilter{}, want: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}},
		{name: "slug genre", filter: model.BookFilter{Genre: "science-fiction"}, want: []string{"2", "6"}},
		{name: "title query", filter: model.BookFilter{Query: "DUNE"}, want: []string{"6"}},
		{name: "author query", filter: model.BookFilter{Query: "miller"}, want: []string{"7"}},
		{name: "genre and query", filter: model.BookFilter{Genre: "fiction", Query: "the"}, want: []string{"1", "9"}},
		{name: "no match", filter: model.BookFilter{Genre: "poetry"}, want: []string{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			books, err := repo.ListBooks(ctx, tt.filter)
			require.NoError(t, err)
			require.Equal(t, tt.want, ids(books))
		})
	}
}

func TestMemory_GenreAndRecommended(t *testing.T) {
	t.Parallel()
	repo := seeded(t)
	ctx := context.Background()

	similar, err := repo.ListByGenre(ctx, "Science Fiction", "2", 5)
	require.NoError(t, err)
	require.Equal(t, []string{"6"}, ids(similar))

	rec, err := repo.Recommended(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(rec))

	_, err = repo.GetBook(ctx, "11")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestMemory_UpdateBookRating(t *testing.T) {
	t.Parallel()
	repo := repository.NewMemoryRepository(zap.NewNop())
	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx, []model.Book{{ID: "x", Title: "X", Genre: "Fiction", AverageRating: 4, RatingsCount: 1}}))
	// seeding again keeps the current state
	require.NoError(t, repo.Seed(ctx, []model.Book{{ID: "x", Title: "Other"}}))

	book, err := repo.UpdateBookRating(ctx, "x", 2)
	require.NoError(t, err)
	require.Equal(t, "X", book.Title)
	require.InDelta(t, 3.0, book.AverageRating, 1e-9)
	require.Equal(t, 2, book.RatingsCount)

	_, err = repo.UpdateBookRating(ctx, "x", 0)
	require.ErrorIs(t, err, errs.ErrInvalidRating)
	_, err = repo.UpdateBookRating(ctx, "y", 3)
	require.ErrorIs(t, err, errs.ErrNotFound)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.UpdateBookRating(ctx, "x", 5)
		}()
	}
	wg.Wait()
	book, err = repo.GetBook(ctx, "x")
	require.NoError(t, err)
	require.Equal(t, 52, book.RatingsCount)
}

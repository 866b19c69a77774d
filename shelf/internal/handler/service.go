package handler

import (
	"context"

	"github.com/Astemirdum/bookbuddy-service/shelf/internal/model"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/service"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/trash"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ ShelfService = (*service.Service)(nil)

type ShelfService interface {
	CreateReadingList(ctx context.Context, req model.CreateReadingListRequest) (model.ReadingList, error)
	ListReadingLists(ctx context.Context) []model.ReadingList
	GetReadingList(ctx context.Context, listID string) (model.ReadingList, error)
	SaveReadingList(ctx context.Context, list model.ReadingList) (model.ReadingList, error)
	UpdateReadingList(ctx context.Context, listID string, upd model.ReadingListUpdate) (model.ReadingList, error)
	DeleteReadingList(ctx context.Context, listID string) (trash.Entry, error)
	RestoreReadingList(ctx context.Context, token string) (model.ReadingList, error)
	PurgeReadingList(ctx context.Context, token string) error
	AddBookToReadingList(ctx context.Context, listID, bookID string) (model.ReadingList, bool, error)
	RemoveBookFromReadingList(ctx context.Context, listID, bookID string) (model.ReadingList, error)

	SaveRating(ctx context.Context, bookID string, stars int, review string) (model.Rating, error)
	GetRatings(ctx context.Context) []model.Rating
	GetRatingForBook(ctx context.Context, bookID string) (model.Rating, error)
	BookReviews(ctx context.Context, bookID string) model.ReviewSummary

	GetUserName(ctx context.Context) string
	SaveUserName(ctx context.Context, name string) error
	ProfileStats(ctx context.Context) model.ProfileStats
	RatedBooks(ctx context.Context) ([]model.RatedBook, error)
}

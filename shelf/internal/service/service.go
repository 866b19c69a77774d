package service

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Astemirdum/bookbuddy-service/pkg/id"
	"github.com/Astemirdum/bookbuddy-service/pkg/kafka"
	"github.com/Astemirdum/bookbuddy-service/pkg/profile"
	"github.com/Astemirdum/bookbuddy-service/pkg/rating"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/aggregate"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/catalog"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/errs"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/model"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/store"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/trash"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ Catalog = (*catalog.Client)(nil)

type Catalog interface {
	GetBook(ctx context.Context, bookID string) (model.Book, error)
	RateBook(ctx context.Context, bookID string, rating int) error
}

const catalogFanOut = 4

type Service struct {
	log      *zap.Logger
	stores   *store.Registry
	catalog  Catalog
	trash    *trash.Trash
	enqueuer kafka.Enqueuer
}

func NewService(stores *store.Registry, catalog Catalog, trash *trash.Trash, enqueuer kafka.Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:      log.Named("service"),
		stores:   stores,
		catalog:  catalog,
		trash:    trash,
		enqueuer: enqueuer,
	}
}

func (s *Service) CreateReadingList(ctx context.Context, req model.CreateReadingListRequest) (model.ReadingList, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.ReadingList{}, errs.ErrEmptyName
	}
	listID, err := id.Generate("list")
	if err != nil {
		return model.ReadingList{}, err
	}
	list := model.ReadingList{
		ID:          listID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Books:       []model.Book{},
	}
	if !s.stores.For(ctx).AddReadingList(ctx, list) {
		return model.ReadingList{}, errs.ErrStorage
	}
	return list, nil
}

func (s *Service) ListReadingLists(ctx context.Context) []model.ReadingList {
	return s.stores.For(ctx).GetReadingLists(ctx)
}

func (s *Service) GetReadingList(ctx context.Context, listID string) (model.ReadingList, error) {
	list, ok := s.stores.For(ctx).GetReadingListByID(ctx, listID)
	if !ok {
		return model.ReadingList{}, errs.ErrNotFound
	}
	return list, nil
}

// SaveReadingList creates the list or replaces the one with the same id.
func (s *Service) SaveReadingList(ctx context.Context, list model.ReadingList) (model.ReadingList, error) {
	list.Name = strings.TrimSpace(list.Name)
	if list.Name == "" {
		return model.ReadingList{}, errs.ErrEmptyName
	}
	st := s.stores.For(ctx)
	if !st.AddReadingList(ctx, list) {
		return model.ReadingList{}, errs.ErrStorage
	}
	return s.GetReadingList(ctx, list.ID)
}

func (s *Service) UpdateReadingList(ctx context.Context, listID string, upd model.ReadingListUpdate) (model.ReadingList, error) {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return model.ReadingList{}, errs.ErrEmptyName
		}
		upd.Name = &name
	}
	st := s.stores.For(ctx)
	if _, ok := st.GetReadingListByID(ctx, listID); !ok {
		return model.ReadingList{}, errs.ErrNotFound
	}
	if !st.UpdateReadingList(ctx, listID, upd) {
		return model.ReadingList{}, errs.ErrStorage
	}
	return s.GetReadingList(ctx, listID)
}

// DeleteReadingList removes the list and keeps a copy in the trash until the
// undo window closes.
func (s *Service) DeleteReadingList(ctx context.Context, listID string) (trash.Entry, error) {
	st := s.stores.For(ctx)
	list, ok := st.GetReadingListByID(ctx, listID)
	if !ok {
		return trash.Entry{}, errs.ErrNotFound
	}
	if !st.DeleteReadingList(ctx, listID) {
		return trash.Entry{}, errs.ErrStorage
	}
	return s.trash.Stage(st.Profile(), list), nil
}

// RestoreReadingList claims the trash entry before writing the list back, so
// a concurrent purge or second restore of the same token fails.
func (s *Service) RestoreReadingList(ctx context.Context, token string) (model.ReadingList, error) {
	st := s.stores.For(ctx)
	list, err := s.trash.Restore(st.Profile(), token)
	if err != nil {
		return model.ReadingList{}, err
	}
	if !st.AddReadingList(ctx, list) {
		if rerr := s.trash.Reopen(st.Profile(), token); rerr != nil {
			s.log.Warn("reopen trash entry", zap.Error(rerr), zap.String("list", list.ID))
		}
		return model.ReadingList{}, errs.ErrStorage
	}
	return list, nil
}

func (s *Service) PurgeReadingList(ctx context.Context, token string) error {
	return s.trash.Purge(profile.FromContext(ctx), token)
}

// AddBookToReadingList appends the catalog book to the list. Adding a book
// that is already there changes nothing and reports added=false.
func (s *Service) AddBookToReadingList(ctx context.Context, listID, bookID string) (model.ReadingList, bool, error) {
	st := s.stores.For(ctx)
	list, ok := st.GetReadingListByID(ctx, listID)
	if !ok {
		return model.ReadingList{}, false, errs.ErrNotFound
	}
	if list.HasBook(bookID) {
		return list, false, nil
	}
	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return model.ReadingList{}, false, err
	}

	var found, added bool
	list, ok = st.ModifyReadingList(ctx, listID, func(l *model.ReadingList) bool {
		found = true
		if l.HasBook(bookID) {
			return false
		}
		l.Books = append(l.Books, book)
		added = true
		return true
	})
	switch {
	case !found:
		return model.ReadingList{}, false, errs.ErrNotFound
	case !ok:
		return model.ReadingList{}, false, errs.ErrStorage
	}
	return list, added, nil
}

func (s *Service) RemoveBookFromReadingList(ctx context.Context, listID, bookID string) (model.ReadingList, error) {
	var found, inList bool
	list, ok := s.stores.For(ctx).ModifyReadingList(ctx, listID, func(l *model.ReadingList) bool {
		found = true
		inList = l.HasBook(bookID)
		l.Books = slices.DeleteFunc(l.Books, func(b model.Book) bool { return b.ID == bookID })
		return inList
	})
	switch {
	case !found:
		return model.ReadingList{}, errs.ErrNotFound
	case !inList:
		return model.ReadingList{}, errs.ErrBookNotInList
	case !ok:
		return model.ReadingList{}, errs.ErrStorage
	}
	return list, nil
}

// SaveRating stores the profile's rating and then reports it to the catalog
// average. A catalog outage queues the report. The local rating is kept
// whatever the catalog answers.
func (s *Service) SaveRating(ctx context.Context, bookID string, stars int, review string) (model.Rating, error) {
	if !rating.Valid(stars) {
		return model.Rating{}, errs.ErrInvalidRating
	}
	st := s.stores.For(ctx)
	if !st.SaveRating(ctx, bookID, stars, strings.TrimSpace(review)) {
		return model.Rating{}, errs.ErrStorage
	}
	saved, ok := st.GetRatingForBook(ctx, bookID)
	if !ok {
		return model.Rating{}, errs.ErrStorage
	}

	s.reportRating(ctx, bookID, stars)
	return saved, nil
}

func (s *Service) reportRating(ctx context.Context, bookID string, stars int) {
	err := s.catalog.RateBook(ctx, bookID, stars)
	switch {
	case err == nil:
		return
	case errors.Is(err, errs.ErrCatalogUnavailable):
		msg := kafka.RatingMsg{BookID: bookID, Rating: stars}
		if qerr := s.enqueuer.Enqueue(kafka.RatingTopic, msg); qerr != nil {
			s.log.Warn("catalog rating dropped", zap.Error(qerr), zap.String("book", bookID))
			return
		}
		s.log.Info("catalog rating queued", zap.String("book", bookID))
	default:
		s.log.Warn("catalog rating rejected", zap.Error(err), zap.String("book", bookID))
	}
}

func (s *Service) GetRatings(ctx context.Context) []model.Rating {
	return s.stores.For(ctx).GetRatings(ctx)
}

func (s *Service) GetRatingForBook(ctx context.Context, bookID string) (model.Rating, error) {
	r, ok := s.stores.For(ctx).GetRatingForBook(ctx, bookID)
	if !ok {
		return model.Rating{}, errs.ErrRatingNotFound
	}
	return r, nil
}

func (s *Service) BookReviews(ctx context.Context, bookID string) model.ReviewSummary {
	st := s.stores.For(ctx)
	ratings := st.GetRatings(ctx)
	summary := model.ReviewSummary{
		BookID:       bookID,
		Distribution: aggregate.Distribution(ratings, bookID),
		Reviews:      aggregate.Reviews(ratings, bookID),
	}
	var own *model.Rating
	if r, ok := st.GetRatingForBook(ctx, bookID); ok {
		own = &r
		summary.Own = own
	}
	summary.Aggregate = aggregate.BookAggregate(ratings, bookID, own)
	return summary
}

func (s *Service) GetUserName(ctx context.Context) string {
	return s.stores.For(ctx).GetUserName(ctx)
}

func (s *Service) SaveUserName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
		return errs.ErrInvalidUserName
	}
	if !s.stores.For(ctx).SaveUserName(ctx, name) {
		return errs.ErrStorage
	}
	return nil
}

func (s *Service) ProfileStats(ctx context.Context) model.ProfileStats {
	st := s.stores.For(ctx)
	lists := st.GetReadingLists(ctx)
	ratings := st.GetRatings(ctx)

	stats := model.ProfileStats{
		ListsCreated:      len(lists),
		RatingsGiven:      len(ratings),
		AverageRating:     aggregate.Mean(ratings),
		GenreDistribution: make(map[string]int),
	}
	// a book saved in several lists counts once
	saved := make(map[string]struct{})
	for _, l := range lists {
		for _, b := range l.Books {
			if _, ok := saved[b.ID]; ok {
				continue
			}
			saved[b.ID] = struct{}{}
			stats.PagesRead += b.PageCount
			if b.Genre != "" {
				stats.GenreDistribution[b.Genre]++
			}
		}
	}
	stats.BooksSaved = len(saved)
	return stats
}

// RatedBooks joins the profile's ratings with catalog details, newest
// rating first. Books the catalog no longer knows are skipped.
func (s *Service) RatedBooks(ctx context.Context) ([]model.RatedBook, error) {
	ratings := s.stores.For(ctx).GetRatings(ctx)
	slices.SortStableFunc(ratings, func(a, b model.Rating) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		}
		return 0
	})

	books := make([]*model.Book, len(ratings))
	gg, gctx := errgroup.WithContext(ctx)
	gg.SetLimit(catalogFanOut)
	for i, r := range ratings {
		i, r := i, r
		gg.Go(func() error {
			book, err := s.catalog.GetBook(gctx, r.BookID)
			if errors.Is(err, errs.ErrBookNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			books[i] = &book
			return nil
		})
	}
	if err := gg.Wait(); err != nil {
		return nil, err
	}

	out := make([]model.RatedBook, 0, len(ratings))
	for i, r := range ratings {
		if books[i] == nil {
			continue
		}
		out = append(out, model.RatedBook{Book: *books[i], Rating: r})
	}
	return out, nil
}

// Package store keeps one profile's reading lists, ratings and display name.
//
// Each Store holds the profile's collections in memory and writes every change
// through to the key-value backend before committing it in memory, so a read
// always observes the previous write. Accessors never return errors: failures
// are logged and reported as false or empty results.
package store

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/Astemirdum/bookbuddy-service/pkg/kv"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/model"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/notify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	readingListsKey = "bookbuddy_reading_lists"
	ratingsKey      = "bookbuddy_ratings"
	userNameKey     = "bookbuddy_user_name"

	DefaultUserName = "Book Lover"
)

type Store struct {
	mu        sync.RWMutex
	kv        kv.Storage
	profile   string
	publisher notify.Publisher
	log       *zap.Logger
	now       func() time.Time
	seedLists []model.ReadingList

	loaded   bool
	lists    []model.ReadingList
	ratings  []model.Rating
	userName string
}

type Option func(*Store)

// WithSeedLists sets the lists written when the profile has no lists envelope yet.
func WithSeedLists(lists []model.ReadingList) Option {
	return func(s *Store) {
		s.seedLists = cloneLists(lists)
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store over storage. A nil storage makes every accessor a no-op.
func New(storage kv.Storage, profile string, publisher notify.Publisher, log *zap.Logger, opts ...Option) *Store {
	if publisher == nil {
		publisher = notify.NoopPublisher{}
	}
	s := &Store{
		kv:        storage,
		profile:   profile,
		publisher: publisher,
		log:       log.Named("store").With(zap.String("profile", profile)),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Profile() string {
	return s.profile
}

// Initialize loads the collections and writes empty envelopes for missing
// keys. It is safe to call repeatedly.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
}

// ensureLoaded must be called with the write lock held.
func (s *Store) ensureLoaded(ctx context.Context) bool {
	if s.loaded {
		return true
	}
	if s.kv == nil {
		return false
	}

	lists, listsFound, err := s.loadLists(ctx)
	if err != nil {
		s.log.Error("load reading lists", zap.Error(err))
		return false
	}
	ratings, ratingsFound, err := s.loadRatings(ctx)
	if err != nil {
		s.log.Error("load ratings", zap.Error(err))
		return false
	}
	userName, err := s.loadUserName(ctx)
	if err != nil {
		s.log.Error("load user name", zap.Error(err))
		return false
	}

	if !listsFound {
		lists = cloneLists(s.seedLists)
		if err := s.persistLists(ctx, lists); err != nil {
			s.log.Error("initialize reading lists", zap.Error(err))
		}
	}
	if !ratingsFound {
		ratings = []model.Rating{}
		if err := s.persistRatings(ctx, ratings); err != nil {
			s.log.Error("initialize ratings", zap.Error(err))
		}
	}

	s.lists, s.ratings, s.userName = lists, ratings, userName
	s.loaded = true
	return true
}

// loadLists reports found=false only for a missing key. A malformed envelope
// decodes to an empty collection and stays on disk until the next write.
func (s *Store) loadLists(ctx context.Context) ([]model.ReadingList, bool, error) {
	data, err := s.kv.Get(ctx, s.key(readingListsKey))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var env model.ReadingListsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		s.log.Error("decode reading lists", zap.Error(err))
		return []model.ReadingList{}, true, nil
	}
	lists := make([]model.ReadingList, 0, len(env.Lists))
	for _, l := range env.Lists {
		lists = append(lists, l.Clone())
	}
	return lists, true, nil
}

func (s *Store) loadRatings(ctx context.Context) ([]model.Rating, bool, error) {
	data, err := s.kv.Get(ctx, s.key(ratingsKey))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var env model.RatingsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		s.log.Error("decode ratings", zap.Error(err))
		return []model.Rating{}, true, nil
	}
	if env.Ratings == nil {
		env.Ratings = []model.Rating{}
	}
	return env.Ratings, true, nil
}

func (s *Store) loadUserName(ctx context.Context) (string, error) {
	data, err := s.kv.Get(ctx, s.key(userNameKey))
	if errors.Is(err, kv.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Store) persistLists(ctx context.Context, lists []model.ReadingList) error {
	data, err := json.Marshal(model.ReadingListsEnvelope{
		Version:     model.EnvelopeVersion,
		Lists:       lists,
		LastUpdated: s.now().UnixMilli(),
	})
	if err != nil {
		return errors.Wrap(err, "encode reading lists")
	}
	return s.kv.Set(ctx, s.key(readingListsKey), data)
}

func (s *Store) persistRatings(ctx context.Context, ratings []model.Rating) error {
	data, err := json.Marshal(model.RatingsEnvelope{
		Version:     model.EnvelopeVersion,
		Ratings:     ratings,
		LastUpdated: s.now().UnixMilli(),
	})
	if err != nil {
		return errors.Wrap(err, "encode ratings")
	}
	return s.kv.Set(ctx, s.key(ratingsKey), data)
}

func (s *Store) key(name string) string {
	return s.profile + ":" + name
}

func (s *Store) GetReadingLists(ctx context.Context) []model.ReadingList {
	if !s.readLoaded(ctx) {
		return []model.ReadingList{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLists(s.lists)
}

func (s *Store) GetReadingListByID(ctx context.Context, id string) (model.ReadingList, bool) {
	if !s.readLoaded(ctx) {
		return model.ReadingList{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.listIndex(id); i >= 0 {
		return s.lists[i].Clone(), true
	}
	return model.ReadingList{}, false
}

// AddReadingList replaces a list with the same id in place or appends it.
func (s *Store) AddReadingList(ctx context.Context, list model.ReadingList) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ensureLoaded(ctx) {
		return false
	}

	list = model.ReadingListUpdate{Books: list.Books}.Apply(list)
	next := cloneLists(s.lists)
	if i := s.listIndex(list.ID); i >= 0 {
		next[i] = list
	} else {
		next = append(next, list)
	}
	return s.commitLists(ctx, next, list.ID)
}

// UpdateReadingList merges upd into the list with id. It returns false when
// the list does not exist.
func (s *Store) UpdateReadingList(ctx context.Context, id string, upd model.ReadingListUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ensureLoaded(ctx) {
		return false
	}

	i := s.listIndex(id)
	if i < 0 {
		return false
	}
	next := cloneLists(s.lists)
	next[i] = upd.Apply(next[i])
	return s.commitLists(ctx, next, id)
}

// ModifyReadingList runs fn on a copy of the list with id while holding the
// write lock and persists the copy when fn reports a change. It returns the
// resulting list, or false when the list is missing or the write fails.
func (s *Store) ModifyReadingList(ctx context.Context, id string, fn func(l *model.ReadingList) bool) (model.ReadingList, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ensureLoaded(ctx) {
		return model.ReadingList{}, false
	}

	i := s.listIndex(id)
	if i < 0 {
		return model.ReadingList{}, false
	}
	next := cloneLists(s.lists)
	if !fn(&next[i]) {
		return s.lists[i].Clone(), true
	}
	next[i] = model.ReadingListUpdate{Books: next[i].Books}.Apply(next[i])
	if !s.commitLists(ctx, next, id) {
		return model.ReadingList{}, false
	}
	return next[i].Clone(), true
}

func (s *Store) DeleteReadingList(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ensureLoaded(ctx) {
		return false
	}

	i := s.listIndex(id)
	if i < 0 {
		return false
	}
	next := slices.Delete(cloneLists(s.lists), i, i+1)
	return s.commitLists(ctx, next, id)
}

func (s *Store) commitLists(ctx context.Context, next []model.ReadingList, id string) bool {
	if err := s.persistLists(ctx, next); err != nil {
		s.log.Error("save reading lists", zap.Error(err), zap.String("list", id))
		return false
	}
	s.lists = next
	s.publisher.Publish(notify.NewEvent(s.profile, notify.TopicReadingLists, id))
	return true
}

func (s *Store) listIndex(id string) int {
	return slices.IndexFunc(s.lists, func(l model.ReadingList) bool { return l.ID == id })
}

func (s *Store) GetRatings(ctx context.Context) []model.Rating {
	if !s.readLoaded(ctx) {
		return []model.Rating{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ratings)
}

func (s *Store) GetRatingForBook(ctx context.Context, bookID string) (model.Rating, bool) {
	if !s.readLoaded(ctx) {
		return model.Rating{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.ratingIndex(bookID); i >= 0 {
		return s.ratings[i], true
	}
	return model.Rating{}, false
}

// SaveRating overwrites the profile's rating for bookID or appends a new one.
// The stored timestamp is strictly newer than every timestamp already in the
// collection. The value is not range checked here.
func (s *Store) SaveRating(ctx context.Context, bookID string, rating int, review string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ensureLoaded(ctx) {
		return false
	}

	r := model.Rating{
		BookID:    bookID,
		Rating:    rating,
		Review:    review,
		Timestamp: s.now().UnixMilli(),
	}
	for _, prev := range s.ratings {
		r.Timestamp = max(r.Timestamp, prev.Timestamp+1)
	}
	next := slices.Clone(s.ratings)
	if i := s.ratingIndex(bookID); i >= 0 {
		next[i] = r
	} else {
		next = append(next, r)
	}

	if err := s.persistRatings(ctx, next); err != nil {
		s.log.Error("save rating", zap.Error(err), zap.String("book", bookID))
		return false
	}
	s.ratings = next
	s.publisher.Publish(notify.NewEvent(s.profile, notify.TopicRatings, bookID))
	return true
}

func (s *Store) ratingIndex(bookID string) int {
	return slices.IndexFunc(s.ratings, func(r model.Rating) bool { return r.BookID == bookID })
}

// GetUserName returns the saved display name or DefaultUserName.
func (s *Store) GetUserName(ctx context.Context) string {
	if !s.readLoaded(ctx) {
		return DefaultUserName
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.userName == "" {
		return DefaultUserName
	}
	return s.userName
}

func (s *Store) SaveUserName(ctx context.Context, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ensureLoaded(ctx) {
		return false
	}
	if err := s.kv.Set(ctx, s.key(userNameKey), []byte(name)); err != nil {
		s.log.Error("save user name", zap.Error(err))
		return false
	}
	s.userName = name
	s.publisher.Publish(notify.NewEvent(s.profile, notify.TopicUserName, ""))
	return true
}

func (s *Store) isLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// readLoaded makes sure the collections are in memory before a read.
func (s *Store) readLoaded(ctx context.Context) bool {
	if s.isLoaded() {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLoaded(ctx)
}

func cloneLists(lists []model.ReadingList) []model.ReadingList {
	out := make([]model.ReadingList, 0, len(lists))
	for _, l := range lists {
		out = append(out, l.Clone())
	}
	return out
}

package handler_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/bookbuddy-service/pkg/profile"
	"github.com/Astemirdum/bookbuddy-service/pkg/validate"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/errs"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/handler"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/model"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/notify"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/trash"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/bookbuddy-service/shelf/internal/handler/mocks"
)

var hailMary = model.Book{
	ID:            "2",
	Title:         "Project Hail Mary",
	Author:        "Andy Weir",
	PublishedDate: "2021-05-04",
	Genre:         "Science Fiction",
	PageCount:     496,
	ISBN:          "9780593135204",
	AverageRating: 4.5,
	RatingsCount:  987,
}

const hailMaryJSON = `{"id":"2","title":"Project Hail Mary","author":"Andy Weir","description":"","publishedDate":"2021-05-04","genre":"Science Fiction","pageCount":496,"isbn":"9780593135204","averageRating":4.5,"ratingsCount":987}`

type response struct {
	expectedCode int
	expectedBody string
}

func newTestEcho(t *testing.T) (*echo.Echo, *service_mocks.MockShelfService, *handler.Handler) {
	t.Helper()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockShelfService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, nil, time.Second, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e, svc, h
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_CreateReadingList(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockShelfService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"name":"Favorites"}`,
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().
					CreateReadingList(context.Background(), model.CreateReadingListRequest{Name: "Favorites"}).
					Return(model.ReadingList{ID: "list-abc", Name: "Favorites", Books: []model.Book{}}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"list-abc","name":"Favorites","books":[]}`,
			},
		},
		{
			name:         "err. name required",
			body:         `{"description":"x"}`,
			mockBehavior: func(r *service_mocks.MockShelfService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'CreateReadingListRequest.Name' Error:Field validation for 'Name' failed on the 'required' tag"}`,
			},
		},
		{
			name: "err. blank name",
			body: `{"name":"  "}`,
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().
					CreateReadingList(context.Background(), model.CreateReadingListRequest{Name: "  "}).
					Return(model.ReadingList{}, errs.ErrEmptyName)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"name is required"}`,
			},
		},
		{
			name: "err. storage",
			body: `{"name":"Favorites"}`,
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().
					CreateReadingList(context.Background(), gomock.Any()).
					Return(model.ReadingList{}, errs.ErrStorage)
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"failed to persist changes"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestEcho(t)
			e.POST("/reading-lists", h.CreateReadingList)

			tt.mockBehavior(svc)
			w := serve(e, http.MethodPost, "/reading-lists", tt.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_AddBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockShelfService)
	favorites := model.ReadingList{ID: "fav", Name: "Favorites", Books: []model.Book{hailMary}}
	favoritesJSON := `{"id":"fav","name":"Favorites","books":[` + hailMaryJSON + `]}`

	var tests = []struct {
		name         string
		listID       string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok. added",
			listID: "fav",
			body:   `{"bookId":"2"}`,
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().AddBookToReadingList(context.Background(), "fav", "2").Return(favorites, true, nil)
			},
			response: response{expectedCode: http.StatusCreated, expectedBody: favoritesJSON},
		},
		{
			name:   "ok. already there",
			listID: "fav",
			body:   `{"bookId":"2"}`,
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().AddBookToReadingList(context.Background(), "fav", "2").Return(favorites, false, nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: favoritesJSON},
		},
		{
			name:   "err. list not found",
			listID: "nope",
			body:   `{"bookId":"2"}`,
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().AddBookToReadingList(context.Background(), "nope", "2").Return(model.ReadingList{}, false, errs.ErrNotFound)
			},
			response: response{expectedCode: http.StatusNotFound, expectedBody: `{"message":"reading list not found"}`},
		},
		{
			name:   "err. catalog down",
			listID: "fav",
			body:   `{"bookId":"2"}`,
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().AddBookToReadingList(context.Background(), "fav", "2").
					Return(model.ReadingList{}, false, errors.Wrap(errs.ErrCatalogUnavailable, "circuit breaker is open"))
			},
			response: response{expectedCode: http.StatusServiceUnavailable, expectedBody: `{"message":"circuit breaker is open: catalog is unavailable"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestEcho(t)
			e.POST("/reading-lists/:listId/books", h.AddBook)

			tt.mockBehavior(svc)
			w := serve(e, http.MethodPost, "/reading-lists/"+tt.listID+"/books", tt.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Trash(t *testing.T) {
	t.Parallel()
	expires := time.UnixMilli(1700000030000)

	var tests = []struct {
		name         string
		method       string
		target       string
		mockBehavior func(r *service_mocks.MockShelfService)
		response     response
	}{
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/reading-lists/fav",
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().DeleteReadingList(context.Background(), "fav").Return(trash.Entry{
					Token:     "tok",
					List:      model.ReadingList{ID: "fav", Name: "Favorites"},
					State:     trash.StatePending,
					ExpiresAt: expires,
				}, nil)
			},
			response: response{http.StatusOK, `{"token":"tok","listId":"fav","expiresAt":1700000030000}`},
		},
		{
			name:   "restore",
			method: http.MethodPost,
			target: "/reading-lists/trash/tok/restore",
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().RestoreReadingList(context.Background(), "tok").
					Return(model.ReadingList{ID: "fav", Name: "Favorites", Books: []model.Book{}}, nil)
			},
			response: response{http.StatusOK, `{"id":"fav","name":"Favorites","books":[]}`},
		},
		{
			name:   "restore after purge",
			method: http.MethodPost,
			target: "/reading-lists/trash/tok/restore",
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().RestoreReadingList(context.Background(), "tok").Return(model.ReadingList{}, trash.ErrEntryPurged)
			},
			response: response{http.StatusConflict, `{"message":"undo window has closed"}`},
		},
		{
			name:   "restore twice",
			method: http.MethodPost,
			target: "/reading-lists/trash/tok/restore",
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().RestoreReadingList(context.Background(), "tok").Return(model.ReadingList{}, trash.ErrEntryRestored)
			},
			response: response{http.StatusConflict, `{"message":"reading list was already restored"}`},
		},
		{
			name:   "purge",
			method: http.MethodDelete,
			target: "/reading-lists/trash/tok",
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().PurgeReadingList(context.Background(), "tok").Return(nil)
			},
			response: response{http.StatusNoContent, ``},
		},
		{
			name:   "purge unknown",
			method: http.MethodDelete,
			target: "/reading-lists/trash/zzz",
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().PurgeReadingList(context.Background(), "zzz").Return(trash.ErrEntryNotFound)
			},
			response: response{http.StatusNotFound, `{"message":"trash entry not found"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestEcho(t)
			e.DELETE("/reading-lists/:listId", h.DeleteReadingList)
			e.POST("/reading-lists/trash/:token/restore", h.RestoreReadingList)
			e.DELETE("/reading-lists/trash/:token", h.PurgeReadingList)

			tt.mockBehavior(svc)
			w := serve(e, tt.method, tt.target, "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SaveRating(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name         string
		body         string
		mockBehavior func(r *service_mocks.MockShelfService)
		response     response
	}{
		{
			name: "ok",
			body: `{"rating":5,"review":"loved it"}`,
			mockBehavior: func(r *service_mocks.MockShelfService) {
				r.EXPECT().SaveRating(context.Background(), "2", 5, "loved it").
					Return(model.Rating{BookID: "2", Rating: 5, Review: "loved it", Timestamp: 1700000000000}, nil)
			},
			response: response{http.StatusOK, `{"bookId":"2","rating":5,"review":"loved it","timestamp":1700000000000}`},
		},
		{
			name:         "err. out of range",
			body:         `{"rating":6}`,
			mockBehavior: func(r *service_mocks.MockShelfService) {},
			response: response{http.StatusBadRequest,
				`{"message":"Key: 'SaveRatingRequest.Rating' Error:Field validation for 'Rating' failed on the 'max' tag"}`},
		},
		{
			name:         "err. bad json",
			body:         `{"rating":"five"}`,
			mockBehavior: func(r *service_mocks.MockShelfService) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newTestEcho(t)
			e.PUT("/books/:bookId/rating", h.SaveRating)

			tt.mockBehavior(svc)
			w := serve(e, http.MethodPut, "/books/2/rating", tt.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_RemoveBook(t *testing.T) {
	t.Parallel()
	e, svc, h := newTestEcho(t)
	e.DELETE("/reading-lists/:listId/books/:bookId", h.RemoveBook)

	svc.EXPECT().RemoveBookFromReadingList(context.Background(), "fav", "9").Return(model.ReadingList{}, errs.ErrBookNotInList)
	w := serve(e, http.MethodDelete, "/reading-lists/fav/books/9", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"book is not in the reading list"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_UserName(t *testing.T) {
	t.Parallel()
	e, svc, h := newTestEcho(t)
	e.PUT("/profile/name", h.SaveUserName)
	e.GET("/profile/name", h.GetUserName)

	gomock.InOrder(
		svc.EXPECT().SaveUserName(context.Background(), "Ada").Return(nil),
		svc.EXPECT().GetUserName(context.Background()).Return("Ada"),
		svc.EXPECT().GetUserName(context.Background()).Return("Ada"),
	)

	w := serve(e, http.MethodPut, "/profile/name", `{"name":"Ada"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"name":"Ada"}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(e, http.MethodGet, "/profile/name", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"name":"Ada"}`, strings.Trim(w.Body.String(), "\n"))

	w = serve(e, http.MethodPut, "/profile/name", `{"name":"A"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Router(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockShelfService(c)
	e := handler.New(svc, nil, time.Second, zap.NewNop()).NewRouter()

	w := serve(e, http.MethodGet, "/manage/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())

	svc.EXPECT().ListReadingLists(gomock.Any()).DoAndReturn(func(ctx context.Context) []model.ReadingList {
		require.Equal(t, "alice", profile.FromContext(ctx))
		return []model.ReadingList{}
	})
	r := httptest.NewRequest(http.MethodGet, "/api/v1/reading-lists", http.NoBody)
	r.Header.Set(profile.XProfileIDHeader, "alice")
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[]`, strings.Trim(w.Body.String(), "\n"))

	r = httptest.NewRequest(http.MethodGet, "/api/v1/reading-lists", http.NoBody)
	r.Header.Set(profile.XProfileIDHeader, "bad id!")
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"invalid profile id"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Events(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockShelfService(c)
	broker := notify.NewBroker(8, zap.NewNop())
	defer broker.Close()
	srv := httptest.NewServer(handler.New(svc, broker, time.Minute, zap.NewNop()).NewRouter())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/events?topic="+string(notify.TopicRatings), http.NoBody)
	require.NoError(t, err)
	req.Header.Set(profile.XProfileIDHeader, "alice")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get(echo.HeaderContentType))

	lines := bufio.NewScanner(resp.Body)
	next := func() string {
		for lines.Scan() {
			if line := lines.Text(); strings.HasPrefix(line, "event: ") {
				return strings.TrimPrefix(line, "event: ")
			}
		}
		return ""
	}
	require.Equal(t, "connected", next())

	// the subscription exists once the connected event has been flushed
	broker.Publish(notify.NewEvent("bob", notify.TopicRatings, "1"))
	broker.Publish(notify.NewEvent("alice", notify.TopicReadingLists, "fav"))
	broker.Publish(notify.NewEvent("alice", notify.TopicRatings, "2"))

	require.Equal(t, string(notify.TopicRatings), next())
	require.True(t, lines.Scan())
	require.Contains(t, lines.Text(), `"resourceId":"2"`)
}

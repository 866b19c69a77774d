package catalog_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Astemirdum/bookbuddy-service/shelf/config"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/catalog"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/errs"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClient(t *testing.T, h http.Handler) *catalog.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	return catalog.NewClient(zap.NewNop(), config.CatalogHTTPServer{Host: host, Port: port, Timeout: time.Second})
}

func TestClient_GetBook(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/books/2", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		_ = json.NewEncoder(w).Encode(model.Book{ID: "2", Title: "Project Hail Mary", AverageRating: 4.5, RatingsCount: 987})
	})
	mux.HandleFunc("/api/v1/books/404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"book not found"}`))
	})
	c := newClient(t, mux)

	book, err := c.GetBook(context.Background(), "2")
	require.NoError(t, err)
	require.Equal(t, "Project Hail Mary", book.Title)
	require.Equal(t, 987, book.RatingsCount)

	_, err = c.GetBook(context.Background(), "404")
	require.ErrorIs(t, err, errs.ErrBookNotFound)
}

func TestClient_RateBook(t *testing.T) {
	t.Parallel()
	var got struct {
		Rating int `json:"rating"`
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/books/1/ratings", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/api/v1/books/9/ratings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	c := newClient(t, mux)

	require.NoError(t, c.RateBook(context.Background(), "1", 4))
	require.Equal(t, 4, got.Rating)
	require.ErrorIs(t, c.RateBook(context.Background(), "9", 4), errs.ErrInvalidRating)
}

func TestClient_OutageOpensBreaker(t *testing.T) {
	t.Parallel()
	calls := 0
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	for i := 0; i < 10; i++ {
		err := c.RateBook(context.Background(), "1", 5)
		require.ErrorIs(t, err, errs.ErrCatalogUnavailable)
	}
	require.Less(t, calls, 10)
}

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/Astemirdum/bookbuddy-service/pkg/circuit_breaker"
	"github.com/Astemirdum/bookbuddy-service/shelf/config"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/errs"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Client talks to the catalog service. Transport failures and 5xx answers
// count against the circuit breaker and surface as errs.ErrCatalogUnavailable.
type Client struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	cb      circuit_breaker.CircuitBreaker
}

func NewClient(log *zap.Logger, cfg config.CatalogHTTPServer) *Client {
	return &Client{
		log:     log.Named("catalog"),
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: fmt.Sprintf("http://%s/api/v1", net.JoinHostPort(cfg.Host, cfg.Port)),
		cb:      circuit_breaker.Default(),
	}
}

func (c *Client) CB() circuit_breaker.CircuitBreaker {
	return c.cb
}

func (c *Client) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	var (
		book model.Book
		code int
	)
	if err := c.cb.Call(func() error {
		var err error
		code, err = c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(bookID), nil, &book)
		return err
	}); err != nil {
		return model.Book{}, c.unavailable(err)
	}

	switch code {
	case http.StatusOK:
		return book, nil
	case http.StatusNotFound:
		return model.Book{}, errs.ErrBookNotFound
	}
	return model.Book{}, errors.Errorf("catalog: unexpected status %d", code)
}

// RateBook folds rating into the catalog's running average for bookID.
func (c *Client) RateBook(ctx context.Context, bookID string, rating int) error {
	body := struct {
		Rating int `json:"rating"`
	}{Rating: rating}

	var code int
	if err := c.cb.Call(func() error {
		var err error
		code, err = c.do(ctx, http.MethodPost, "/books/"+url.PathEscape(bookID)+"/ratings", body, nil)
		return err
	}); err != nil {
		return c.unavailable(err)
	}

	switch code {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return errs.ErrBookNotFound
	case http.StatusBadRequest:
		return errs.ErrInvalidRating
	}
	return errors.Errorf("catalog: unexpected status %d", code)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) (int, error) {
	var body io.Reader = http.NoBody
	if in != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(in); err != nil {
			return 0, err
		}
		body = b
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return resp.StatusCode, errors.Errorf("catalog: status %d", resp.StatusCode)
	}
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, errors.Wrap(err, "decode")
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) unavailable(err error) error {
	c.log.Warn("catalog call failed", zap.Error(err))
	return errors.Wrap(errs.ErrCatalogUnavailable, err.Error())
}

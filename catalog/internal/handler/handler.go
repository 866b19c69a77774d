package handler

import (
	"net/http"

	"github.com/Astemirdum/bookbuddy-service/catalog/internal/errs"
	"github.com/Astemirdum/bookbuddy-service/catalog/internal/model"
	md "github.com/Astemirdum/bookbuddy-service/pkg/middleware"
	"github.com/Astemirdum/bookbuddy-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	catalogSvc CatalogService
	log        *zap.Logger
}

func New(catalogSvc CatalogService, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestID(),
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.ListBooks)
	api.GET("/books/recommended", h.RecommendedBooks)
	api.GET("/books/:bookId", h.GetBook)
	api.GET("/books/:bookId/similar", h.SimilarBooks)
	api.POST("/books/:bookId/ratings", h.RateBook)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListBooks(c echo.Context) error {
	filter := model.BookFilter{
		Query: c.QueryParam("query"),
		Genre: c.QueryParam("genre"),
	}
	books, err := h.catalogSvc.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) RecommendedBooks(c echo.Context) error {
	books, err := h.catalogSvc.RecommendedBooks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.catalogSvc.GetBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) SimilarBooks(c echo.Context) error {
	books, err := h.catalogSvc.SimilarBooks(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) RateBook(c echo.Context) error {
	var req model.RateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.catalogSvc.RateBook(c.Request().Context(), c.Param("bookId"), req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrInvalidRating):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

package handler

import (
	"net/http"
	"time"

	"github.com/Astemirdum/bookbuddy-service/pkg/middleware"
	"github.com/Astemirdum/bookbuddy-service/pkg/validate"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/errs"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/model"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/notify"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/trash"
	_ "github.com/Astemirdum/bookbuddy-service/swagger"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	svc       ShelfService
	broker    *notify.Broker
	heartbeat time.Duration
	log       *zap.Logger
}

func New(svc ShelfService, broker *notify.Broker, heartbeat time.Duration, log *zap.Logger) *Handler {
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	return &Handler{
		svc:       svc,
		broker:    broker,
		heartbeat: heartbeat,
		log:       log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
	}))
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", middleware.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		echomw.RequestID(),
		middleware.ProfileContext,
		echomw.RequestLoggerWithConfig(middleware.RequestLoggerConfig(h.log)),
		middleware.NewRateLimiter(apiRPS),
	)

	lists := api.Group("/reading-lists")
	lists.GET("", h.GetReadingLists)
	lists.POST("", h.CreateReadingList)
	lists.GET("/:listId", h.GetReadingList)
	lists.PUT("/:listId", h.SaveReadingList)
	lists.PATCH("/:listId", h.UpdateReadingList)
	lists.DELETE("/:listId", h.DeleteReadingList)
	lists.POST("/trash/:token/restore", h.RestoreReadingList)
	lists.DELETE("/trash/:token", h.PurgeReadingList)
	lists.POST("/:listId/books", h.AddBook)
	lists.DELETE("/:listId/books/:bookId", h.RemoveBook)

	api.GET("/ratings", h.GetRatings)
	api.GET("/books/:bookId/rating", h.GetRating)
	api.PUT("/books/:bookId/rating", h.SaveRating)
	api.GET("/books/:bookId/reviews", h.GetReviews)

	api.GET("/profile/name", h.GetUserName)
	api.PUT("/profile/name", h.SaveUserName)
	api.GET("/profile/stats", h.GetProfileStats)
	api.GET("/profile/rated-books", h.GetRatedBooks)

	api.GET("/events", h.Events)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// GetReadingLists godoc
// @Summary  reading lists of the profile
// @Tags     reading-lists
// @Produce  json
// @Param    X-Profile-Id header string false "profile"
// @Success  200 {array} model.ReadingList
// @Router   /reading-lists [get]
func (h *Handler) GetReadingLists(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListReadingLists(c.Request().Context()))
}

// CreateReadingList godoc
// @Summary  create a reading list
// @Tags     reading-lists
// @Accept   json
// @Produce  json
// @Param    input body model.CreateReadingListRequest true "list"
// @Success  201 {object} model.ReadingList
// @Failure  400 {object} echo.HTTPError
// @Router   /reading-lists [post]
func (h *Handler) CreateReadingList(c echo.Context) error {
	var req model.CreateReadingListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	list, err := h.svc.CreateReadingList(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, list)
}

func (h *Handler) GetReadingList(c echo.Context) error {
	list, err := h.svc.GetReadingList(c.Request().Context(), c.Param("listId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// SaveReadingList replaces the list under :listId or creates it.
func (h *Handler) SaveReadingList(c echo.Context) error {
	var list model.ReadingList
	if err := c.Bind(&list); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	list.ID = c.Param("listId")
	if err := c.Validate(list); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	saved, err := h.svc.SaveReadingList(c.Request().Context(), list)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *Handler) UpdateReadingList(c echo.Context) error {
	var upd model.ReadingListUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	list, err := h.svc.UpdateReadingList(c.Request().Context(), c.Param("listId"), upd)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// DeleteReadingList godoc
// @Summary      delete a reading list
// @Description  the list can be restored with the returned token until expiresAt
// @Tags         reading-lists
// @Produce      json
// @Param        listId path string true "list id"
// @Success      200 {object} model.TrashTicket
// @Failure      404 {object} echo.HTTPError
// @Router       /reading-lists/{listId} [delete]
func (h *Handler) DeleteReadingList(c echo.Context) error {
	entry, err := h.svc.DeleteReadingList(c.Request().Context(), c.Param("listId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entry.Ticket())
}

func (h *Handler) RestoreReadingList(c echo.Context) error {
	list, err := h.svc.RestoreReadingList(c.Request().Context(), c.Param("token"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) PurgeReadingList(c echo.Context) error {
	if err := h.svc.PurgeReadingList(c.Request().Context(), c.Param("token")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddBook answers 201 when the book was appended and 200 when it was already in the list.
func (h *Handler) AddBook(c echo.Context) error {
	var req model.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	list, added, err := h.svc.AddBookToReadingList(c.Request().Context(), c.Param("listId"), req.BookID)
	if err != nil {
		return httpError(err)
	}
	code := http.StatusOK
	if added {
		code = http.StatusCreated
	}
	return c.JSON(code, list)
}

func (h *Handler) RemoveBook(c echo.Context) error {
	list, err := h.svc.RemoveBookFromReadingList(c.Request().Context(), c.Param("listId"), c.Param("bookId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetRatings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.GetRatings(c.Request().Context()))
}

func (h *Handler) GetRating(c echo.Context) error {
	r, err := h.svc.GetRatingForBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, r)
}

// SaveRating godoc
// @Summary  rate a book
// @Tags     ratings
// @Accept   json
// @Produce  json
// @Param    bookId path string true "book id"
// @Param    input body model.SaveRatingRequest true "rating"
// @Success  200 {object} model.Rating
// @Failure  400 {object} echo.HTTPError
// @Router   /books/{bookId}/rating [put]
func (h *Handler) SaveRating(c echo.Context) error {
	var req model.SaveRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	r, err := h.svc.SaveRating(c.Request().Context(), c.Param("bookId"), req.Rating, req.Review)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) GetReviews(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.BookReviews(c.Request().Context(), c.Param("bookId")))
}

func (h *Handler) GetUserName(c echo.Context) error {
	return c.JSON(http.StatusOK, model.UserName{Name: h.svc.GetUserName(c.Request().Context())})
}

func (h *Handler) SaveUserName(c echo.Context) error {
	var req model.SaveUserNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if err := h.svc.SaveUserName(ctx, req.Name); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, model.UserName{Name: h.svc.GetUserName(ctx)})
}

func (h *Handler) GetProfileStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ProfileStats(c.Request().Context()))
}

func (h *Handler) GetRatedBooks(c echo.Context) error {
	books, err := h.svc.RatedBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func httpError(err error) *echo.HTTPError {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrRatingNotFound),
		errors.Is(err, errs.ErrBookNotFound),
		errors.Is(err, errs.ErrBookNotInList),
		errors.Is(err, trash.ErrEntryNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrEmptyName),
		errors.Is(err, errs.ErrInvalidRating),
		errors.Is(err, errs.ErrInvalidUserName),
		errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, trash.ErrEntryPurged),
		errors.Is(err, trash.ErrEntryRestored):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrCatalogUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

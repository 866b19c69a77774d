package middleware

import (
	"net/http"

	"github.com/Astemirdum/bookbuddy-service/pkg/profile"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

// ProfileContext puts the X-Profile-Id header into the request context.
// A missing header selects the default profile.
func ProfileContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		id := req.Header.Get(profile.XProfileIDHeader)
		if id == "" {
			id = profile.DefaultID
		}
		if !profile.Valid(id) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid profile id")
		}
		c.SetRequest(req.WithContext(profile.WithID(req.Context(), id)))
		return next(c)
	}
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogMethod:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
				zap.String("profile", profile.FromContext(c.Request().Context())),
			)
			return nil
		},
	}
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	md "github.com/Astemirdum/bookbuddy-service/pkg/middleware"
	"github.com/Astemirdum/bookbuddy-service/pkg/profile"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestProfileContext(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedBody string
	}{
		{name: "default", header: "", expectedCode: http.StatusOK, expectedBody: profile.DefaultID},
		{name: "custom", header: "alice_01", expectedCode: http.StatusOK, expectedBody: "alice_01"},
		{name: "err. bad chars", header: "../etc", expectedCode: http.StatusBadRequest, expectedBody: `{"message":"invalid profile id"}` + "\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/", func(c echo.Context) error {
				return c.String(http.StatusOK, profile.FromContext(c.Request().Context()))
			}, md.ProfileContext)

			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				r.Header.Set(profile.XProfileIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

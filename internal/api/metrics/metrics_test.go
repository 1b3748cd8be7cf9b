package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/DjordjeVuckovic/docseg/internal/apperr"
)

func TestMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/bad", func(c echo.Context) error { return apperr.NewValidation("bad span") })

	okBefore := testutil.ToFloat64(RequestsTotal.WithLabelValues("/ok", "200"))
	badBefore := testutil.ToFloat64(RequestsTotal.WithLabelValues("/bad", "400"))

	for _, path := range []string{"/ok", "/ok", "/bad"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, okBefore+2, testutil.ToFloat64(RequestsTotal.WithLabelValues("/ok", "200")))
	assert.Equal(t, badBefore+1, testutil.ToFloat64(RequestsTotal.WithLabelValues("/bad", "400")))
}

func TestObserveMatch(t *testing.T) {
	assert.NotPanics(t, func() { ObserveMatch(3, 0.5, time.Millisecond) })
	assert.Equal(t, 1, testutil.CollectAndCount(GlobalScore))
	assert.Equal(t, 1, testutil.CollectAndCount(MatchDuration))
	assert.Equal(t, 1, testutil.CollectAndCount(CollectionSize))
}

package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"toyworks-orders/internal/http/handlers"
	"toyworks-orders/internal/http/router"
	"toyworks-orders/internal/logx"
)

func newTestRouter() http.Handler {
	return router.New(router.Deps{
		Base:     handlers.New(logx.Nop()),
		Orders:   &handlers.OrderHandler{},
		Dispatch: &handlers.DispatchHandler{},
		Parties:  &handlers.PartyHandler{},
		Items:    &handlers.ItemHandler{},
	})
}

func TestNew_NotNil(t *testing.T) {
	var _ http.Handler = newTestRouter()
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Healthcheck(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/healthcheck", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_UnknownRouteIsJSON404(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"route not found"}`, rec.Body.String())
}

func TestRouter_MetricsExposed(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

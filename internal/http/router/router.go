package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"toyworks-orders/internal/http/handlers"
	appmw "toyworks-orders/internal/http/middleware"
	"toyworks-orders/internal/http/pprofserver"
	"toyworks-orders/internal/logx"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Logger    logx.Logger
	Base      *handlers.Handlers
	Orders    *handlers.OrderHandler
	Dispatch  *handlers.DispatchHandler
	Parties   *handlers.PartyHandler
	Items     *handlers.ItemHandler
	RateLimit func(http.Handler) http.Handler
	Pprof     pprofserver.Config
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))
	if d.Logger != nil {
		r.Use(appmw.Observability(d.Logger))
	}
	if d.RateLimit != nil {
		r.Use(d.RateLimit)
	}

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	r.Handle("/metrics", promhttp.Handler())
	// full path reaches the pprof mux, which registers under /debug/pprof/
	r.Handle("/debug/pprof/*", pprofserver.Handler(d.Pprof))

	r.Post("/order", d.Orders.Punch)
	r.Get("/order/{id}", d.Orders.GetByID)
	r.Get("/orders", d.Orders.List)
	r.Patch("/order/{id}", d.Orders.Update)
	r.Post("/order/{id}/lines", d.Orders.AddLine)
	r.Delete("/order/{id}/line/{lineID}", d.Orders.RemoveLine)
	r.Get("/order/{id}/logs", d.Orders.Logs)
	r.Get("/order/{id}/events", d.Orders.Events)

	r.Post("/order/{id}/dispatch", d.Dispatch.Save)
	r.Get("/order/{id}/summary", d.Dispatch.Summary)

	r.Post("/party", d.Parties.Create)
	r.Put("/party", d.Parties.Update)
	r.Get("/party/{id}", d.Parties.GetByID)
	r.Get("/parties", d.Parties.List)

	r.Post("/item", d.Items.Create)
	r.Put("/item", d.Items.Update)
	r.Get("/item/{id}", d.Items.GetByID)
	r.Get("/items", d.Items.List)

	return r
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hyrpunkten/hyrpunkten-backend/api/controllers"
	"github.com/hyrpunkten/hyrpunkten-backend/api/middleware"
	"github.com/hyrpunkten/hyrpunkten-backend/internal/bookings"
	"github.com/hyrpunkten/hyrpunkten-backend/internal/catalog"
	"github.com/hyrpunkten/hyrpunkten-backend/internal/quotations"
	"github.com/hyrpunkten/hyrpunkten-backend/internal/signing"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/config"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	registry *prometheus.Registry,
	catalogRepo *catalog.Repository,
	bookingService bookings.Service,
	quotationService quotations.Service,
	signingService signing.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", controllers.CatalogProducts(catalogRepo, logg))
		r.Get("/addons", controllers.CatalogAddons(catalogRepo, logg))
	})

	r.Route("/api/v1/bookings", func(r chi.Router) {
		r.Post("/", controllers.BookingCreate(bookingService, logg))
		r.Get("/{id}", controllers.BookingFetch(bookingService, logg))
		r.Put("/{id}", controllers.BookingUpdate(bookingService, logg))
		r.Post("/{id}/reprice", controllers.BookingReprice(bookingService, logg))
		r.Get("/{id}/quotation", controllers.BookingQuotation(quotationService, logg))
	})

	r.Route("/api/v1/quotations", func(r chi.Router) {
		r.Get("/{id}", controllers.QuotationFetch(quotationService, logg))
		r.Post("/{id}/configure", controllers.QuotationConfigure(quotationService, logg))
		r.Post("/{id}/sign", controllers.QuotationSign(signingService, logg))
	})

	return r
}

package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"donorboard/internal/http/handlers"
	"donorboard/internal/infra"
	"donorboard/internal/middleware"
)

// NewRouter assembles the public and admin route trees. Admin routes sit
// behind Supabase token verification plus the admins-collection role check.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	// Health
	r.Get("/v1/healthz", app.Health)

	// Public leaderboard + geocoding
	r.Route("/v1/donors", func(r chi.Router) {
		r.Get("/", app.DonorsList)
		r.Get("/counties", app.DonorsCounties)
	})
	r.Post("/v1/geocode", app.Geocode)

	// Admin console
	r.Route("/v1/admin", func(r chi.Router) {
		r.Use(middleware.SupabaseAuth(cfg.SupabaseJWTSecret))
		r.Use(middleware.AdminOnly(app.Admins))

		r.Get("/dashboard/stats", app.DashboardStats)
		r.Get("/dashboard/monthly", app.DashboardMonthly)
		r.Get("/dashboard/recent-donors", app.DashboardRecentDonors)
		r.Get("/dashboard/activity", app.DashboardActivity)

		r.Route("/donations", func(r chi.Router) {
			r.Post("/", app.DonationsCreate)
			r.Post("/quick-match", app.DonationsQuickMatch)
			r.Put("/{id}", app.DonationsUpdate)
			r.Delete("/{id}", app.DonationsDelete)
			r.Post("/{id}/match", app.DonationsMatch)
		})

		r.Get("/export/donors.csv", app.TransferExport)
		r.Post("/import/donors", app.TransferImport)
		r.Get("/report", app.TransferReport)
	})

	return r
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ainnoce10/ebf-backend/api/controllers"
	"github.com/ainnoce10/ebf-backend/api/middleware"
	authsvc "github.com/ainnoce10/ebf-backend/internal/auth"
	cartsvc "github.com/ainnoce10/ebf-backend/internal/cart"
	catalogsvc "github.com/ainnoce10/ebf-backend/internal/catalog"
	interventionsvc "github.com/ainnoce10/ebf-backend/internal/interventions"
	reportsvc "github.com/ainnoce10/ebf-backend/internal/reports"
	statssvc "github.com/ainnoce10/ebf-backend/internal/stats"
	synthesissvc "github.com/ainnoce10/ebf-backend/internal/synthesis"
	techsvc "github.com/ainnoce10/ebf-backend/internal/technicians"
	tickersvc "github.com/ainnoce10/ebf-backend/internal/ticker"
	transactionsvc "github.com/ainnoce10/ebf-backend/internal/transactions"
	"github.com/ainnoce10/ebf-backend/pkg/auth/session"
	"github.com/ainnoce10/ebf-backend/pkg/config"
	"github.com/ainnoce10/ebf-backend/pkg/db"
	"github.com/ainnoce10/ebf-backend/pkg/logger"
	"github.com/ainnoce10/ebf-backend/pkg/metrics"
	"github.com/ainnoce10/ebf-backend/pkg/redis"
)

// Dashboard sections used by the write guards. They mirror how the roles map
// to areas of the application, independently of the HTTP paths.
const (
	sectionReports        = "/techniciens/rapports"
	sectionInterventions  = "/techniciens/interventions"
	sectionTechnicians    = "/techniciens/equipe"
	sectionTransactions   = "/comptabilite/transactions"
	sectionCatalog        = "/boutique/produits"
	sectionAdministration = "/administration"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Config        *config.Config
	Logger        *logger.Logger
	DB            db.Pinger
	Redis         *redis.Client
	Sessions      session.AccessSessionChecker
	HTTPMetrics   *metrics.HTTPMetrics
	Registry      *prometheus.Registry
	Auth          authsvc.Service
	Stats         statssvc.Service
	Synthesis     synthesissvc.Service
	Catalog       catalogsvc.Service
	Cart          cartsvc.Service
	Reports       reportsvc.Service
	Transactions  transactionsvc.Service
	Technicians   techsvc.Service
	Interventions interventionsvc.Service
	Ticker        tickersvc.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		login := middleware.LoginRateLimit(deps.Redis, cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow, logg)
		r.With(login).Post("/login", controllers.AuthLogin(deps.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.Auth, logg))
		if cfg.App.IsDev() {
			r.Post("/register", controllers.AuthRegister(deps.Auth, logg))
		}
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

		r.Post("/auth/logout", controllers.AuthLogout(deps.Auth, logg))
		if !cfg.App.IsDev() {
			r.With(middleware.RequireWrite(sectionAdministration, logg)).
				Post("/auth/register", controllers.AuthRegister(deps.Auth, logg))
		}

		r.Get("/stats", controllers.Stats(deps.Stats, logg))
		r.Post("/synthesis/stats", controllers.SynthesizeStats(deps.Stats, deps.Synthesis, logg))
		r.Post("/synthesis/reports", controllers.SynthesizeReports(deps.Reports, deps.Synthesis, logg))

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", controllers.ReportsList(deps.Reports, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireWrite(sectionReports, logg))
				r.Post("/", controllers.ReportsCreate(deps.Reports, logg))
				r.Patch("/{reportId}", controllers.ReportsUpdate(deps.Reports, logg))
				r.Delete("/{reportId}", controllers.ReportsDelete(deps.Reports, logg))
			})
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", controllers.TransactionsList(deps.Transactions, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireWrite(sectionTransactions, logg))
				r.Post("/", controllers.TransactionsCreate(deps.Transactions, logg))
				r.Patch("/{transactionId}", controllers.TransactionsUpdate(deps.Transactions, logg))
				r.Delete("/{transactionId}", controllers.TransactionsDelete(deps.Transactions, logg))
			})
		})

		r.Route("/technicians", func(r chi.Router) {
			r.Get("/", controllers.TechniciansList(deps.Technicians, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireWrite(sectionTechnicians, logg))
				r.Post("/", controllers.TechniciansCreate(deps.Technicians, logg))
				r.Patch("/{technicianId}", controllers.TechniciansUpdate(deps.Technicians, logg))
				r.Delete("/{technicianId}", controllers.TechniciansDelete(deps.Technicians, logg))
			})
		})

		r.Route("/interventions", func(r chi.Router) {
			r.Get("/", controllers.InterventionsList(deps.Interventions, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireWrite(sectionInterventions, logg))
				r.Post("/", controllers.InterventionsCreate(deps.Interventions, logg))
				r.Patch("/{interventionId}", controllers.InterventionsUpdate(deps.Interventions, logg))
				r.Post("/{interventionId}/done", controllers.InterventionsMarkDone(deps.Interventions, logg))
				r.Delete("/{interventionId}", controllers.InterventionsDelete(deps.Interventions, logg))
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.CatalogBrowse(deps.Catalog, logg))
			r.Get("/{productId}", controllers.CatalogGet(deps.Catalog, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireWrite(sectionCatalog, logg))
				r.Post("/", controllers.CatalogCreate(deps.Catalog, logg))
				r.Patch("/{productId}", controllers.CatalogUpdate(deps.Catalog, logg))
				r.Delete("/{productId}", controllers.CatalogDelete(deps.Catalog, logg))
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(deps.Cart, logg))
			r.Post("/items", controllers.CartAddItem(deps.Cart, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(deps.Cart, logg))
			r.Delete("/", controllers.CartClear(deps.Cart, logg))
		})

		r.Route("/ticker", func(r chi.Router) {
			r.Get("/", controllers.TickerList(deps.Ticker, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireWrite(sectionAdministration, logg))
				r.Post("/", controllers.TickerCreate(deps.Ticker, logg))
				r.Delete("/{messageId}", controllers.TickerDelete(deps.Ticker, logg))
			})
		})
	})

	return r
}

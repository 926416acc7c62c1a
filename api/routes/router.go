package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avaldez/nookstop-backend/api/controllers"
	"github.com/avaldez/nookstop-backend/api/middleware"
	authsvc "github.com/avaldez/nookstop-backend/internal/auth"
	cartsvc "github.com/avaldez/nookstop-backend/internal/cart"
	catalogsvc "github.com/avaldez/nookstop-backend/internal/catalog"
	checkoutsvc "github.com/avaldez/nookstop-backend/internal/checkout"
	orderssvc "github.com/avaldez/nookstop-backend/internal/orders"
	"github.com/avaldez/nookstop-backend/pkg/auth/session"
	"github.com/avaldez/nookstop-backend/pkg/config"
	"github.com/avaldez/nookstop-backend/pkg/logger"
	"github.com/avaldez/nookstop-backend/pkg/metrics"
	redisclient "github.com/avaldez/nookstop-backend/pkg/redis"
)

// Dependencies carries everything the router needs to assemble handlers.
type Dependencies struct {
	Config         *config.Config
	Logger         *logger.Logger
	HTTPMetrics    *metrics.HTTPMetrics
	SessionManager *session.Manager
	Redis          *redisclient.Client
	DBPinger       controllers.Pinger
	RedisPinger    controllers.Pinger

	AuthService     authsvc.Service
	CartService     cartsvc.Service
	CheckoutService checkoutsvc.Service
	OrdersService   orderssvc.Service
	CatalogService  catalogsvc.Service
}

// New assembles the chi router with the middleware chain and all routes.
func New(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(middleware.Recoverer(logg))
	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Logging(logg))
	r.Use(middleware.Metrics(deps.HTTPMetrics))

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg.App))
		r.Get("/ready", controllers.HealthReady(cfg.App, logg, deps.DBPinger, deps.RedisPinger))
	})

	if deps.HTTPMetrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.HTTPMetrics.Handler())
	}

	r.Get("/api/public/ping", controllers.Ping())

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterUsernameLimit,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).
				Post("/register", controllers.AuthRegister(deps.AuthService, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).
				Post("/login", controllers.AuthLogin(deps.AuthService, logg))
			r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/menu", controllers.CatalogMenu(deps.CatalogService, logg))
			r.Get("/furniture/{category}", controllers.CatalogFurniture(deps.CatalogService, logg))
			r.Get("/villagers", controllers.CatalogVillagers(deps.CatalogService, logg))
			r.Get("/villagers/traits", controllers.CatalogVillagerTraits(deps.CatalogService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))

			r.Post("/auth/logout", controllers.AuthLogout(deps.AuthService, logg))
			r.Put("/account", controllers.AccountUpdate(deps.AuthService, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(deps.CartService, logg))
				r.Post("/items", controllers.CartAddItem(deps.CartService, logg))
				r.Put("/items/{sku}", controllers.CartUpdateItem(deps.CartService, logg))
				r.Delete("/items/{sku}", controllers.CartRemoveItem(deps.CartService, logg))
			})

			r.Post("/checkout", controllers.Checkout(deps.CheckoutService, logg))
			r.Get("/orders", controllers.OrderHistory(deps.OrdersService, logg))
		})
	})

	return r
}

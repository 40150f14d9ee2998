package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmtumanov/beanline-backend/api/controllers"
	"github.com/dmtumanov/beanline-backend/api/middleware"
	"github.com/dmtumanov/beanline-backend/internal/assistant"
	"github.com/dmtumanov/beanline-backend/internal/cart"
	"github.com/dmtumanov/beanline-backend/internal/catalog"
	"github.com/dmtumanov/beanline-backend/internal/order"
	"github.com/dmtumanov/beanline-backend/internal/prefs"
	"github.com/dmtumanov/beanline-backend/internal/promo"
	"github.com/dmtumanov/beanline-backend/pkg/config"
	"github.com/dmtumanov/beanline-backend/pkg/db"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
	"github.com/dmtumanov/beanline-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	cat *catalog.Catalog,
	carts *cart.Manager,
	promoSvc promo.Service,
	orderSvc *order.Service,
	prefsSvc *prefs.Service,
	assistantSvc *assistant.Service,
	host controllers.MenuMessenger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins...),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Post("/login", controllers.AdminLogin(cfg.Admin, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(cfg.Admin, logg))
			r.Post("/menu/{productId}/hide", controllers.AdminHideProduct(prefsSvc, cat, host, logg))
			r.Post("/menu/{productId}/unhide", controllers.AdminUnhideProduct(prefsSvc, cat, host, logg))
			r.Post("/menu/refresh", controllers.AdminMenuRefresh(host, logg))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.DetectAdmin(cfg.Admin, logg))

		r.Get("/catalog", controllers.CatalogList(cat, prefsSvc, logg))
		r.Get("/catalog/{productId}", controllers.CatalogGet(cat, prefsSvc, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.CustomerSession(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(carts, logg))
				r.Delete("/", controllers.CartClear(carts, logg))
				r.Post("/items", controllers.CartAddItem(carts, logg))
				r.Delete("/items/{lineKey}", controllers.CartRemoveItem(carts, logg))
			})

			r.Post("/promo/preview", controllers.PromoPreview(promoSvc, carts, orderSvc, logg))

			r.With(middleware.Idempotency(redisClient, logg)).
				Post("/checkout", controllers.Checkout(orderSvc, logg))

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", controllers.FavoritesList(prefsSvc, logg))
				r.Post("/", controllers.FavoritesAdd(prefsSvc, cat, logg))
				r.Delete("/{productId}", controllers.FavoritesRemove(prefsSvc, logg))
			})

			r.Post("/assistant/chat", controllers.AssistantChat(assistantSvc, cat, prefsSvc, logg))
		})
	})

	return r
}

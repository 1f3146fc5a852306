package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velora-labs/storefront-backend/api/controllers"
	"github.com/velora-labs/storefront-backend/api/middleware"
	"github.com/velora-labs/storefront-backend/internal/auth"
	"github.com/velora-labs/storefront-backend/internal/cart"
	"github.com/velora-labs/storefront-backend/internal/catalog"
	"github.com/velora-labs/storefront-backend/internal/subscribers"
	"github.com/velora-labs/storefront-backend/internal/uploads"
	"github.com/velora-labs/storefront-backend/pkg/config"
	"github.com/velora-labs/storefront-backend/pkg/enums"
	"github.com/velora-labs/storefront-backend/pkg/logger"
	"github.com/velora-labs/storefront-backend/pkg/session"
)

// Services bundles everything the router mounts. cmd/api builds one
// after wiring the backing clients.
type Services struct {
	Auth        auth.Service
	Categories  *catalog.CategoryService
	Products    *catalog.ProductService
	Banners     *catalog.BannerService
	Blogs       *catalog.BlogService
	Offers      *catalog.OfferService
	Cart        cart.Service
	Uploads     uploads.Service
	Subscribers *subscribers.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	readiness map[string]controllers.Pinger,
	sessions *session.Store,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	admin := []func(http.Handler) http.Handler{
		middleware.Auth(cfg.JWT, logg),
		middleware.RequireRole(string(enums.RoleAdmin), logg),
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/admin/login", controllers.AdminLogin(svcs.Auth, logg))

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", controllers.UserRegister(svcs.Auth, logg))
			r.Post("/login", controllers.UserLogin(svcs.Auth, logg))
			r.With(middleware.Auth(cfg.JWT, logg)).Get("/profile", controllers.UserProfile(svcs.Auth, logg))
			r.With(admin...).Get("/all", controllers.UserList(svcs.Auth, logg))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.CategoryListActive(svcs.Categories, logg))
			r.With(admin...).Get("/all", controllers.CategoryList(svcs.Categories, logg))
			r.With(admin...).Post("/add", controllers.CategoryCreate(svcs.Categories, svcs.Uploads, logg))
			r.With(admin...).Put("/{id}/status", controllers.CategorySetStatus(svcs.Categories, logg))
			r.With(admin...).Put("/{id}/toggle", controllers.CategoryToggleStatus(svcs.Categories, logg))
			r.With(admin...).Delete("/{id}", controllers.CategoryDelete(svcs.Categories, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/all", controllers.ProductListActive(svcs.Products, logg))
			r.Get("/category/{categoryID}", controllers.ProductListByCategory(svcs.Products, logg))
			r.Get("/{id}", controllers.ProductGet(svcs.Products, logg))
			r.With(admin...).Get("/", controllers.ProductList(svcs.Products, logg))
			r.With(admin...).Post("/add", controllers.ProductCreate(svcs.Products, svcs.Uploads, logg))
			r.With(admin...).Patch("/{id}", controllers.ProductUpdate(svcs.Products, logg))
			r.With(admin...).Patch("/{id}/image", controllers.ProductUpdateImage(svcs.Products, svcs.Uploads, logg))
			r.With(admin...).Patch("/{id}/status", controllers.ProductSetStatus(svcs.Products, logg))
			r.With(admin...).Patch("/{id}/toggle", controllers.ProductToggleStatus(svcs.Products, logg))
			r.With(admin...).Delete("/{id}", controllers.ProductDelete(svcs.Products, logg))
		})

		r.Route("/banners", func(r chi.Router) {
			r.Get("/", controllers.BannerListActive(svcs.Banners, logg))
			r.With(admin...).Get("/all", controllers.BannerList(svcs.Banners, logg))
			r.With(admin...).Post("/add", controllers.BannerCreate(svcs.Banners, svcs.Uploads, logg))
			r.With(admin...).Patch("/{id}/status", controllers.BannerSetStatus(svcs.Banners, logg))
			r.With(admin...).Patch("/{id}/toggle", controllers.BannerToggleStatus(svcs.Banners, logg))
			r.With(admin...).Delete("/{id}", controllers.BannerDelete(svcs.Banners, logg))
		})

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", controllers.BlogListActive(svcs.Blogs, logg))
			r.With(admin...).Get("/all", controllers.BlogList(svcs.Blogs, logg))
			r.With(admin...).Post("/add", controllers.BlogCreate(svcs.Blogs, svcs.Uploads, logg))
			r.With(admin...).Put("/{id}/image", controllers.BlogUpdateImage(svcs.Blogs, svcs.Uploads, logg))
			r.With(admin...).Put("/{id}/status", controllers.BlogSetStatus(svcs.Blogs, logg))
			r.With(admin...).Put("/{id}/toggle", controllers.BlogToggleStatus(svcs.Blogs, logg))
			r.With(admin...).Delete("/{id}", controllers.BlogDelete(svcs.Blogs, logg))
		})

		r.Route("/offers", func(r chi.Router) {
			r.Get("/", controllers.OfferListActive(svcs.Offers, logg))
			r.With(admin...).Get("/all", controllers.OfferList(svcs.Offers, logg))
			r.With(admin...).Post("/add", controllers.OfferCreate(svcs.Offers, svcs.Uploads, logg))
			r.With(admin...).Put("/{id}/status", controllers.OfferSetStatus(svcs.Offers, logg))
			r.With(admin...).Put("/{id}/toggle", controllers.OfferToggleStatus(svcs.Offers, logg))
			r.With(admin...).Delete("/{id}", controllers.OfferDelete(svcs.Offers, logg))
		})

		// The cart owner is a guest session cookie or the authenticated
		// user depending on configuration, so the auth middleware only
		// mounts in user mode.
		r.Route("/cart", func(r chi.Router) {
			if cfg.Cart.Mode() == enums.CartOwnerModeUser {
				r.Use(middleware.Auth(cfg.JWT, logg))
			}
			r.Use(middleware.CartOwner(cfg.Cart, sessions, logg))

			r.Get("/", controllers.CartGet(svcs.Cart, logg))
			r.Post("/add", controllers.CartAdd(svcs.Cart, logg))
			r.Post("/increment", controllers.CartIncrement(svcs.Cart, logg))
			r.Post("/decrement", controllers.CartDecrement(svcs.Cart, logg))
			r.Post("/remove", controllers.CartRemove(svcs.Cart, logg))
			r.Delete("/clear", controllers.CartClear(svcs.Cart, logg))
		})

		r.With(admin...).Post("/upload", controllers.Upload(svcs.Uploads, logg))
		r.Post("/subscribe", controllers.Subscribe(svcs.Subscribers, logg))
		r.With(admin...).Get("/subscribers", controllers.SubscriberList(svcs.Subscribers, logg))
	})

	return r
}

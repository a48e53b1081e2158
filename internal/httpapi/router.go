package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/config"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/middleware"
)

type Deps struct {
	Logger *zap.Logger
	Cfg    config.Config

	Sessions middleware.SessionResolver

	Auth     *AuthHandler
	Products *ProductHandler
	Cart     *CartHandler
	Orders   *OrderHandler
	Admin    *AdminHandler
	Health   *HealthHandler
}

func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// Middlewares (outer -> inner)
	r.Use(middleware.Recover(d.Logger))
	r.Use(middleware.CORS(d.Cfg.CORSAllowOrigins))
	r.Use(middleware.CorrelationID)
	r.Use(middleware.Logging(d.Logger))
	r.Use(middleware.Auth(d.Sessions))

	r.Get("/health", d.Health.Liveness)
	r.Get("/health/upstreams", d.Health.Upstreams)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", d.Auth.Login)
		r.Post("/register", d.Auth.Register)
		r.Post("/logout", d.Auth.Logout)
	})

	r.Get("/products", d.Products.List)
	r.Get("/products/search", d.Products.Search)
	r.Get("/products/{id}", d.Products.Get)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)

		r.Route("/me", func(r chi.Router) {
			r.Get("/cart", d.Cart.GetCart)
			r.Post("/cart/items", d.Cart.AddItem)
			r.Post("/cart/items/remove", d.Cart.RemoveItem)
			r.Post("/cart/checkout", d.Cart.Checkout)
			r.Get("/orders", d.Orders.Mine)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Use(middleware.RequireRole("admin", "empleado"))

		r.Route("/admin", func(r chi.Router) {
			r.Get("/stats", d.Admin.Stats)

			r.Post("/menu", d.Admin.CreateMenuItem)
			r.Put("/menu/{id}", d.Admin.UpdateMenuItem)
			r.Delete("/menu/{id}", d.Admin.DeleteMenuItem)

			r.Get("/orders", d.Admin.ListOrders)
			r.Patch("/orders/{id}", d.Admin.UpdateOrderStatus)
			r.Delete("/orders/{id}", d.Admin.DeleteOrder)

			r.Get("/employees", d.Admin.ListEmployees)
			r.Post("/employees", d.Admin.CreateEmployee)
			r.Put("/employees/{id}", d.Admin.UpdateEmployee)
			r.Delete("/employees/{id}", d.Admin.DeleteEmployee)

			r.Get("/ingredients", d.Admin.ListIngredients)
			r.Post("/ingredients", d.Admin.CreateIngredient)
			r.Put("/ingredients/{id}", d.Admin.UpdateIngredient)
			r.Delete("/ingredients/{id}", d.Admin.DeleteIngredient)
		})
	})

	return r
}

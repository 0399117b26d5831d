package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/northgate-api/northgate/internal/auth"
	"github.com/northgate-api/northgate/internal/categories"
	"github.com/northgate-api/northgate/internal/customers"
	"github.com/northgate-api/northgate/internal/demo"
	"github.com/northgate-api/northgate/internal/employees"
	"github.com/northgate-api/northgate/internal/patients"
	"github.com/northgate-api/northgate/internal/products"
	"github.com/northgate-api/northgate/internal/shippers"
	"github.com/northgate-api/northgate/internal/suppliers"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	AuthHandler     *auth.Handler
	DemoHandler     *demo.Handler
	PatientHandler  *patients.Handler
	SupplierHandler *suppliers.Handler
	ShipperHandler  *shippers.Handler
	ProductHandler  *products.Handler
	CategoryHandler *categories.Handler
	EmployeeHandler *employees.Handler
	CustomerHandler *customers.Handler
}

// NewRouter constructs the chi.Router with Northgate defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	params.DemoHandler.MountRoutes(r)
	params.AuthHandler.MountRoutes(r)
	params.PatientHandler.MountRoutes(r)

	r.Route("/suppliers", params.SupplierHandler.MountRoutes)
	r.Route("/shippers", params.ShipperHandler.MountRoutes)
	r.Route("/categories", params.CategoryHandler.MountRoutes)
	r.Route("/employees", params.EmployeeHandler.MountRoutes)
	r.Route("/customers", params.CustomerHandler.MountRoutes)
	params.ProductHandler.MountRoutes(r)

	return r
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/northgate-api/northgate/internal/app"
	"github.com/northgate-api/northgate/internal/auth"
	"github.com/northgate-api/northgate/internal/categories"
	"github.com/northgate-api/northgate/internal/customers"
	"github.com/northgate-api/northgate/internal/demo"
	"github.com/northgate-api/northgate/internal/employees"
	"github.com/northgate-api/northgate/internal/patients"
	"github.com/northgate-api/northgate/internal/platform/db"
	"github.com/northgate-api/northgate/internal/products"
	"github.com/northgate-api/northgate/internal/shippers"
	"github.com/northgate-api/northgate/internal/suppliers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Default().Info("no .env file, using process environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	authService := auth.NewService(auth.Credentials{
		Username:     cfg.AuthUsername,
		Password:     cfg.AuthPassword,
		PasswordHash: cfg.AuthPasswordHash,
	}, cfg.TokenCapacity)

	router := app.NewRouter(app.RouterParams{
		Logger:          logger,
		Config:          cfg,
		AuthHandler:     auth.NewHandler(logger, authService, cfg.SessionCookie),
		DemoHandler:     demo.NewHandler(logger),
		PatientHandler:  patients.NewHandler(logger, patients.NewService(nil)),
		SupplierHandler: suppliers.NewHandler(logger, suppliers.NewService(suppliers.NewRepository(pool))),
		ShipperHandler:  shippers.NewHandler(logger, shippers.NewService(shippers.NewRepository(pool))),
		ProductHandler:  products.NewHandler(logger, products.NewService(products.NewRepository(pool))),
		CategoryHandler: categories.NewHandler(logger, categories.NewService(categories.NewRepository(pool))),
		EmployeeHandler: employees.NewHandler(logger, employees.NewService(employees.NewRepository(pool))),
		CustomerHandler: customers.NewHandler(logger, customers.NewService(customers.NewRepository(pool))),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("http server", slog.Any("error", err))
		os.Exit(1)
	}
}

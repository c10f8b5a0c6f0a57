package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"itemvault/internal/config"
	"itemvault/internal/infra/adapter/persistence/postgres"
	"itemvault/internal/infra/adapter/persistence/sqlite"
	"itemvault/internal/infra/db"
	"itemvault/internal/observability/logging"
	"itemvault/internal/observability/metrics"
	"itemvault/internal/repository"

	itemUC "itemvault/internal/usecase/item"
	userUC "itemvault/internal/usecase/user"

	hhttp "itemvault/internal/handler/http"
	hauth "itemvault/internal/handler/http/auth"
	hitem "itemvault/internal/handler/http/item"
	"itemvault/internal/handler/http/middleware"
	"itemvault/internal/handler/http/requestid"
	huser "itemvault/internal/handler/http/user"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).
			Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.NewLogger(settings.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, settings.Database, logger)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(database, settings.Database.Driver); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	userSvc, itemSvc := buildServices(database, settings.Database.Driver)

	if err := seedFirstSuperuser(ctx, userSvc, settings, logger); err != nil {
		logger.Error("failed to seed first superuser", slog.Any("error", err))
		os.Exit(1)
	}

	handler := applyMiddleware(logger, settings,
		setupRoutes(database, settings, userSvc, itemSvc, logger))

	runServer(ctx, logger, settings, handler)
}

// buildServices wires the services to the repository implementation matching
// the configured driver.
func buildServices(database *sql.DB, driver string) (*userUC.Service, *itemUC.Service) {
	var users repository.UserRepository
	var items repository.ItemRepository

	if driver == "sqlite" {
		users = sqlite.NewUserRepo(database)
		items = sqlite.NewItemRepo(database)
	} else {
		users = postgres.NewUserRepo(database)
		items = postgres.NewItemRepo(database)
	}

	return &userUC.Service{Repo: users}, &itemUC.Service{Repo: items}
}

// seedFirstSuperuser creates the configured superuser account so a fresh
// database has a login. An already existing account is not an error.
func seedFirstSuperuser(ctx context.Context, svc *userUC.Service, settings *config.Settings, logger *slog.Logger) error {
	if settings.FirstSuperuser == "" {
		return nil
	}

	_, err := svc.Create(ctx, userUC.CreateInput{
		Email:     settings.FirstSuperuser,
		Password:  settings.FirstSuperuserPassword,
		Active:    true,
		Superuser: true,
	})
	if errors.Is(err, userUC.ErrEmailTaken) {
		logger.Debug("first superuser already exists",
			slog.String("email", settings.FirstSuperuser))
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("first superuser created",
		slog.String("email", settings.FirstSuperuser))
	return nil
}

// setupRoutes registers all HTTP routes (public and protected).
func setupRoutes(
	database *sql.DB,
	settings *config.Settings,
	userSvc *userUC.Service,
	itemSvc *itemUC.Service,
	logger *slog.Logger,
) http.Handler {
	// The authentication endpoint allows 5 requests per minute per IP to slow
	// down credential guessing.
	authRateLimiter := middleware.NewRateLimiter(5, 1*time.Minute, 5)

	tokenCfg := hauth.TokenConfig{
		Secret: []byte(settings.JWTSecret),
		TTL:    settings.TokenTTL,
	}

	publicMux := http.NewServeMux()
	publicMux.Handle("/{$}", hhttp.RootHandler{})
	publicMux.Handle("POST /auth/token",
		authRateLimiter.Middleware(hauth.TokenHandler(userSvc, tokenCfg, logger)))
	publicMux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: settings.Version})
	publicMux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	publicMux.Handle("/live", &hhttp.LiveHandler{})
	publicMux.Handle("/metrics", metrics.Handler())

	privateMux := http.NewServeMux()
	huser.Register(privateMux, userSvc, settings.Pagination, logger)
	hitem.Register(privateMux, itemSvc, settings.Pagination, logger)

	protected := hauth.Authz([]byte(settings.JWTSecret))(privateMux)

	rootMux := http.NewServeMux()
	rootMux.Handle("/{$}", publicMux)
	rootMux.Handle("/auth/token", publicMux)
	rootMux.Handle("/health", publicMux)
	rootMux.Handle("/ready", publicMux)
	rootMux.Handle("/live", publicMux)
	rootMux.Handle("/metrics", publicMux)
	rootMux.Handle("/", protected)

	return rootMux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order, outermost first: CORS, request ID, recovery, logging, body limit,
// metrics. Authentication lives in the routing layer.
func applyMiddleware(logger *slog.Logger, settings *config.Settings, handler http.Handler) http.Handler {
	chain := handler

	chain = metrics.Middleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(middleware.DefaultCORSConfig(settings.CORSOrigins))(chain)

	return chain
}

// runServer starts the HTTP server and blocks until the context is cancelled
// or the server fails, then shuts down gracefully.
func runServer(ctx context.Context, logger *slog.Logger, settings *config.Settings, handler http.Handler) {
	srv := &http.Server{
		Addr:              settings.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris protection
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", settings.Addr),
			slog.String("version", settings.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

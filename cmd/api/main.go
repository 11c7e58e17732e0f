// SoleStyle | 2026
// main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/solestyle/api/internal/address"
	"github.com/solestyle/api/internal/admin"
	"github.com/solestyle/api/internal/auth"
	"github.com/solestyle/api/internal/cart"
	"github.com/solestyle/api/internal/catalog"
	"github.com/solestyle/api/internal/config"
	"github.com/solestyle/api/internal/contact"
	"github.com/solestyle/api/internal/core"
	"github.com/solestyle/api/internal/health"
	"github.com/solestyle/api/internal/middleware"
	"github.com/solestyle/api/internal/order"
	"github.com/solestyle/api/internal/server"
	"github.com/solestyle/api/internal/user"
)

const shutdownDrainDelay = 3 * time.Second

func main() {
	configPath := flag.String("config", "", "path to config file")
	generateKeys := flag.Bool(
		"generate-keys",
		false,
		"generate a signing key pair and exit",
	)
	flag.Parse()

	if *generateKeys {
		if err := generateKeyPair(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "generate keys: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("key pair generated")
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func generateKeyPair(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	return auth.GenerateKeyPair(cfg.JWT.PrivateKeyPath, cfg.JWT.PublicKeyPath)
}

func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	telemetry, err := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		if shutdownErr := telemetry.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("telemetry shutdown failed", "error", shutdownErr)
		}
	}()

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	rdb, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return fmt.Errorf("init jwt: %w", err)
	}

	srv := server.New(server.Config{
		ServerConfig: cfg.Server,
		Logger:       logger,
	})

	registerRoutes(srv.Router(), cfg, logger, db, rdb, jwtManager)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+shutdownDrainDelay,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, shutdownDrainDelay); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func registerRoutes(
	r chi.Router,
	cfg *config.Config,
	logger *slog.Logger,
	db *core.Database,
	rdb *core.Redis,
	jwtManager *auth.JWTManager,
) {
	userRepo := user.NewRepository(db.DB)
	userService := user.NewService(userRepo)

	adminRepo := admin.NewRepository(db.DB)
	adminService := admin.NewService(adminRepo)

	authService := auth.NewService(
		jwtManager,
		userService,
		adminService,
		rdb.Client,
	)

	catalogService := catalog.NewService(catalog.NewRepository(db.DB))
	cartService := cart.NewService(cart.NewRepository(db.DB))
	orderService := order.NewService(order.NewRepository(db.DB))
	addressService := address.NewService(address.NewRepository(db.DB))
	contactService := contact.NewService(contact.NewRepository(db.DB))

	authenticator := middleware.Authenticator(authService)
	adminOnly := middleware.AdminRequired(adminService)

	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService, orderService)
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService)
	orderHandler := order.NewHandler(orderService)
	addressHandler := address.NewHandler(addressService)
	contactHandler := contact.NewHandler(contactService)
	healthHandler := health.NewHandler(db, rdb)
	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Service:  adminService,
		Catalog:  catalogService,
		Orders:   orderService,
		Users:    userService,
		Messages: contactService,
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	r.Use(middleware.CORS(cfg.CORS))

	r.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())
	healthHandler.RegisterRoutes(r)

	r.Route("/api", func(api chi.Router) {
		healthHandler.RegisterAPIRoutes(api)
		catalogHandler.RegisterRoutes(api)
		contactHandler.RegisterRoutes(api)
		authHandler.RegisterRoutes(api, authenticator)
		userHandler.RegisterRoutes(
			api,
			authenticator,
			authHandler.ChangePassword,
			orderHandler.RegisterRoutes,
			addressHandler.RegisterRoutes,
		)
		cartHandler.RegisterRoutes(api, authenticator)
		adminHandler.RegisterRoutes(api, authenticator, adminOnly, authHandler.AdminLogin)
	})
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"authdemo/docs"
	"authdemo/internal/config"
	"authdemo/internal/controller"
	"authdemo/internal/handler"
	"authdemo/internal/kv"
	"authdemo/internal/logging"
	"authdemo/internal/model"
	"authdemo/internal/repository"
	"authdemo/internal/router"
	"authdemo/internal/service"
)

// @title Auth Demo API
// @version 1.0
// @description Login, signup and password reset over a single key-value slot of plaintext users.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	logging.SetLevel(cfg.LogLevel)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	backend, err := kv.Open(ctx, cfg)
	if err != nil {
		logging.Fatalf("store init (%s): %v", cfg.StoreBackend, err)
	}
	defer backend.Close()

	seed := model.User{Name: cfg.SeedName, Email: cfg.SeedEmail, Password: cfg.SeedPassword}
	if err := service.ValidateSeedUser(seed); err != nil {
		logging.Fatalf("seed user: %v", err)
	}

	store := repository.NewCredentialStore(backend, cfg.StorageKey, seed)
	created, err := store.EnsureSeedUser(ctx)
	if err != nil {
		logging.Fatalf("seed user: %v", err)
	}
	if created {
		logging.Infof("Seeded demo user %s", seed.Email)
	}

	authService := service.NewAuthService(store)
	registry := controller.NewRegistry(authService, controller.Options{
		PanelSwitchDelay:  cfg.PanelSwitchDelay,
		NotificationTTL:   cfg.NotificationTTL,
		ClientIdleTimeout: cfg.ClientIdleTimeout,
	})
	defer registry.Close()

	formHandler := handler.NewFormHandler(registry)

	if err := router.Register(e, formHandler); err != nil {
		logging.Fatalf("router init: %v", err)
	}

	logging.Infof("Swagger documentation available at: %s", swaggerURL(cfg))

	addr := ":" + cfg.ServerPort
	logging.Infof("Listening on %s with %s store", addr, cfg.StoreBackend)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logging.Fatalf("server start: %v", err)
	}
}

// swaggerURL points the docs at SWAGGER_HOST when set, else at the local port.
func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}

	scheme := "http://"
	switch {
	case strings.HasPrefix(host, "http://"):
		host = strings.TrimPrefix(host, "http://")
	case strings.HasPrefix(host, "https://"):
		host = strings.TrimPrefix(host, "https://")
		scheme = "https://"
	}
	docs.SwaggerInfo.Host = host

	return scheme + host + "/swagger/index.html"
}

// Package main boots the product list UI HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fairyhunter13/product-list-ui/internal/catalog"
	"github.com/fairyhunter13/product-list-ui/internal/config"
	httpapi "github.com/fairyhunter13/product-list-ui/internal/http"
	"github.com/fairyhunter13/product-list-ui/internal/obs"
)

func main() {
	cfg := config.Load()
	obs.InitLogger(cfg.LogLevel)
	obs.Logger.Info("service_starting", "product_api", cfg.ProductAPIBaseURL, "default_locale", cfg.DefaultLocale)

	client := catalog.NewClient(cfg.ProductAPIBaseURL, &http.Client{Timeout: cfg.ProductAPITimeout})
	app, err := httpapi.NewApp(cfg, client)
	if err != nil {
		obs.Logger.Error("app_init_error", "error", err)
		os.Exit(1)
	}
	mux := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.ProductAPITimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr, "routes", app.Routes.Paths())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}

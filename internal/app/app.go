package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"vendbridge/internal/config"
	"vendbridge/internal/gateway/mercadopago"
	"vendbridge/internal/repository/addressmap"
	"vendbridge/internal/repository/memory"
	"vendbridge/internal/service"
	"vendbridge/pgk/logger"

	httpController "vendbridge/internal/controller/http"
)

// newRouter assembles the middleware chain and routes. The catalog
// front end calls the intake and status endpoints from the browser, so
// cross-origin requests are allowed.
func newRouter(handlers *httpController.Controller, lg *zap.SugaredLogger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	return httpController.InitRoutes(router, handlers)
}

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	addrs := addressmap.Default(cfg.DefaultActuator)
	if cfg.AddressMapFile != "" {
		loaded, err := addressmap.Load(cfg.AddressMapFile, cfg.DefaultActuator)
		if err != nil {
			return err
		}
		addrs = loaded
	}

	store := memory.New()
	gateway := mercadopago.New(cfg.ProviderAddress, cfg.AccessToken, cfg.TerminalID, cfg.RequestTimeout)

	s := service.New(store, gateway, addrs, cfg.PendingTTL, lg)

	handlers := httpController.New(s, lg)
	router := newRouter(handlers, lg)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s.RunStatusUpdater(signalCtx, cfg.PollInterval)

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}

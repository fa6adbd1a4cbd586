package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/app/routes"
	"github.com/quitute/quitute/config"
	"github.com/quitute/quitute/pkg/cache"
	"github.com/quitute/quitute/pkg/database"
	"github.com/quitute/quitute/pkg/event"
	"github.com/quitute/quitute/pkg/logger"
	"github.com/quitute/quitute/pkg/metrics"
	"github.com/quitute/quitute/pkg/middleware"
	"github.com/quitute/quitute/pkg/migration"
	"github.com/quitute/quitute/pkg/reqid"
	"github.com/quitute/quitute/pkg/router"
	"github.com/quitute/quitute/pkg/ws"

	_ "github.com/quitute/quitute/database/migrations"
)

// Start boots the HTTP API: config, database, cache, migrations, the
// websocket hub and the router, then serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, sound preferences will not persist", "error", err)
	}

	if err := migration.New(database.DB).Run(); err != nil {
		return err
	}

	hub := ws.NewHub()
	go hub.Run()
	registerOrderListeners(hub)

	r := NewRouter(hub)

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the full middleware stack and mounts all API routes.
func NewRouter(hub *ws.Hub) *router.Router {
	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	routes.RegisterAPI(r, database.DB, hub)
	return r
}

// registerOrderListeners forwards order lifecycle events to connected
// websocket clients. Polling clients do not rely on these pushes; they
// exist so open dashboards see changes without waiting a full poll cycle.
func registerOrderListeners(hub *ws.Hub) {
	event.Listen(event.OrderCreated, func(payload interface{}) {
		order, ok := payload.(models.Order)
		if !ok {
			return
		}
		hub.BroadcastJSON(map[string]interface{}{
			"type":  "order_created",
			"order": order,
		})
	})

	event.Listen(event.OrderStatusChanged, func(payload interface{}) {
		order, ok := payload.(models.Order)
		if !ok {
			return
		}
		hub.BroadcastJSON(map[string]interface{}{
			"type":   "order_status_changed",
			"order":  order,
			"status": order.Status,
		})
	})
}

// Package server owns the process lifecycle: configuration, the store
// client (acquired once at start, released once at stop), the HTTP handler,
// and graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joseenriquez/lecturaviva/app/routes"
	"github.com/joseenriquez/lecturaviva/config"
	"github.com/joseenriquez/lecturaviva/pkg/cache"
	"github.com/joseenriquez/lecturaviva/pkg/database"
	"github.com/joseenriquez/lecturaviva/pkg/logger"
	"github.com/joseenriquez/lecturaviva/pkg/metrics"
	"github.com/joseenriquez/lecturaviva/pkg/middleware"
	"github.com/joseenriquez/lecturaviva/pkg/reqid"
	"github.com/joseenriquez/lecturaviva/pkg/router"
)

const shutdownTimeout = 10 * time.Second

// Start runs the API server and blocks until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}
	logger.Info("conectado a MongoDB", "db", config.DatabaseName())

	var logSink *logger.MongoHandler
	if config.LogToMongo() {
		logSink = logger.NewMongoHandler(database.DB(), "logs")
		logger.AttachHandler(logSink)
	}

	// Redis is optional: the rate limiter falls back to in-memory buckets.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis no disponible, rate limit en memoria", "error", err)
	}

	srv := &http.Server{
		Addr:         ":" + config.AppPort(),
		Handler:      buildHandler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("servidor escuchando", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		releaseResources(logSink)
		return err
	case sig := <-shutdown:
		logger.Info("señal de apagado recibida", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	releaseResources(logSink)
	return err
}

// buildHandler assembles the middleware stack and mounts every route.
//
// Order (outermost → innermost):
//  1. Prometheus metrics (outermost, for accurate total latency)
//  2. Recovery (catches panics before they kill the goroutine)
//  3. Request ID (inject unique ID before anything logs)
//  4. Logger (logs request_id from context)
//  5. CORS (storefront origins)
//  6. Rate limiter (reject abusers early)
func buildHandler() http.Handler {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(config.RateLimitMax(), time.Minute))

	r.Get("/metrics", "metrics", metrics.Handler())

	routes.RegisterAPI(r, database.DB())

	return r.Handler()
}

// releaseResources flushes the log sink and releases the store clients,
// mirroring the acquisition order in reverse.
func releaseResources(logSink *logger.MongoHandler) {
	if logSink != nil {
		logSink.Close()
	}
	cache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Disconnect(ctx); err != nil {
		logger.Error("error al desconectar MongoDB", "error", err)
		return
	}
	logger.Info("desconectado de MongoDB")
}

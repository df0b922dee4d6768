package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jansuvidha/config"
	"jansuvidha/data"
	"jansuvidha/handlers"
	"jansuvidha/middleware"
	"jansuvidha/upload"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	},
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	startTime := time.Now()

	tables := data.Load()
	board := upload.NewBoard(tables.SeedUploads(),
		upload.WithDelay(cfg.GetUploadDelay()),
		upload.WithMaxBytes(cfg.UploadMaxBytes),
		upload.WithLogger(logger.Named("upload")),
	)
	images := config.NewChartCache(cfg.GetChartCacheTTL())
	api := handlers.New(tables, board, images, logger, cfg)

	// Create server with optimized timeouts
	srv := &http.Server{
		Handler:           newRouter(cfg, api, logger),
		Addr:              ":" + cfg.Port,
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server",
			zap.String("addr", srv.Addr),
			zap.Duration("startup", time.Since(startTime)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		board.Close()
		images.Flush()
		if err != nil {
			return err
		}
		logger.Info("Server shutdown completed")
		return nil
	})
	return g.Wait()
}

func newRouter(cfg *config.Config, api *handlers.API, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Accept-Language",
			"Content-Type",
			"X-Requested-With",
			"Origin",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"Content-Type",
			"Content-Disposition",
			"X-Cache",
		},
		AllowCredentials: false,
		MaxAge:           86400,
	})

	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.CompressHandler)
	api.RegisterRoutes(r.PathPrefix("/api/v1").Subrouter())

	// Preflight requests match no route, so CORS sits outside the router.
	h := corsHandler.Handler(r)
	if cfg.CORSDebug {
		h = middleware.CORSDebugMiddleware(logger)(h)
	}
	return h
}

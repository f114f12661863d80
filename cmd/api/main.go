package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-api/internal/db"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/middleware"
	"github.com/BruksfildServices01/agenda-api/internal/routes"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		zl.Fatal("failed to connect database", zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), zl.Named("audit"))

	r := gin.New()
	r.Use(
		middleware.Recovery(zl),
		middleware.RequestLogger(zl.Named("http")),
		middleware.Metrics(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	if err := routes.RegisterRoutes(r, db, cfg, zl, auditDispatcher); err != nil {
		zl.Fatal("failed to register routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}

	// handlers still running after a timed-out shutdown have their events dropped
	auditDispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

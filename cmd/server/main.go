package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/tiendaropa/backoffice/internal/config"
	"github.com/tiendaropa/backoffice/internal/db"
	"github.com/tiendaropa/backoffice/internal/events"
	"github.com/tiendaropa/backoffice/internal/httpserver"
	"github.com/tiendaropa/backoffice/internal/logging"
	"github.com/tiendaropa/backoffice/internal/middleware"
	"github.com/tiendaropa/backoffice/internal/repo"
	"github.com/tiendaropa/backoffice/internal/service"
	"github.com/tiendaropa/backoffice/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", "backoffice")
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DSN())
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	producer := events.NewProducer([]string{cfg.KafkaAddress})

	store := session.NewGormStore(gdb, cfg.SessionTTL)
	r := &repo.GormRepo{DB: gdb}

	deps := &httpserver.Deps{
		ProductHandler: &httpserver.ProductHandler{
			Svc:      &service.ProductService{Repo: r},
			Producer: producer,
		},
		UserHandler: &httpserver.UserHandler{
			Svc:      &service.UserService{Repo: r},
			Producer: producer,
		},
		AuthHandler: &httpserver.AuthHandler{
			Svc:      &service.AuthService{Repo: r, Sessions: store},
			Sessions: store,
		},
		Sessions: store,
	}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID(), middleware.RequestLogger(logger))

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()
	logger.Info("server started", "addr", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}

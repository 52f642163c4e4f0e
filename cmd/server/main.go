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

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/ndc-seat-availability/internal/config"
	"github.com/iliyamo/ndc-seat-availability/internal/database"
	"github.com/iliyamo/ndc-seat-availability/internal/handler"
	"github.com/iliyamo/ndc-seat-availability/internal/logging"
	"github.com/iliyamo/ndc-seat-availability/internal/middleware"
	"github.com/iliyamo/ndc-seat-availability/internal/navitaire"
	"github.com/iliyamo/ndc-seat-availability/internal/queue"
	"github.com/iliyamo/ndc-seat-availability/internal/repository"
	"github.com/iliyamo/ndc-seat-availability/internal/router"
	"github.com/iliyamo/ndc-seat-availability/internal/seatmap"
	queue_publisher "github.com/iliyamo/ndc-seat-availability/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	supplier := navitaire.NewClient(cfg.NDC.Endpoint, cfg.NDC.SOAPAction, cfg.NDC.Timeout, navitaire.Settings{
		OwnerCode:   cfg.NDC.OwnerCode,
		CountryCode: cfg.NDC.CountryCode,
		AgencyID:    cfg.NDC.AgencyID,
	})
	engine := seatmap.NewEngine(cfg.RequiredSeatCharacteristics)

	var auditRepo *repository.AuditRepo
	if cfg.DB.Enabled() {
		db, err := database.Open(cfg.DB.User, cfg.DB.Pass, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name)
		if err != nil {
			logging.LogKV("warn", "audit database unavailable", map[string]any{"error": err.Error()})
		} else {
			defer db.Close()
			auditRepo = repository.NewAuditRepo(db)
			if err := auditRepo.EnsureSchema(ctx); err != nil {
				logging.LogKV("warn", "audit schema setup failed", map[string]any{"error": err.Error()})
			}
		}
	}

	var events handler.EventPublisher
	if cfg.AMQPURL != "" {
		events = queue_publisher.New(cfg.AMQPURL)
		var store queue.AuditWriter
		if auditRepo != nil {
			store = auditRepo
		}
		go func() {
			if err := queue.StartAuditConsumer(ctx, cfg.AMQPURL, store); err != nil && !errors.Is(err, context.Canceled) {
				logging.LogKV("error", "audit consumer stopped", map[string]any{"error": err.Error()})
			}
		}()
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		logging.LogKV("warn", "redis unavailable, cache and rate limit disabled", nil)
	} else {
		defer rdb.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(logging.RequestID())
	e.Use(logging.JSONLogger())

	router.RegisterRoutes(e)
	var audit *handler.AuditHandler
	if auditRepo != nil {
		audit = &handler.AuditHandler{Repo: auditRepo}
	}
	router.RegisterNDC(e, handler.NewSeatAvailabilityHandler(supplier, engine, events), audit, router.NDCOptions{
		JWTSecret: cfg.JWTSecret,
		Roles:     cfg.AuthRoles,
		RateLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		Cache:     middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	})

	addr := ":" + cfg.Port
	go func() {
		logging.LogKV("info", "listening", map[string]any{"addr": addr, "env": cfg.Env})
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.LogKV("error", "server failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logging.LogKV("info", "shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logging.LogKV("error", "shutdown failed", map[string]any{"error": err.Error()})
	}
}

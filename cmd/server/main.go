package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-dealership/internal/config"
	"github.com/iliyamo/car-dealership/internal/database"
	"github.com/iliyamo/car-dealership/internal/handler"
	"github.com/iliyamo/car-dealership/internal/middleware"
	"github.com/iliyamo/car-dealership/internal/notifier"
	"github.com/iliyamo/car-dealership/internal/repository"
	"github.com/iliyamo/car-dealership/internal/router"
)

func main() {
	cfg := config.Load()

	db, dialect, err := database.Open(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db, dialect); err != nil {
		log.Fatalf("schema: %v", err)
	}
	seeded, err := database.SeedIfEmpty(ctx, db, dialect)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	if seeded {
		log.Printf("seeded sample catalog (backend=%s)", dialect)
	}

	var sinks notifier.Multi
	if cfg.NotifyEnabled {
		sinks = append(sinks, notifier.NewEmail(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.NotifyTo))
	}
	if cfg.AMQPURL != "" {
		sinks = append(sinks, notifier.NewAMQP(cfg.AMQPURL))
	}

	cars := &handler.CarHandler{Cars: repository.NewCarRepo(db, dialect)}
	inquiries := &handler.InquiryHandler{
		Inquiries: repository.NewInquiryRepo(db, dialect, cfg.AllowOrphanInquiries),
		Notifier:  sinks,
	}
	admin := &handler.AdminHandler{DB: db, Dialect: dialect}

	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), config.NewRedisClient())

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, cars, inquiries, admin, rateLimit, cfg.AdminToken)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s backend=%s)", addr, cfg.Env, dialect)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/config"
	"github.com/sonamdorji/tour-booking-platform/internal/database"
	"github.com/sonamdorji/tour-booking-platform/internal/handler"
	"github.com/sonamdorji/tour-booking-platform/internal/middleware"
	"github.com/sonamdorji/tour-booking-platform/internal/queue"
	"github.com/sonamdorji/tour-booking-platform/internal/router"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
	"github.com/sonamdorji/tour-booking-platform/internal/store/memory"
	"github.com/sonamdorji/tour-booking-platform/internal/store/mysql"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	var st store.Store
	if cfg.UseMySQL() {
		db, err := database.Open(cfg.DSN())
		if err != nil {
			log.Fatalf("mysql connect: %v", err)
		}
		defer db.Close()
		st = mysql.New(db)
		log.Printf("storage backend: mysql (%s/%s)", cfg.DBHost, cfg.DBName)
	} else {
		st = memory.New()
		log.Printf("storage backend: memory (demo mode, no DB_HOST set)")
	}

	publishEvents := cfg.AMQPURL != ""
	if publishEvents {
		go func() {
			if err := queue.StartEventConsumer(cfg.AMQPURL); err != nil {
				log.Printf("event consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable: response cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(cfg, st),
		Tours:     handler.NewTourHandler(st),
		Operators: handler.NewOperatorHandler(st),
		Bookings:  handler.NewBookingHandler(st, publishEvents),
		Guides:    handler.NewGuideHandler(st),
		Itins:     handler.NewItineraryHandler(st, publishEvents),
		Custom:    handler.NewCustomTourHandler(st),
		Festivals: handler.NewFestivalHandler(st),
		Hotels:    handler.NewHotelHandler(st),
		Feedback:  handler.NewFeedbackHandler(st),
		Admin:     handler.NewAdminHandler(st),
	}

	router.RegisterRoutes(e)
	router.RegisterPublic(e, h)
	router.RegisterAuth(e, h, cfg.JWTSecret)
	router.RegisterAdmin(e, h, cfg.JWTSecret)
	router.RegisterGuide(e, h, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

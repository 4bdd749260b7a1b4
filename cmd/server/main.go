package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/averose/luxe-travel-cms/internal/config"
	"github.com/averose/luxe-travel-cms/internal/database"
	"github.com/averose/luxe-travel-cms/internal/handler"
	"github.com/averose/luxe-travel-cms/internal/middleware"
	"github.com/averose/luxe-travel-cms/internal/queue"
	"github.com/averose/luxe-travel-cms/internal/repository"
	"github.com/averose/luxe-travel-cms/internal/router"
)

func main() {
	// .env is a developer convenience; in production the variables come
	// from the environment and the file simply does not exist.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.SeedAdmin(seedCtx, db, cfg.SeedAdminPass, cfg.BcryptCost); err != nil {
		log.Fatalf("seed admin user: %v", err)
	}
	cancel()

	// Repositories.
	users := repository.NewUserRepo(db)
	inquiries := repository.NewInquiryRepo(db)
	pages := repository.NewPageRepo(db)
	posts := repository.NewPostRepo(db)
	media := repository.NewMediaRepo(db)
	categories := repository.NewCategoryRepo(db)
	tours := repository.NewTourRepo(db)
	packages := repository.NewPackageRepo(db)
	hotels := repository.NewHotelRepo(db)

	// Rate limiter for the anonymous write surface. A missing Redis means
	// the limiter passes everything through; the site stays up.
	rdb := config.NewRedisClient()
	limit := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)

	// Notification consumer. It reconnects on its own; a broker outage
	// only pauses notifications, never inquiry intake.
	go func() {
		if err := queue.StartInquiryConsumer(); err != nil {
			log.Printf("inquiry consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())

	router.RegisterRoutes(e, db, cfg.UploadDir)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg.JWTSecret, users), cfg.JWTSecret, users, limit)
	router.RegisterPublic(e, &handler.PublicHandler{
		Tours:      tours,
		Packages:   packages,
		Hotels:     hotels,
		Categories: categories,
		Posts:      posts,
		Pages:      pages,
	}, handler.NewInquiryHandler(inquiries), limit)
	router.RegisterCMS(e, router.CMSHandlers{
		Tours:      handler.NewTourHandler(tours),
		Packages:   handler.NewPackageHandler(packages),
		Hotels:     handler.NewHotelHandler(hotels),
		Categories: handler.NewCategoryHandler(categories),
		Posts:      handler.NewPostHandler(posts),
		Pages:      handler.NewPageHandler(pages),
		Media:      handler.NewMediaHandler(media, cfg.UploadDir, cfg.MaxUploadBytes),
		Stats: &handler.StatsHandler{
			Tours:      tours,
			Packages:   packages,
			Hotels:     hotels,
			Categories: categories,
			Posts:      posts,
			Pages:      pages,
			Media:      media,
			Inquiries:  inquiries,
		},
		Inquiries: handler.NewInquiryHandler(inquiries),
	}, cfg.JWTSecret, users)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

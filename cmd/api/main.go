package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/topronto/admin-backoffice/internal/auth"
	"github.com/topronto/admin-backoffice/internal/cache"
	"github.com/topronto/admin-backoffice/internal/config"
	"github.com/topronto/admin-backoffice/internal/db"
	"github.com/topronto/admin-backoffice/internal/gateway"
	"github.com/topronto/admin-backoffice/internal/handlers"
	"github.com/topronto/admin-backoffice/internal/logger"
	"github.com/topronto/admin-backoffice/internal/middleware"
	"github.com/topronto/admin-backoffice/internal/realtime"
	"github.com/topronto/admin-backoffice/internal/services/storage"
	"github.com/topronto/admin-backoffice/internal/views"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New("dev").Error("config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.AppEnv)

	gdb, err := db.Connect(cfg.DBDSN, log)
	if err != nil {
		log.Error("database", "error", err)
		os.Exit(1)
	}
	if cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			log.Error("migrate", "error", err)
			os.Exit(1)
		}
	}
	gw := gateway.NewSet(gdb)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := realtime.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
	defer rdb.Close()

	// cache invalidations go to this instance's sockets and to the other instances
	hub := realtime.NewHub(log)
	go hub.Run(ctx)

	store := cache.NewStore(log)
	bus := cache.NewRedisBus(rdb, log)
	store.OnInvalidate(hub.Invalidated)
	store.OnInvalidate(bus.Publish)
	go bus.Run(ctx, store, hub.Invalidated)
	if cfg.CacheIdleMin > 0 {
		go store.RunJanitor(ctx, time.Minute, time.Duration(cfg.CacheIdleMin)*time.Minute)
	}

	authSvc := auth.NewService(gw.Users, auth.NewRedisSessionStore(rdb), cfg.JWTSecret, cfg.JWTExpiresMin, log)
	gate := auth.NewGate(authSvc, gw.Admins, log)
	defer gate.Close()

	var bucket storage.Bucket
	if cfg.StorageDriver == "local" {
		bucket = storage.NewLocalBucket(cfg.UploadsDir, cfg.AppBaseURL, cfg.StorageBucket)
	} else {
		bucket = storage.NewRemoteBucket(cfg.BackendURL, cfg.BackendAPIKey, cfg.StorageBucket)
	}

	mut := views.NewMutator(store, log)
	driverSvc := views.NewDriverService(gw.Drivers, store, mut)
	enterpriseSvc := views.NewEnterpriseService(gw.Enterprises, store, mut)
	contactSvc := views.NewContactService(gw.Contacts, store, mut)
	offerSvc := views.NewJobOfferService(gw.JobOffers, store, mut)
	appSvc := views.NewApplicationService(gw.JobApplications, store, mut, bucket, log)

	authH := &handlers.AuthHandler{
		Auth:         authSvc,
		Gate:         gate,
		Expires:      cfg.JWTExpiresMin,
		SecureCookie: cfg.AppEnv == "prod",
	}
	router := &handlers.Router{
		Gate:        gate,
		Limiter:     middleware.NewRedisLimiter(rdb),
		LoginLimit:  cfg.LoginRateLimit,
		Auth:        authH,
		I18n:        handlers.NewI18nHandler(cfg.DefaultLanguage),
		Dashboard:   handlers.NewDashboardHandler(views.NewDashboardService(store, driverSvc, enterpriseSvc, contactSvc, offerSvc)),
		Drivers:     handlers.NewDriverHandler(driverSvc),
		Enterprises: handlers.NewEnterpriseHandler(enterpriseSvc),
		Contacts:    handlers.NewContactHandler(contactSvc),
		JobOffers:   handlers.NewJobOfferHandler(offerSvc, appSvc),
		Surveys:     handlers.NewSurveyHandler(views.NewSurveyService(gw.Surveys, store)),
		Realtime:    handlers.NewRealtimeHandler(hub, log),
	}
	if cfg.GoogleEnabled() {
		router.Google = &handlers.GoogleOAuthHandler{
			Auth:            authH,
			Users:           gw.Users,
			GoogleClientID:  cfg.GoogleClientID,
			GoogleSecret:    cfg.GoogleSecret,
			GoogleRedirect:  cfg.GoogleRedirect,
			FrontendBaseURL: cfg.FrontendBaseURL,
			Log:             log,
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "topronto-backoffice",
		ErrorHandler: handlers.ErrorHandler(log),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Accept-Language, Authorization",
		ExposeHeaders:    "Content-Length, Content-Disposition",
		AllowCredentials: true,
	}))

	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	if cfg.StorageDriver == "local" {
		app.Static("/uploads", cfg.UploadsDir)
	}
	router.Mount(app)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.Info("listening", "port", cfg.AppPort, "env", cfg.AppEnv)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Error("server", "error", err)
		os.Exit(1)
	}
}

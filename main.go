package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"salonify/config"
	"salonify/cron"
	"salonify/database"
	bookingRepo "salonify/database/repository/booking"
	contentRepo "salonify/database/repository/content"
	settingsRepo "salonify/database/repository/settings"
	userRepoPkg "salonify/database/repository/user"
	"salonify/handlers"
	"salonify/routes"
	"salonify/services/admin"
	"salonify/services/booking"
	"salonify/services/content"
	"salonify/services/events"
	ai "salonify/services/intelligence"
	"salonify/services/notification"
	"salonify/services/storage"
	"salonify/services/tasks"
	"salonify/services/user"
	"salonify/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type repositories struct {
	users    userRepoPkg.UserRepository
	bookings bookingRepo.BookingRepository
	content  contentRepo.Set
	settings settingsRepo.SettingsRepository
}

func openRepositories(logger *zap.Logger) repositories {
	if config.UseMemoryStore() {
		logger.Warn("main: using the in-memory store; data is lost on restart")
		return repositories{
			users:    userRepoPkg.NewMemoryUserRepo(),
			bookings: bookingRepo.NewMemoryBookingRepo(),
			content:  contentRepo.NewMemorySet(),
			settings: settingsRepo.NewMemorySettingsRepo(),
		}
	}
	if err := database.InitDB(); err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	return repositories{
		users:    userRepoPkg.NewMongoUserRepo(logger),
		bookings: bookingRepo.NewMongoBookingRepo(logger),
		content:  contentRepo.NewMongoSet(logger),
		settings: settingsRepo.NewMongoSettingsRepo(),
	}
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		if config.AppConfig.JWTSecret == "" {
			logger.Fatal("main: JWT_SECRET must be set in production")
		}
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	repos := openRepositories(logger)
	utils.InitRedis()
	utils.FirebaseInit()
	utils.StartHealthMonitor(rootCtx, utils.RedisClients(), database.MongoClient)

	// Realtime hub and task queue fall back to in-process / disabled without Redis.
	cacheClient := utils.GetCacheClient()
	var hub events.Hub = events.NewLocalHub()
	var dispatcher tasks.Dispatcher = tasks.NopDispatcher{}
	var mailQueue tasks.Dispatcher
	var worker *asynq.Server
	if cacheClient != nil {
		hub = events.NewRedisHub(cacheClient, logger)

		queueOpt := asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}
		asynqDispatcher := tasks.NewAsynqDispatcher(queueOpt)
		defer asynqDispatcher.Close()
		dispatcher = asynqDispatcher
		mailQueue = asynqDispatcher

		cfg := config.AppConfig
		worker = cron.StartWorker(queueOpt, &cron.TaskHandlers{
			Pusher:     notification.NewFCMPusher(utils.FCMClient, logger),
			Mailer:     notification.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
			Users:      repos.users,
			AdminEmail: cfg.AdminEmail,
			Logger:     logger,
		})
	} else {
		logger.Warn("main: Redis unavailable; realtime events are local and background tasks are disabled")
	}

	var store storage.StorageService = storage.DisabledStorage{}
	if cld, err := utils.Cloudinary(); err != nil {
		logger.Warn("main: image uploads disabled", zap.Error(err))
	} else {
		store = storage.NewCloudinaryStorage(cld, logger)
	}

	var generator ai.TextGenerator
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(rootCtx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Error("main: failed to create Gemini client; AI answers will use fallbacks", zap.Error(err))
		} else {
			defer gemini.Close()
			generator = gemini
		}
	}
	var estimateCache ai.EstimateCache
	if cacheClient != nil {
		estimateCache = ai.NewRedisEstimateCache(cacheClient, ai.EstimateTTL)
	}

	// services.
	tokens := utils.NewTokenManager(config.AppConfig.JWTSecret, time.Duration(config.AppConfig.TokenTTLHours)*time.Hour)
	authCache := utils.NewTokenCache(utils.GetAuthCacheClient())
	mailer := notification.NewSMTPMailer(config.AppConfig.SMTPHost, config.AppConfig.SMTPPort, config.AppConfig.SMTPUser, config.AppConfig.SMTPPass)
	messenger := notification.NewWhatsAppMessenger(config.AppConfig.SalonWhatsApp, "")
	resetURL := strings.TrimRight(config.AppConfig.PublicBaseURL, "/") + "/auth/reset"

	userService := user.NewDefaultUserService(repos.users, authCache, tokens, mailer, mailQueue, hub, logger, resetURL)
	bookingService := booking.NewDefaultBookingService(repos.bookings, repos.users, hub, dispatcher, messenger, logger)
	contentService := content.NewDefaultContentService(repos.content, repos.settings, store, dispatcher, logger)
	adminService := admin.NewDefaultAdminService(config.AppConfig.AdminPassword, tokens, logger)
	aiService := ai.NewDefaultAIService(generator, estimateCache, logger)

	contentService.OnSettingsChange = messenger.ApplySettings
	if settings, err := contentService.GetSettings(rootCtx); err == nil {
		messenger.ApplySettings(*settings)
	} else {
		logger.Warn("main: salon settings not loaded", zap.Error(err))
	}

	scheduler, err := cron.StartReminderCron(config.AppConfig.ReminderCron, cron.NewReminderScanner(repos.bookings, dispatcher, logger))
	if err != nil {
		logger.Error("main: reminder scheduler not started", zap.Error(err))
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Tokens:            tokens,
		UserRepo:          repos.users,
		AuthCache:         authCache,
		RequestsPerMinute: config.AppConfig.MaxRequestsPerMin,
		Users:             handlers.NewUserHandler(userService),
		Bookings:          handlers.NewBookingHandler(bookingService),
		Admin:             handlers.NewAdminHandler(adminService, userService),
		AI:                handlers.NewAIHandler(aiService),
		Content:           handlers.NewContentHandler(contentService),
		Streams:           handlers.NewStreamHandler(hub, rootCtx.Done()),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(handlers.AccessLogger(nil))

	var origins []string
	if config.IsProduction() {
		origins = []string{config.AppConfig.PublicBaseURL}
	}
	routes.RegisterRoutes(router, handlerBundle, origins)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	// Ending the root context ends open event streams so Shutdown can drain.
	stop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	if worker != nil {
		worker.Shutdown()
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: MongoDB disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	appCatalog "github.com/NeonArcade/PlayBill/pkg/app/catalog"
	appDevice "github.com/NeonArcade/PlayBill/pkg/app/device"
	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	"github.com/NeonArcade/PlayBill/pkg/cache"
	"github.com/NeonArcade/PlayBill/pkg/common"
	"github.com/NeonArcade/PlayBill/pkg/config"
	handlers "github.com/NeonArcade/PlayBill/pkg/handlers/http"
	handlersWS "github.com/NeonArcade/PlayBill/pkg/handlers/websocket"
	"github.com/NeonArcade/PlayBill/pkg/infra/clock"
	"github.com/NeonArcade/PlayBill/pkg/infra/database"
	"github.com/NeonArcade/PlayBill/pkg/infra/events"
	"github.com/NeonArcade/PlayBill/pkg/infra/events/channel"
	"github.com/NeonArcade/PlayBill/pkg/infra/events/event"
	"github.com/NeonArcade/PlayBill/pkg/infra/events/subscriber"
	infraLogger "github.com/NeonArcade/PlayBill/pkg/infra/logger"
	_ "github.com/NeonArcade/PlayBill/pkg/infra/migrations"
	"github.com/NeonArcade/PlayBill/pkg/infra/repository"
	"github.com/NeonArcade/PlayBill/pkg/infra/scheduler"
	infraWebsocket "github.com/NeonArcade/PlayBill/pkg/infra/websocket"
	"github.com/NeonArcade/PlayBill/pkg/middleware"
	"github.com/NeonArcade/PlayBill/pkg/server"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheInstance, err := cache.NewCache(common.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatalf("failed to initialize cache: %v", err)
	}
	defer cacheInstance.Close()

	clk := clock.New()

	// repositories
	sessionRepository := repository.NewSessionRepository(db.DB)
	deviceRepository := repository.NewDeviceRepository(db.DB)
	packageRepository := repository.NewPackageRepository(db.DB)

	// redis publisher and listener
	redisPublisher := events.NewRedisEventPublisher(cacheInstance, channel.SessionEventsChannel)
	redisListener := events.NewRedisEventListener(logger, cacheInstance, event.Registry)

	// websocket feed
	hub := infraWebsocket.NewHub(logger, cfg.Sessions.WSMaxClients)
	registerFeedSubscribers(logger, redisListener, hub)

	// session commands
	starter := appSession.NewStarter(logger, sessionRepository, deviceRepository, packageRepository, redisPublisher, cacheInstance, clk)
	pauser := appSession.NewPauser(logger, sessionRepository, redisPublisher, cacheInstance, clk)
	resumer := appSession.NewResumer(logger, sessionRepository, redisPublisher, cacheInstance, clk)
	timeAdder := appSession.NewTimeAdder(logger, sessionRepository, redisPublisher, cacheInstance, clk)
	paymentConfirmer := appSession.NewPaymentConfirmer(logger, sessionRepository, redisPublisher, cacheInstance, clk)
	stopper := appSession.NewStopper(logger, sessionRepository, redisPublisher, cacheInstance, clk)
	sessionFinder := appSession.NewFinder(sessionRepository, cacheInstance, clk)

	expiryChecker := appSession.NewExpiryChecker(logger, sessionRepository, redisPublisher, cacheInstance)
	expiryTicker := scheduler.NewExpiryTicker(logger, expiryChecker, clk, cfg.Sessions.TickInterval())

	// device and package management
	deviceCreator := appDevice.NewCreator(logger, deviceRepository)
	deviceUpdater := appDevice.NewUpdater(logger, deviceRepository)
	deviceFinder := appDevice.NewFinder(deviceRepository)
	deviceDeleter := appDevice.NewDeleter(logger, deviceRepository, sessionRepository)
	packageCreator := appCatalog.NewCreator(logger, packageRepository)
	packageUpdater := appCatalog.NewUpdater(logger, packageRepository)
	packageFinder := appCatalog.NewFinder(packageRepository)
	packageDeleter := appCatalog.NewDeleter(logger, packageRepository)

	middlewareTransport := middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		// Session
		StartSessionHandler:   handlers.NewStartSessionHandler(logger, starter),
		PauseSessionHandler:   handlers.NewPauseSessionHandler(logger, pauser),
		ResumeSessionHandler:  handlers.NewResumeSessionHandler(logger, resumer),
		AddTimeHandler:        handlers.NewAddTimeHandler(logger, timeAdder),
		ConfirmPaymentHandler: handlers.NewConfirmPaymentHandler(logger, paymentConfirmer),
		StopSessionHandler:    handlers.NewStopSessionHandler(logger, stopper),
		GetSessionHandler:     handlers.NewGetSessionHandler(logger, sessionFinder),
		ListSessionsHandler:   handlers.NewListSessionsHandler(logger, sessionFinder),
		// Device
		CreateDeviceHandler:     handlers.NewCreateDeviceHandler(logger, deviceCreator),
		ListDevicesHandler:      handlers.NewListDevicesHandler(logger, deviceFinder),
		GetDeviceHandler:        handlers.NewGetDeviceHandler(logger, deviceFinder),
		GetDeviceSessionHandler: handlers.NewGetDeviceSessionHandler(logger, sessionFinder),
		UpdateDeviceHandler:     handlers.NewUpdateDeviceHandler(logger, deviceUpdater),
		DeleteDeviceHandler:     handlers.NewDeleteDeviceHandler(logger, deviceDeleter),
		// Package
		CreatePackageHandler: handlers.NewCreatePackageHandler(logger, packageCreator),
		ListPackagesHandler:  handlers.NewListPackagesHandler(logger, packageFinder),
		GetPackageHandler:    handlers.NewGetPackageHandler(logger, packageFinder),
		UpdatePackageHandler: handlers.NewUpdatePackageHandler(logger, packageUpdater),
		DeletePackageHandler: handlers.NewDeletePackageHandler(logger, packageDeleter),
		// Misc
		GetVersionHandler: handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewAdminServer(server.AdminServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		SessionFeedHandler:  handlersWS.NewSessionFeedHandler(logger, hub),
		Config:              cfg,
		Logger:              logger,
	})

	go redisListener.Listen(ctx, channel.SessionEventsChannel)
	expiryTicker.Start()

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return srv.Run()
	})

	group.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		select {
		case <-quit:
			logger.Info("shutdown signal received")
		case <-gctx.Done():
		}
		expiryTicker.Shutdown()
		cancel()
		return srv.Shutdown()
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("server failed: %v", err)
	}
	logger.Info("server gracefully stopped")
}

func registerFeedSubscribers(logger *logrus.Logger, listener events.EventListener, hub *infraWebsocket.Hub) {
	events.RegisterEventSubscriber[event.SessionStartedEvent](listener, subscriber.NewSessionFeedEventSubscriber[event.SessionStartedEvent](logger, hub))
	events.RegisterEventSubscriber[event.SessionPausedEvent](listener, subscriber.NewSessionFeedEventSubscriber[event.SessionPausedEvent](logger, hub))
	events.RegisterEventSubscriber[event.SessionResumedEvent](listener, subscriber.NewSessionFeedEventSubscriber[event.SessionResumedEvent](logger, hub))
	events.RegisterEventSubscriber[event.TimeAddedEvent](listener, subscriber.NewSessionFeedEventSubscriber[event.TimeAddedEvent](logger, hub))
	events.RegisterEventSubscriber[event.SessionExpiredEvent](listener, subscriber.NewSessionFeedEventSubscriber[event.SessionExpiredEvent](logger, hub))
	events.RegisterEventSubscriber[event.PaymentConfirmedEvent](listener, subscriber.NewSessionFeedEventSubscriber[event.PaymentConfirmedEvent](logger, hub))
	events.RegisterEventSubscriber[event.SessionStoppedEvent](listener, subscriber.NewSessionFeedEventSubscriber[event.SessionStoppedEvent](logger, hub))
}

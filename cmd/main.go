package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"

	"github.com/uparkdev/parking-backend/internal/auth"
	"github.com/uparkdev/parking-backend/internal/config"
	"github.com/uparkdev/parking-backend/internal/db"
	"github.com/uparkdev/parking-backend/internal/gate"
	"github.com/uparkdev/parking-backend/internal/handlers"
	"github.com/uparkdev/parking-backend/internal/middleware"
	"github.com/uparkdev/parking-backend/internal/service"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.GetConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to read configuration")
	}
	if cfg.IsDebug {
		log.SetLevel(log.DebugLevel)
	}

	client, err := db.ConnectMongo(cfg.Mongo.URI)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.WithError(err).Warn("Failed to disconnect from MongoDB")
		}
	}()
	log.Info("Connected to MongoDB")

	database := client.Database(cfg.Mongo.Database)

	accesses := &db.MongoAccessRepository{Collection: database.Collection("accesses")}
	lots := &db.MongoLotRepository{Collection: database.Collection("lots")}
	vehicles := &db.MongoVehicleRepository{Collection: database.Collection("vehicles")}
	contractors := &db.MongoContractorRepository{Collection: database.Collection("contractors")}
	events := &db.MongoEventRepository{Collection: database.Collection("events")}
	timeRates := &db.MongoTimeRateRepository{Collection: database.Collection("time_rates")}
	dailyRates := &db.MongoDailyRateRepository{Collection: database.Collection("daily_rates")}
	monthlyRates := &db.MongoMonthlyRateRepository{Collection: database.Collection("monthly_rates")}
	users := &db.MongoUserRepository{Collection: database.Collection("users")}

	accessService := service.NewAccessService(accesses, lots, vehicles, timeRates, dailyRates, monthlyRates)
	lotService := service.NewLotService(lots)
	vehicleService := service.NewVehicleService(vehicles)
	eventService := service.NewEventService(events)
	contractorService := service.NewContractorService(contractors, lots, events)
	timeRateService := service.NewTimeRateService(timeRates)
	dailyRateService := service.NewDailyRateService(dailyRates)
	monthlyRateService := service.NewMonthlyRateService(monthlyRates)

	authService := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	router := httprouter.New()
	handlers.NewAccessHandler(accessService).Register(router)
	handlers.NewLotHandler(lotService).Register(router)
	handlers.NewVehicleHandler(vehicleService).Register(router)
	handlers.NewEventHandler(eventService).Register(router)
	handlers.NewContractorHandler(contractorService).Register(router)
	handlers.NewRateHandler(timeRateService, dailyRateService, monthlyRateService).Register(router)
	handlers.NewAuthHandler(authService, users).Register(router)

	router.GET("/health", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()

	var handler http.Handler = router
	handler = authMiddleware.Authenticate(handler)
	handler = rateLimiter.RateLimit(300, 60)(handler)

	if cfg.MQTT.Broker != "" {
		listener, err := gate.NewListener(cfg.MQTT.Broker, cfg.MQTT.ClientID, accessService)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect gate listener")
		}
		if err := listener.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start gate listener")
		}
		defer listener.Stop()
	}

	addr := net.JoinHostPort(cfg.Listen.BindIP, cfg.Listen.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.WithField("addr", addr).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}

package main

import (
	availabilityhandler "fundi/internal/availability/handler"
	availabilityservice "fundi/internal/availability/service"
	"fundi/internal/bookings/handler"
	"fundi/internal/bookings/repository"
	"fundi/internal/bookings/service"
	"fundi/internal/bookings/validator"
	"fundi/internal/notifications/publisher"
	providersrepository "fundi/internal/providers/repository"
	"fundi/pkg/app"
	"fundi/pkg/config"
	"fundi/pkg/kafka"
	kafkaconfig "fundi/pkg/kafka/config"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	cfg.LogConfiguration()
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Bookings service")

	notificationPublisher := initPublisher(cfg)
	defer func() {
		if err := notificationPublisher.Close(); err != nil {
			cfg.Log.Error("Failed to close notification publisher", "error", err)
		}
	}()

	bookingService, availabilityService := initServices(cfg, notificationPublisher)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewBookingHandler(bookingService, cfg.Log),
		availabilityhandler.NewAvailabilityHandler(availabilityService, cfg.Log),
	)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) publisher.Publisher {
	kafkaCfg := kafkaconfig.Load()
	producer, err := kafka.NewProducer(kafkaCfg, cfg.Log, cfg.NotificationTopic, cfg.NotificationDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	return publisher.NewKafkaPublisher(producer, cfg.NotificationTopic, cfg.Log)
}

func initServices(cfg *config.Config, notificationPublisher publisher.Publisher) (service.BookingService, availabilityservice.AvailabilityService) {
	bookingValidator := validator.NewBookingValidator(cfg.Log)
	bookingRepo := repository.NewMongoBookingRepository(cfg)
	lockRepo := repository.NewSlotLockRepository(cfg)

	bookingService := service.NewBookingService(
		bookingRepo,
		lockRepo,
		bookingValidator,
		notificationPublisher,
		cfg,
		cfg.Log,
	)

	providerRepo := providersrepository.NewMongoProviderRepository(cfg)
	availabilityService := availabilityservice.NewAvailabilityService(bookingRepo, providerRepo, cfg.Log)

	cfg.Log.Info("Booking services initialized", "database", cfg.MongoDatabaseName)
	return bookingService, availabilityService
}

package main

import (
	"fundi/internal/providers/handler"
	"fundi/internal/providers/repository"
	"fundi/internal/providers/service"
	"fundi/internal/providers/validator"
	"fundi/pkg/app"
	"fundi/pkg/config"
)

const ServiceName = "providers"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	cfg.LogConfiguration()
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Providers service")
	providerService := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewProviderHandler(providerService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.ProviderService {
	providerValidator := validator.NewProviderValidator(cfg.Log)
	providerRepo := repository.NewMongoProviderRepository(cfg)
	providerService := service.NewProviderService(providerRepo, providerValidator, cfg.Log)

	cfg.Log.Info("Provider service initialized", "database", cfg.MongoDatabaseName)
	return providerService
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fundi/internal/notifications/notifier"
	"fundi/internal/notifications/worker"
	"fundi/pkg/config"
	"fundi/pkg/kafka"
	kafkaconfig "fundi/pkg/kafka/config"
)

const ServiceName = "notify"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	cfg.LogConfiguration()
	cfg.Log.Info("Starting notification worker")

	handler := worker.NewHandler(notifier.NewLogNotifier(cfg.Log), cfg.Log)

	kafkaCfg := kafkaconfig.Load()
	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		cfg.Log,
		cfg.NotificationTopic,
		ServiceName,
		cfg.NotificationDLQTopic,
		handler.Handle,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-shutdown
		cfg.Log.Info("Shutdown signal received", "signal", sig)
		cancel()
	}()

	if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
		cfg.Log.Fatal("Consumer failed", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}

	cfg.Log.Info("Notification worker stopped")
}

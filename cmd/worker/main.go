package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/bookingservice/config"
	"github.com/Domenick1991/bookingservice/internal/cache"
	"github.com/Domenick1991/bookingservice/internal/domain"
	"github.com/Domenick1991/bookingservice/internal/email"
	"github.com/Domenick1991/bookingservice/internal/kafka"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatal("worker needs kafka.brokers and kafka.notifications_topic")
	}

	// an uncommitted event is redelivered on restart
	if err := run(cfg); err != nil {
		log.Fatalf("consumer stopped: %v", err)
	}
	log.Println("worker shut down")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var dedupe email.Deduplicator
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Worker.DedupeTTL())
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("WARNING: redis unavailable, duplicates will not be filtered: %v", err)
		}
		dedupe = redisCache
	}

	dispatcher := email.NewDispatcher(email.NewSender(), dedupe)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	log.Printf("consuming %s as %s", cfg.Kafka.NotificationsTopic, cfg.Kafka.GroupID)
	err := consumer.ConsumeEvents(ctx, func(ctx context.Context, event domain.BookingEvent) error {
		if err := dispatcher.Dispatch(ctx, event); err != nil {
			return fmt.Errorf("email for booking %s: %w", event.BookingID, err)
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

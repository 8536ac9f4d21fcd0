package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/bookingservice/config"
	"github.com/Domenick1991/bookingservice/internal/bootstrap"
	"github.com/Domenick1991/bookingservice/internal/email"
	"github.com/Domenick1991/bookingservice/internal/kafka"
	"github.com/Domenick1991/bookingservice/internal/repository"
	"github.com/Domenick1991/bookingservice/internal/service/booking"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var notifier booking.Notifier
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()

		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := producer.CheckConnection(checkCtx); err != nil {
			log.Printf("WARNING: kafka unavailable, notifications may be lost: %v", err)
		}
		cancel()

		notifier = kafka.NewEventNotifier(producer, cfg.Kafka.NotificationsTopic)
		log.Printf("notifications go to kafka topic %s", cfg.Kafka.NotificationsTopic)
	} else {
		notifier = email.NewSender()
		log.Println("kafka not configured, emails are logged directly")
	}

	bookingService := booking.NewBookingService(
		repository.NewBookingRepository(),
		booking.WithNotifier(notifier),
		booking.WithNotifyTimeout(cfg.Booking.NotifyTimeout()),
		booking.WithRejectDuplicates(cfg.Booking.RejectDuplicates),
	)
	defer bookingService.Close()

	if err := bootstrap.Run(ctx, cfg, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
	log.Println("shutting down")
}

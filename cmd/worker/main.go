package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shawn910604/taipei-day-trip/config"
	"github.com/shawn910604/taipei-day-trip/internal/email"
	"github.com/shawn910604/taipei-day-trip/internal/kafka"
)

// The worker consumes order events and sends confirmation mail, keeping the
// checkout request path free of notification work.
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.OrderTopic)
	defer consumer.Close()

	sender := email.NewSender()

	if err := consumer.Consume(ctx, sender.Send); err != nil && ctx.Err() == nil {
		log.Printf("consumer stopped: %v", err)
	}
}

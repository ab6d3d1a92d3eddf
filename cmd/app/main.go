package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shawn910604/taipei-day-trip/config"
	"github.com/shawn910604/taipei-day-trip/internal/auth"
	"github.com/shawn910604/taipei-day-trip/internal/bootstrap"
	"github.com/shawn910604/taipei-day-trip/internal/cache"
	"github.com/shawn910604/taipei-day-trip/internal/kafka"
	"github.com/shawn910604/taipei-day-trip/internal/payment"
	"github.com/shawn910604/taipei-day-trip/internal/repository"
	"github.com/shawn910604/taipei-day-trip/internal/service/booking"
	"github.com/shawn910604/taipei-day-trip/internal/service/member"
	"github.com/shawn910604/taipei-day-trip/internal/service/order"
	"github.com/shawn910604/taipei-day-trip/internal/service/trip"
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

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.AttractionsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret)
	gateway := payment.NewTapPayClient(cfg.Payment)

	memberRepo := repository.NewMemberRepository(pool)
	attractionRepo := repository.NewAttractionRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	tripSvc := trip.NewTripService(attractionRepo, redisCache)
	memberSvc := member.NewMemberService(memberRepo, tokens)
	bookingSvc := booking.NewBookingService(bookingRepo, attractionRepo)
	orderSvc := order.NewOrderService(orderRepo, gateway,
		order.WithProducer(producer, cfg.Kafka.OrderTopic))

	if err := bootstrap.Run(ctx, cfg, tokens, tripSvc, memberSvc, bookingSvc, orderSvc); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

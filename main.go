// Package main car rental API.
//
// @title           Car Rental API
// @version         1.0
// @description     car rental service (cars, bookings, returns, admin inventory).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	kafkaGo "github.com/segmentio/kafka-go"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/shashank1027/car-rental-system/app/echoServer"
	authctrl "github.com/shashank1027/car-rental-system/app/echoServer/controller/auth"
	carctrl "github.com/shashank1027/car-rental-system/app/echoServer/controller/car"
	rentalctrl "github.com/shashank1027/car-rental-system/app/echoServer/controller/rental"
	"github.com/shashank1027/car-rental-system/app/echoServer/validation"
	"github.com/shashank1027/car-rental-system/config"
	authrepo "github.com/shashank1027/car-rental-system/repository/auth"
	carrepo "github.com/shashank1027/car-rental-system/repository/car"
	"github.com/shashank1027/car-rental-system/repository/cache"
	"github.com/shashank1027/car-rental-system/repository/events"
	rentalrepo "github.com/shashank1027/car-rental-system/repository/rental"
	authsvc "github.com/shashank1027/car-rental-system/service/auth"
	carsvc "github.com/shashank1027/car-rental-system/service/car"
	"github.com/shashank1027/car-rental-system/service/notification"
	rentalsvc "github.com/shashank1027/car-rental-system/service/rental"
	"github.com/shashank1027/car-rental-system/util/database"
)

func main() {

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB: *sql.DB, migrations applied
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// collaborators
	redisCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, time.Duration(cfg.CarsCacheTTLSec)*time.Second)
	brokers := strings.Split(cfg.KafkaBrokers, ",")
	producer := events.NewProducer(brokers)
	defer producer.Close()

	// repos
	ar := authrepo.New(db)
	cr := carrepo.New(db)
	rr := rentalrepo.New(db)

	// services
	as := authsvc.New(ar, cfg.JWTSecret)
	cs := carsvc.New(cr, redisCache)
	rs := rentalsvc.New(db, rr, cr, redisCache, producer, cfg.RentalEventsTopic)
	sweeper := rentalsvc.NewSweeper(rr, producer, cfg.RentalEventsTopic)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, Deny: redisCache, V: v, Log: log}
	carC := &carctrl.Controller{Svc: cs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, Cars: cs, V: v, Log: log}

	// overdue sweep
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.OverdueSweepMin) * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := sweeper.SweepOverdue(ctx)
				if err != nil {
					log.Error("overdue sweep failed", "err", err)
					continue
				}
				if n > 0 {
					log.Info("overdue rentals flagged", "count", n)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// rental-event notifications
	consumer := events.NewConsumer(brokers, cfg.ConsumerGroupID, cfg.RentalEventsTopic)
	defer consumer.Close()
	sender := notification.NewSender(log)
	go func() {
		err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var ev events.RentalEvent
			if err := json.Unmarshal(msg.Value, &ev); err != nil {
				log.Warn("bad rental event", "err", err)
				return nil
			}
			return sender.Send(ctx, ev)
		})
		if err != nil && ctx.Err() == nil {
			log.Error("consumer stopped", "err", err)
		}
	}()

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:   authC,
		Car:    carC,
		Rental: rentalC,

		JWTSecret: cfg.JWTSecret,
		Denylist:  redisCache,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "err", err)
		}
	}()

	slog.Info("starting server", "port", port, "env", cfg.Env)
	if err := e.Start(":" + port); err != nil {
		log.Info("server stopped", "err", err)
	}
}

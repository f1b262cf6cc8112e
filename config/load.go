package config

import (
	"log/slog"
	"os"
	"strconv"
)

func Load() App {
	cfg := App{
		Port:              getenv("APP_PORT", "8080"),
		DatabaseURL:       must("DATABASE_URL"),
		JWTSecret:         getenv("JWT_SECRET", "local_dev_secret"),
		RedisAddr:         getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		KafkaBrokers:      getenv("KAFKA_BROKERS", "localhost:9092"),
		RentalEventsTopic: getenv("RENTAL_EVENTS_TOPIC", "rental_events"),
		ConsumerGroupID:   getenv("CONSUMER_GROUP_ID", "carrental-notifications"),
		CarsCacheTTLSec:   getint("CARS_CACHE_TTL_SECONDS", 60),
		OverdueSweepMin:   getint("OVERDUE_SWEEP_MINUTES", 15),
		Env:               getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("bad int env, using default", "key", k, "value", v)
		return def
	}
	return n
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}

package config

type App struct {
	Port              string `env:"APP_PORT" default:"8080"`
	DatabaseURL       string `env:"DATABASE_URL,required"`
	JWTSecret         string `env:"JWT_SECRET,required"`
	RedisAddr         string `env:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	KafkaBrokers      string `env:"KAFKA_BROKERS" default:"localhost:9092"`
	RentalEventsTopic string `env:"RENTAL_EVENTS_TOPIC" default:"rental_events"`
	ConsumerGroupID   string `env:"CONSUMER_GROUP_ID" default:"carrental-notifications"`
	CarsCacheTTLSec   int    `env:"CARS_CACHE_TTL_SECONDS" default:"60"`
	OverdueSweepMin   int    `env:"OVERDUE_SWEEP_MINUTES" default:"15"`
	Env               string `env:"APP_ENV" default:"dev"`
}

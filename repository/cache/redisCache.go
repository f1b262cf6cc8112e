package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashank1027/car-rental-system/model"
)

type RedisCache struct {
	client  *redis.Client
	carsTTL time.Duration
}

func New(addr, password string, carsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:  redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		carsTTL: carsTTL,
	}
}

func (c *RedisCache) GetCars(ctx context.Context) ([]model.Car, error) {
	data, err := c.client.Get(ctx, carsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var cars []model.Car
	if err := json.Unmarshal(data, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (c *RedisCache) SetCars(ctx context.Context, cars []model.Car) error {
	payload, err := json.Marshal(cars)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, carsKey(), payload, c.carsTTL).Err()
}

func (c *RedisCache) InvalidateCars(ctx context.Context) error {
	return c.client.Del(ctx, carsKey()).Err()
}

// DenyToken parks a token id until its expiry; a denylisted jti is a
// logged-out session.
func (c *RedisCache) DenyToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, denyKey(jti), "revoked", ttl).Err()
}

func (c *RedisCache) IsTokenDenied(ctx context.Context, jti string) (bool, error) {
	n, err := c.client.Exists(ctx, denyKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func carsKey() string {
	return "cache:cars"
}

func denyKey(jti string) string {
	return "deny:token:" + jti
}

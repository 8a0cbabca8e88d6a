package config

import (
	"context"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// OpenRedis connects to Redis and verifies the connection with a ping.
func OpenRedis(ctx context.Context) (*redis.Client, error) {
	redisDB, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		redisDB = 0
	}

	client := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	Logger.Info("redis connected")
	return client, nil
}

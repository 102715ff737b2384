package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/wolf6905/CCG3/src/core/config"
)

// ConnectRedis connects to Redis for the leaderboard cache. The cache is
// optional: when REDIS_ADDR is unset or the server is unreachable the
// application runs without it.
func ConnectRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, leaderboard cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Failed to connect to Redis, leaderboard cache disabled: %v", err)
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}

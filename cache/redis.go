package cache

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"

	"nearby-search-system/config"
)

var RedisClient *redis.Client

// InitRedis initializes the Redis client used for caching nearby results.
func InitRedis() {
	cfg := config.Cfg.Redis
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis successfully.")
}

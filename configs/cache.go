package configs

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func Redis() *redis.Client {
	return redisClient
}

// ConnectRedis opens the process-wide cache client. The cache is an
// optimization only, so a failed ping logs instead of aborting startup.
func ConnectRedis(cfg *Config) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("redis ping failed: %v (listing cache degraded)", err)
		return
	}
	log.Println("redis connected")
}

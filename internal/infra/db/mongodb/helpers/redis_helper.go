package helpers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

var (
	redisClients     = make(map[string]*redis.Client)
	redisClientMutex sync.Mutex
)

var RedisTimeout = 30 * time.Second

// RedisHelper returns a pooled client per connection url, connecting on
// first use.
func RedisHelper(connectionUrl string) (*redis.Client, error) {
	redisClientMutex.Lock()
	defer redisClientMutex.Unlock()

	if client, exists := redisClients[connectionUrl]; exists {
		return client, nil
	}

	opt, err := redis.ParseURL(connectionUrl)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opt.PoolSize = 50
	opt.MinIdleConns = 5
	opt.ConnMaxIdleTime = 200 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), RedisTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	redisClients[connectionUrl] = client

	log.WithField("addr", opt.Addr).Info("Connected to Redis")

	return client, nil
}

func DisconnectRedis() {
	redisClientMutex.Lock()
	defer redisClientMutex.Unlock()

	for url, client := range redisClients {
		if err := client.Close(); err != nil {
			log.WithError(err).WithField("url", url).Error("Error disconnecting from Redis")
		} else {
			log.WithField("url", url).Info("Disconnected from Redis")
		}
	}

	redisClients = make(map[string]*redis.Client)
}

// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"profast/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for authorization caching. It stays
// nil when redis is unreachable; the auth middleware then verifies every
// token directly against the identity provider.
var AuthCacheClient *redis.Client

// AuthCachePrefix namespaces verified-token keys.
const AuthCachePrefix = "auth:"

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis (Auth Cache): %w", err)
	}
	AuthCacheClient = client
	return nil
}

// GetAuthCacheClient returns the Redis client for authorization caching, or
// nil when the cache is not available.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

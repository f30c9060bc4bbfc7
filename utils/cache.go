package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"saathi/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated Redis client for auth-session caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for auth-session caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the auth-session cache client.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

func authSessionKey(userID string) string {
	return fmt.Sprintf("auth:%s", userID)
}

// StoreAuthSession caches the hash of an issued token against the user,
// so tokens can be revoked before their JWT expiry.
func StoreAuthSession(userID, tokenHash string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return GetAuthCacheClient().Set(ctx, authSessionKey(userID), tokenHash, ttl).Err()
}

// CheckAuthSession reports whether the presented token hash matches the
// cached session for the user.
func CheckAuthSession(userID, tokenHash string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	stored, err := GetAuthCacheClient().Get(ctx, authSessionKey(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored == tokenHash, nil
}

// RevokeAuthSession drops the cached session, invalidating the token.
func RevokeAuthSession(userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return GetAuthCacheClient().Del(ctx, authSessionKey(userID)).Err()
}

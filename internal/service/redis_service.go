package service

import (
	"context"
	"log"
	"pic-share-server/internal/config"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient 按配置建立 Redis 连接；未启用或不可用时返回 nil，
// 调用方据此降级为内存模式。
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Printf("⚠️ Redis 不可用，降级为内存模式: %v", err)
		return nil
	}

	log.Printf("✅ Redis 已连接: %s (db=%d)", cfg.Addr, cfg.DB)
	return client
}

// RedisKey 基于配置前缀拼接 Redis 键名。
func RedisKey(cfg config.RedisConfig, parts ...string) string {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "pic_share"
	}
	key := prefix
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

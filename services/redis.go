package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	appContext "github.com/alphabatem/common/context"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// RedisService keeps each blob under a prefixed redis string key.
type RedisService struct {
	appContext.DefaultService
	redis *redis.Client

	keyPrefix string
}

const DEFAULT_REDIS_KEY_PREFIX = "sdr:"

func (svc *RedisService) Id() string {
	return STORE_SVC
}

func (svc *RedisService) Configure(ctx *appContext.Context) error {
	svc.loadConfig()
	return svc.DefaultService.Configure(ctx)
}

func (svc *RedisService) loadConfig() {
	svc.initRedisClient()
}

func (svc *RedisService) Start() error {
	if svc.redis != nil {
		ctx := context.Background()
		_, err := svc.redis.Ping(ctx).Result()
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
	}
	log.WithField("prefix", svc.keyPrefix).Println("Redis store connected")
	return nil
}

func (svc *RedisService) Shutdown() {
	if svc.redis != nil {
		_ = svc.redis.Close()
	}
}

func (svc *RedisService) initRedisClient() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}

	svc.keyPrefix = os.Getenv("REDIS_KEY_PREFIX")
	if svc.keyPrefix == "" {
		svc.keyPrefix = DEFAULT_REDIS_KEY_PREFIX
	}

	svc.redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
}

// NewRedisStore wraps an existing client, outside the service container.
func NewRedisStore(client *redis.Client, keyPrefix string) *RedisService {
	return &RedisService{redis: client, keyPrefix: keyPrefix}
}

func (svc *RedisService) GetClient() *redis.Client {
	return svc.redis
}

func (svc *RedisService) key(key string) string {
	return svc.keyPrefix + key
}

func (svc *RedisService) Get(ctx context.Context, key string) (string, bool, error) {
	if svc.redis == nil {
		return "", false, fmt.Errorf("redis client not initialized")
	}

	result, err := svc.redis.Get(ctx, svc.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return result, true, nil
}

// Set stores the blob without expiry; progress must outlive any TTL.
func (svc *RedisService) Set(ctx context.Context, key, value string) error {
	if svc.redis == nil {
		return fmt.Errorf("redis client not initialized")
	}

	return svc.redis.Set(ctx, svc.key(key), value, 0).Err()
}

func (svc *RedisService) Delete(ctx context.Context, key string) error {
	if svc.redis == nil {
		return fmt.Errorf("redis client not initialized")
	}
	return svc.redis.Del(ctx, svc.key(key)).Err()
}

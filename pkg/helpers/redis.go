package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func RedisSetJSON(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, b, ttl).Err()
}

func RedisGetJSON[T any](ctx context.Context, rdb *redis.Client, key string, dest *T) (bool, error) {
	res, err := rdb.Get(ctx, key).Bytes()
	if errors.Is(redis.Nil, err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(res, dest); err != nil {
		return false, err
	}
	return true, nil
}

// CatalogVersion returns the current cache generation for a store's catalog.
// Listing cache keys embed the generation, so bumping it orphans every cached
// listing at once without scanning for keys.
func CatalogVersion(ctx context.Context, rdb *redis.Client, storeID string) int64 {
	n, err := rdb.Get(ctx, catalogVersionKey(storeID)).Int64()
	if err != nil {
		return 0
	}
	return n
}

// BumpCatalogVersion invalidates all cached listings for a store.
func BumpCatalogVersion(ctx context.Context, rdb *redis.Client, storeID string) {
	_ = rdb.Incr(ctx, catalogVersionKey(storeID)).Err()
}

// ListingCacheKey builds the redis key for one cached listing variant.
func ListingCacheKey(storeID string, version int64, variant string) string {
	return "catalog:" + storeID + ":v" + strconv.FormatInt(version, 10) + ":" + variant
}

func catalogVersionKey(storeID string) string {
	return "catalog:ver:" + storeID
}

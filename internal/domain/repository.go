package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// DishRepository supplies the raw dish records of the dataset, in source order
type DishRepository interface {
	LoadDishes(ctx context.Context) ([]DishRecord, error)
	// Source identifies the dataset (e.g. its file path) for cache keys and logs
	Source() string
}

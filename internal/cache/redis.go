package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shawn910604/taipei-day-trip/config"
	"github.com/shawn910604/taipei-day-trip/internal/domain"
)

// RedisCache keeps attraction pages and the MRT station list hot. Entries
// expire on a TTL; the attraction reference data is read-only so there is
// no invalidation path.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) GetAttractionPage(ctx context.Context, page int, keyword string) ([]domain.Attraction, error) {
	data, err := c.client.Get(ctx, attractionPageKey(page, keyword)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var attractions []domain.Attraction
	if err := json.Unmarshal(data, &attractions); err != nil {
		return nil, err
	}
	return attractions, nil
}

func (c *RedisCache) SetAttractionPage(ctx context.Context, page int, keyword string, attractions []domain.Attraction) error {
	payload, err := json.Marshal(attractions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, attractionPageKey(page, keyword), payload, c.ttl).Err()
}

func (c *RedisCache) GetMRTs(ctx context.Context) ([]string, error) {
	data, err := c.client.Get(ctx, mrtsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var mrts []string
	if err := json.Unmarshal(data, &mrts); err != nil {
		return nil, err
	}
	return mrts, nil
}

func (c *RedisCache) SetMRTs(ctx context.Context, mrts []string) error {
	payload, err := json.Marshal(mrts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, mrtsKey(), payload, c.ttl).Err()
}

func attractionPageKey(page int, keyword string) string {
	return fmt.Sprintf("cache:attractions:%d:%s", page, keyword)
}

func mrtsKey() string {
	return "cache:mrts"
}

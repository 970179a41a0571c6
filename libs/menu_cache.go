package libs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"table-order/models"
)

const menuCachePrefix = "menus:list:"

// RedisMenuCache stores serialized menu lists keyed by filter. Cache failures are logged
// and treated as misses.
type RedisMenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{client: client, ttl: ttl}
}

func (c *RedisMenuCache) Get(ctx context.Context, key string) ([]models.Menu, bool) {
	raw, err := c.client.Get(ctx, menuCachePrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("menu cache get %s: %v", key, err)
		}
		return nil, false
	}

	var menus []models.Menu
	if err := json.Unmarshal(raw, &menus); err != nil {
		log.Printf("menu cache decode %s: %v", key, err)
		return nil, false
	}
	return menus, true
}

func (c *RedisMenuCache) Set(ctx context.Context, key string, menus []models.Menu) {
	raw, err := json.Marshal(menus)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, menuCachePrefix+key, raw, c.ttl).Err(); err != nil {
		log.Printf("menu cache set %s: %v", key, err)
	}
}

func (c *RedisMenuCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, menuCachePrefix+"*", 100).Iterator()
	keys := []string{}
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("menu cache scan: %v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("menu cache invalidate: %v", err)
	}
}

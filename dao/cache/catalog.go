package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Shelf/config"
	"Shelf/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const catalogVersionKey = "shelf:catalog:version"

// CatalogStorage 缓存公开商品列表分页结果。
// 所有页面 key 都带版本号，写操作只需递增版本即可整体失效，旧 key 依赖过期回收。
// redis 为 nil 时所有方法退化为未命中。
type CatalogStorage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCatalogStorage(rds *redis.Client, conf *config.Config) *CatalogStorage {
	return &CatalogStorage{redis: rds, ttl: conf.Cache.PublicList()}
}

func (c *CatalogStorage) enabled() bool {
	return c != nil && c.redis != nil
}

// Version 当前缓存代数。读库之前取一次，Get/Set 都沿用这一代数：
// 读库期间发生的写操作会递增代数，回填的旧数据落在已废弃的 key 上，不会被读到。
// 缓存不可用时返回 false。
func (c *CatalogStorage) Version(ctx context.Context) (int64, bool) {
	if !c.enabled() {
		return 0, false
	}
	version, err := c.redis.Get(ctx, catalogVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.L.Warn("catalog cache version", zap.Error(err))
		return 0, false
	}
	return version, true
}

// Get 命中返回缓存内容
func (c *CatalogStorage) Get(ctx context.Context, version int64, path string, page int) ([]byte, bool) {
	if !c.enabled() {
		return nil, false
	}
	key := pageKey(version, path, page)
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.L.Warn("catalog cache get", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (c *CatalogStorage) Set(ctx context.Context, version int64, path string, page int, data []byte) {
	if !c.enabled() {
		return
	}
	key := pageKey(version, path, page)
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.L.Warn("catalog cache set", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate 递增版本号，使所有已缓存页失效
func (c *CatalogStorage) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.redis.Incr(ctx, catalogVersionKey).Err(); err != nil {
		log.L.Warn("catalog cache invalidate", zap.Error(err))
	}
}

func pageKey(version int64, path string, page int) string {
	return fmt.Sprintf("shelf:catalog:v%d:%s:page:%d", version, path, page)
}

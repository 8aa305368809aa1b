package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Shelf/config"
	"Shelf/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const settingsVersionKey = "shelf:settings:version"

// SettingStorage 以单个 JSON 缓存全部站点配置，NULL 值保留为 null。
// 与商品列表一样按代数分 key，写操作递增代数即失效。
type SettingStorage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSettingStorage(rds *redis.Client, conf *config.Config) *SettingStorage {
	return &SettingStorage{redis: rds, ttl: conf.Cache.Settings()}
}

func (s *SettingStorage) enabled() bool {
	return s != nil && s.redis != nil
}

// Version 读库前取一次，回填时沿用
func (s *SettingStorage) Version(ctx context.Context) (int64, bool) {
	if !s.enabled() {
		return 0, false
	}
	version, err := s.redis.Get(ctx, settingsVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.L.Warn("settings cache version", zap.Error(err))
		return 0, false
	}
	return version, true
}

func (s *SettingStorage) Get(ctx context.Context, version int64) (map[string]*string, bool) {
	if !s.enabled() {
		return nil, false
	}
	data, err := s.redis.Get(ctx, settingsKey(version)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.L.Warn("settings cache get", zap.Error(err))
		}
		return nil, false
	}
	values := make(map[string]*string)
	if err := json.Unmarshal(data, &values); err != nil {
		log.L.Warn("settings cache decode", zap.Error(err))
		return nil, false
	}
	return values, true
}

func (s *SettingStorage) Set(ctx context.Context, version int64, values map[string]*string) {
	if !s.enabled() {
		return
	}
	data, err := json.Marshal(values)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, settingsKey(version), data, s.ttl).Err(); err != nil {
		log.L.Warn("settings cache set", zap.Error(err))
	}
}

// Invalidate 递增代数，旧 blob 依赖过期回收
func (s *SettingStorage) Invalidate(ctx context.Context) {
	if !s.enabled() {
		return
	}
	if err := s.redis.Incr(ctx, settingsVersionKey).Err(); err != nil {
		log.L.Warn("settings cache invalidate", zap.Error(err))
	}
}

func settingsKey(version int64) string {
	return fmt.Sprintf("shelf:settings:v%d", version)
}

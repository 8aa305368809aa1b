package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"Shelf/dao"
	"Shelf/dao/cache"
	"Shelf/models"
	"Shelf/pkg/log"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SettingService struct {
	DB             *gorm.DB
	SiteSettingDAO *dao.SiteSettingDAO
	SettingCache   *cache.SettingStorage
}

var _ ISettingService = (*SettingService)(nil)

type ISettingService interface {
	Get(ctx context.Context, key, def string) (string, error)
	Set(ctx context.Context, key string, value *string, typ, group string) error
	SetMany(ctx context.Context, values map[string]any) error
	All(ctx context.Context) (map[string]*models.SiteSetting, error)
	Values(ctx context.Context) (map[string]*string, error)
}

// Get 仅在 key 不存在时返回 def，值为 NULL 时返回空串
func (s *SettingService) Get(ctx context.Context, key, def string) (string, error) {
	values, err := s.Values(ctx)
	if err != nil {
		return def, err
	}
	v, ok := values[key]
	if !ok {
		return def, nil
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

// Set 以 key 为准 upsert，覆盖 value/type/group
func (s *SettingService) Set(ctx context.Context, key string, value *string, typ, group string) error {
	key = strings.TrimSpace(key)
	ve := NewValidationError()
	checkSettingKey(ve, key)
	if err := ve.OrNil(); err != nil {
		return err
	}
	if err := s.SiteSettingDAO.Upsert(ctx, newSetting(key, value, typ, group)); err != nil {
		return err
	}
	s.SettingCache.Invalidate(ctx)
	return nil
}

// SetMany 逐个 upsert，type/group 使用默认值。整体在一个事务中，任一失败全部回滚
func (s *SettingService) SetMany(ctx context.Context, values map[string]any) error {
	trimmed := make(map[string]any, len(values))
	ve := NewValidationError()
	for raw, v := range values {
		k := strings.TrimSpace(raw)
		checkSettingKey(ve, k)
		if _, dup := trimmed[k]; dup && k != "" {
			ve.Add(k, "The key is given more than once.")
		}
		trimmed[k] = v
	}
	if err := ve.OrNil(); err != nil {
		return err
	}
	keys := make([]string, 0, len(trimmed))
	for k := range trimmed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		d := s.SiteSettingDAO.Tx(tx)
		for _, k := range keys {
			v, err := stringify(trimmed[k])
			if err != nil {
				return fmt.Errorf("setting %s: %w", k, err)
			}
			if err := d.Upsert(ctx, newSetting(k, v, "", "")); err != nil {
				return fmt.Errorf("setting %s: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.SettingCache.Invalidate(ctx)
	log.L.Info("settings updated", zap.Strings("keys", keys))
	return nil
}

// All 以 key 索引的全部配置，后台设置页使用
func (s *SettingService) All(ctx context.Context) (map[string]*models.SiteSetting, error) {
	rows, err := s.SiteSettingDAO.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*models.SiteSetting, len(rows))
	for _, r := range rows {
		out[r.Key] = r
	}
	return out, nil
}

// Values 读取全部 key/value，优先走缓存
func (s *SettingService) Values(ctx context.Context) (map[string]*string, error) {
	version, cacheable := s.SettingCache.Version(ctx)
	if cacheable {
		if values, ok := s.SettingCache.Get(ctx, version); ok {
			return values, nil
		}
	}
	rows, err := s.SiteSettingDAO.All(ctx)
	if err != nil {
		return nil, err
	}
	values := make(map[string]*string, len(rows))
	for _, r := range rows {
		values[r.Key] = r.Value
	}
	if cacheable {
		s.SettingCache.Set(ctx, version, values)
	}
	return values, nil
}

// checkSettingKey key 已去除首尾空白
func checkSettingKey(ve *ValidationError, key string) {
	switch {
	case key == "":
		ve.Add("key", "The key field is required.")
	case len(key) > 255:
		ve.Add(key, "The key may not be greater than 255 characters.")
	}
}

func newSetting(key string, value *string, typ, group string) *models.SiteSetting {
	if typ == "" {
		typ = models.SettingTypeText
	}
	if group == "" {
		group = models.SettingGroupMain
	}
	return &models.SiteSetting{Key: key, Value: value, Type: typ, Group: group}
}

// stringify 标量转文本：nil 为 NULL，布尔为 1/0，数字取最短十进制表示，其他按 JSON 编码
func stringify(v any) (*string, error) {
	var out string
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		out = val
	case bool:
		out = "0"
		if val {
			out = "1"
		}
	case float64:
		out = strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		out = strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		out = strconv.Itoa(val)
	case int64:
		out = strconv.FormatInt(val, 10)
	case json.Number:
		out = val.String()
	case fmt.Stringer:
		out = val.String()
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		out = string(b)
	}
	return &out, nil
}

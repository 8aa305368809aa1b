package service

import (
	"context"
	"encoding/json"
	"testing"

	"Shelf/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSettingService_Get(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	v, err := f.settings.Get(ctx, "missing_key", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", v)

	require.NoError(t, f.settings.Set(ctx, "site_name", strPtr("Shelf"), "", ""))
	v, err = f.settings.Get(ctx, "site_name", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "Shelf", v)

	require.NoError(t, f.settings.Set(ctx, "tagline", nil, "", ""))
	v, err = f.settings.Get(ctx, "tagline", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "", v, "a stored NULL is present, not absent")
}

func TestSettingService_Set_Upserts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	require.NoError(t, f.settings.Set(ctx, "site_name", strPtr("X"), "text", "general"))
	require.NoError(t, f.settings.Set(ctx, "site_name", strPtr("Y"), "textarea", "seo"))

	var rows []models.SiteSetting
	require.NoError(t, f.db.Where("`key` = ?", "site_name").Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "Y", *rows[0].Value)
	assert.Equal(t, "textarea", rows[0].Type)
	assert.Equal(t, "seo", rows[0].Group)

	assert.Error(t, f.settings.Set(ctx, " ", strPtr("v"), "", ""))
}

func TestSettingService_SetMany(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.settings.Set(ctx, "meta_title", strPtr("old"), "text", "seo"))

	err := f.settings.SetMany(ctx, map[string]any{
		"meta_title":   "new",
		"show_banner":  true,
		"hide_footer":  false,
		"items":        float64(12),
		"ratio":        0.25,
		"empty":        nil,
		"social_links": []any{"a", "b"},
	})
	require.NoError(t, err)

	all, err := f.settings.All(ctx)
	require.NoError(t, err)
	want := map[string]string{
		"meta_title":   "new",
		"show_banner":  "1",
		"hide_footer":  "0",
		"items":        "12",
		"ratio":        "0.25",
		"social_links": `["a","b"]`,
	}
	for k, v := range want {
		require.Contains(t, all, k)
		require.NotNil(t, all[k].Value, k)
		assert.Equal(t, v, *all[k].Value, k)
	}
	assert.Nil(t, all["empty"].Value)
	// 批量写入统一使用默认 type/group
	assert.Equal(t, models.SettingTypeText, all["meta_title"].Type)
	assert.Equal(t, models.SettingGroupMain, all["meta_title"].Group)
}

func TestSettingService_SetMany_IsAtomic(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	err := f.settings.SetMany(ctx, map[string]any{
		"description": "d",
		"site_name":   "Shelf",
		"zz_bad":      make(chan int),
	})
	require.Error(t, err)

	all, err := f.settings.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = f.settings.SetMany(ctx, map[string]any{"": "x", "ok": "y"})
	_, isValidation := IsValidation(err)
	assert.True(t, isValidation)
}

func TestSettingService_Cache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	f := newFixture(t, rds)

	require.NoError(t, f.settings.Set(ctx, "site_name", strPtr("A"), "", ""))
	v, err := f.settings.Get(ctx, "site_name", "")
	require.NoError(t, err)
	assert.Equal(t, "A", v)
	// Set 已递增过一次代数
	assert.True(t, mr.Exists("shelf:settings:v1"))

	// 直接改库不会被看到，直到下一次写入使缓存失效
	require.NoError(t, f.db.Model(&models.SiteSetting{}).Where("`key` = ?", "site_name").Update("value", "B").Error)
	v, _ = f.settings.Get(ctx, "site_name", "")
	assert.Equal(t, "A", v)

	require.NoError(t, f.settings.SetMany(ctx, map[string]any{"other": "x"}))
	assert.Equal(t, "2", mustGet(t, mr, "shelf:settings:version"))
	v, _ = f.settings.Get(ctx, "site_name", "")
	assert.Equal(t, "B", v)
}

func TestSettingService_SetMany_TrimsKeys(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.settings.Set(ctx, "site_name", strPtr("old"), "", ""))

	require.NoError(t, f.settings.SetMany(ctx, map[string]any{" site_name ": "new"}))

	var rows []models.SiteSetting
	require.NoError(t, f.db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "site_name", rows[0].Key)
	assert.Equal(t, "new", *rows[0].Value)

	err := f.settings.SetMany(ctx, map[string]any{"site_name": "a", " site_name": "b"})
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "site_name")
}

func TestSettingService_Values_WriteDuringFill(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	f := newFixture(t, rds)
	require.NoError(t, f.settings.Set(ctx, "site_name", strPtr("A"), "", ""))

	// 读库完成、回填缓存之前插入一次写操作
	fired := false
	require.NoError(t, f.db.Callback().Query().After("gorm:query").Register("test:write_after_settings_scan", func(db *gorm.DB) {
		if fired || db.Statement.Table != "site_settings" {
			return
		}
		if _, ok := db.Statement.Dest.(*[]*models.SiteSetting); !ok {
			return
		}
		fired = true
		require.NoError(t, f.settings.Set(ctx, "site_name", strPtr("B"), "", ""))
	}))

	v, err := f.settings.Get(ctx, "site_name", "")
	require.NoError(t, err)
	assert.Equal(t, "A", v)
	require.True(t, fired)

	v, err = f.settings.Get(ctx, "site_name", "")
	require.NoError(t, err)
	assert.Equal(t, "B", v)
}

func TestStringify(t *testing.T) {
	cases := []struct {
		in   any
		want *string
	}{
		{nil, nil},
		{"text", strPtr("text")},
		{true, strPtr("1")},
		{false, strPtr("0")},
		{float64(3), strPtr("3")},
		{1.5, strPtr("1.5")},
		{7, strPtr("7")},
		{json.Number("42"), strPtr("42")},
		{map[string]any{"a": 1}, strPtr(`{"a":1}`)},
	}
	for _, tc := range cases {
		got, err := stringify(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}

	_, err := stringify(func() {})
	assert.Error(t, err)
}

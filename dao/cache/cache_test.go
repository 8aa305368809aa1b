package cache

import (
	"context"
	"testing"

	"Shelf/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConf(t *testing.T) *config.Config {
	conf, err := config.Parse(nil)
	require.NoError(t, err)
	return conf
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	return mr, rds
}

func TestCatalogStorage_NilRedis(t *testing.T) {
	ctx := context.Background()
	c := NewCatalogStorage(nil, newConf(t))

	_, ok := c.Version(ctx)
	assert.False(t, ok)
	c.Set(ctx, 0, "/api/v1/products", 1, []byte("x"))
	c.Invalidate(ctx)
	_, ok = c.Get(ctx, 0, "/api/v1/products", 1)
	assert.False(t, ok)
}

func TestCatalogStorage_InvalidateBumpsVersion(t *testing.T) {
	ctx := context.Background()
	mr, rds := newRedis(t)
	c := NewCatalogStorage(rds, newConf(t))

	version, ok := c.Version(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(0), version)

	c.Set(ctx, version, "/api/v1/products", 2, []byte(`{"data":[]}`))
	data, ok := c.Get(ctx, version, "/api/v1/products", 2)
	require.True(t, ok)
	assert.JSONEq(t, `{"data":[]}`, string(data))
	assert.True(t, mr.Exists("shelf:catalog:v0:/api/v1/products:page:2"))

	_, ok = c.Get(ctx, version, "/api/v1/products", 1)
	assert.False(t, ok)

	c.Invalidate(ctx)
	next, ok := c.Version(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(1), next)
	_, ok = c.Get(ctx, next, "/api/v1/products", 2)
	assert.False(t, ok)
}

func TestCatalogStorage_FillAfterInvalidateStaysHidden(t *testing.T) {
	ctx := context.Background()
	_, rds := newRedis(t)
	c := NewCatalogStorage(rds, newConf(t))

	// 读库前取到的代数在回填前已被写操作废弃
	version, _ := c.Version(ctx)
	c.Invalidate(ctx)
	c.Set(ctx, version, "/api/v1/products", 1, []byte("stale"))

	current, _ := c.Version(ctx)
	_, ok := c.Get(ctx, current, "/api/v1/products", 1)
	assert.False(t, ok)
}

func TestCatalogStorage_RedisDownIsMiss(t *testing.T) {
	ctx := context.Background()
	mr, rds := newRedis(t)
	c := NewCatalogStorage(rds, newConf(t))
	mr.Close()

	_, ok := c.Version(ctx)
	assert.False(t, ok)
	c.Set(ctx, 0, "/api/v1/products", 1, []byte("x"))
	c.Invalidate(ctx)
	_, ok = c.Get(ctx, 0, "/api/v1/products", 1)
	assert.False(t, ok)
}

func TestSettingStorage(t *testing.T) {
	ctx := context.Background()
	mr, rds := newRedis(t)
	s := NewSettingStorage(rds, newConf(t))

	version, ok := s.Version(ctx)
	require.True(t, ok)
	_, ok = s.Get(ctx, version)
	assert.False(t, ok)

	title := "Shelf"
	s.Set(ctx, version, map[string]*string{"site_title": &title, "empty": nil})
	values, ok := s.Get(ctx, version)
	require.True(t, ok)
	assert.Equal(t, "Shelf", *values["site_title"])
	v, present := values["empty"]
	assert.True(t, present)
	assert.Nil(t, v)
	assert.True(t, mr.Exists("shelf:settings:v0"))

	s.Invalidate(ctx)
	next, _ := s.Version(ctx)
	assert.Equal(t, version+1, next)
	_, ok = s.Get(ctx, next)
	assert.False(t, ok)

	// 失效之后用旧代数回填，新代数下仍不可见
	s.Set(ctx, version, values)
	_, ok = s.Get(ctx, next)
	assert.False(t, ok)

	var disabled *SettingStorage
	disabled.Set(ctx, 0, values)
	_, ok = disabled.Get(ctx, 0)
	assert.False(t, ok)
	_, ok = disabled.Version(ctx)
	assert.False(t, ok)
}

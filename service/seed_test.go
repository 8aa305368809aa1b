package service

import (
	"context"
	"testing"

	"Shelf/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	seeder := &Seeder{Products: f.products, Tags: f.tags, Settings: f.settings}

	res, err := seeder.Run(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, &SeedResult{Tags: 10, Published: 24, Drafts: 6, Settings: 5}, res)

	stats, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(30), stats.TotalProducts)
	assert.Equal(t, int64(24), stats.PublishedProducts)

	var untagged int64
	require.NoError(t, f.db.Model(&models.Product{}).
		Where("id NOT IN (?)", f.db.Model(&models.ProductTag{}).Select("product_id")).
		Count(&untagged).Error)
	assert.Zero(t, untagged)

	name, err := f.settings.Get(ctx, "site_name", "")
	require.NoError(t, err)
	assert.Equal(t, "ShopeeDeals Pro", name)

	t.Run("second run conflicts", func(t *testing.T) {
		_, err := seeder.Run(ctx, 42)
		assert.Error(t, err)
	})
}

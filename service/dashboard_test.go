package service

import (
	"context"
	"testing"
	"time"

	"Shelf/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	f.createTag(t, "Sale")
	f.createTag(t, "Premium")

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	statuses := []string{
		models.ProductStatusPublished, models.ProductStatusPublished, models.ProductStatusPublished,
		models.ProductStatusDraft, models.ProductStatusDraft, models.ProductStatusArchived,
	}
	for i, status := range statuses {
		f.insertProduct(t, "item-"+string(rune('a'+i)), status, 0, base.Add(time.Duration(i)*time.Hour))
	}

	stats, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(6), stats.TotalProducts)
	assert.Equal(t, int64(3), stats.PublishedProducts)
	assert.Equal(t, int64(2), stats.DraftProducts)
	assert.Equal(t, int64(2), stats.TotalTags)
	require.Len(t, stats.RecentProducts, recentProductsLimit)
	assert.Equal(t, "item-f", stats.RecentProducts[0].Name)
	assert.Equal(t, "item-b", stats.RecentProducts[4].Name)
}

func TestDashboardService_Stats_Empty(t *testing.T) {
	f := newFixture(t, nil)

	stats, err := f.dashboard.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalProducts)
	assert.Empty(t, stats.RecentProducts)
}

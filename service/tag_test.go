package service

import (
	"context"
	"testing"

	"Shelf/models"
	"Shelf/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("derives slug and default color", func(t *testing.T) {
		f := newFixture(t, nil)

		tag, err := f.tags.Create(ctx, &types.TagRequest{Name: "Home & Garden"})

		require.NoError(t, err)
		assert.Equal(t, "home-garden", tag.Slug)
		assert.Equal(t, models.DefaultTagColor, tag.Color)
	})

	t.Run("accepts hex and named colors", func(t *testing.T) {
		f := newFixture(t, nil)
		for i, color := range []string{"#3b82f6", "#fff", "teal"} {
			tag, err := f.tags.Create(ctx, &types.TagRequest{Name: "Tag " + string(rune('A'+i)), Color: color})
			require.NoError(t, err)
			assert.Equal(t, color, tag.Color)
		}
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture(t, nil)
		f.createTag(t, "Sale")

		cases := map[string]struct {
			req   *types.TagRequest
			field string
		}{
			"missing name":   {&types.TagRequest{Name: " "}, "name"},
			"bad color":      {&types.TagRequest{Name: "Red", Color: "#12345"}, "color"},
			"duplicate slug": {&types.TagRequest{Name: "SALE"}, "slug"},
			"bad slug":       {&types.TagRequest{Name: "Deals", Slug: "Deals Now"}, "slug"},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := f.tags.Create(ctx, tc.req)
				ve, ok := IsValidation(err)
				require.True(t, ok, "got %v", err)
				assert.Contains(t, ve.Fields, tc.field)
			})
		}

		_, err := f.tags.Create(ctx, &types.TagRequest{})
		ve, ok := IsValidation(err)
		require.True(t, ok)
		assert.Equal(t, "Tag name is required.", ve.Fields["name"])
	})
}

func TestTagService_Update(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	tag := f.createTag(t, "Sale")
	f.createTag(t, "Premium")

	updated, err := f.tags.Update(ctx, tag.ID, &types.TagRequest{Name: "Flash Sale", Color: "#ef4444"})
	require.NoError(t, err)
	assert.Equal(t, "flash-sale", updated.Slug)
	assert.Equal(t, "#ef4444", updated.Color)

	_, err = f.tags.Update(ctx, tag.ID, &types.TagRequest{Name: "Flash Sale", Slug: "premium"})
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, msgSlugTaken, ve.Fields["slug"])

	_, err = f.tags.Update(ctx, 999, &types.TagRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestTagService_Update_RowDeletedConcurrently(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	tag := f.createTag(t, "Sale")
	fired := f.deleteBeforeUpdate(t, "tags", tag.ID)

	updated, err := f.tags.Update(ctx, tag.ID, &types.TagRequest{Name: "Flash Sale"})

	require.True(t, *fired)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrTagNotFound)

	var names []string
	require.NoError(t, f.db.Model(&models.Tag{}).Pluck("name", &names).Error)
	assert.NotContains(t, names, "Flash Sale")
}

func TestTagService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	tag := f.createTag(t, "Sale")
	req := productRequest("Wireless Mouse")
	req.Tags = []uint64{tag.ID}
	p := f.createProduct(t, req)

	require.NoError(t, f.tags.Delete(ctx, tag.ID))

	product, err := f.products.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, product.Tags)

	assert.ErrorIs(t, f.tags.Delete(ctx, tag.ID), ErrTagNotFound)
}

func TestTagService_Listing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	zeta := f.createTag(t, "Zeta")
	alpha := f.createTag(t, "Alpha")
	f.createTag(t, "Mid")

	req := productRequest("Wireless Mouse")
	req.Tags = []uint64{zeta.ID, alpha.ID}
	f.createProduct(t, req)
	req = productRequest("Keyboard")
	req.Tags = []uint64{zeta.ID}
	f.createProduct(t, req)

	all, err := f.tags.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, []string{all[0].Name, all[1].Name, all[2].Name})
	assert.Equal(t, []int64{1, 0, 2}, []int64{all[0].ProductsCount, all[1].ProductsCount, all[2].ProductsCount})

	page, err := f.tags.AdminList(ctx, 1, "/api/v1/admin/tags")
	require.NoError(t, err)
	assert.Equal(t, AdminTagsPerPage, page.Meta.PerPage)
	assert.Equal(t, int64(3), page.Meta.Total)
	assert.Equal(t, int64(2), page.Data[2].ProductsCount)

	detail, err := f.tags.Get(ctx, zeta.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Products, 2)
	assert.Equal(t, int64(2), detail.ProductsCount)

	_, err = f.tags.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrTagNotFound)
}

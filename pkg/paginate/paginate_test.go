package paginate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MiddlePage(t *testing.T) {
	items := []int{13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24}

	p := New(items, 30, 2, 12, "/api/v1/products")

	assert.Equal(t, 2, p.Meta.CurrentPage)
	assert.Equal(t, 3, p.Meta.LastPage)
	assert.Equal(t, int64(30), p.Meta.Total)
	require.NotNil(t, p.Meta.From)
	require.NotNil(t, p.Meta.To)
	assert.Equal(t, 13, *p.Meta.From)
	assert.Equal(t, 24, *p.Meta.To)

	assert.Equal(t, "/api/v1/products?page=1", p.Links.First)
	assert.Equal(t, "/api/v1/products?page=3", p.Links.Last)
	require.NotNil(t, p.Links.Prev)
	require.NotNil(t, p.Links.Next)
	assert.Equal(t, "/api/v1/products?page=1", *p.Links.Prev)
	assert.Equal(t, "/api/v1/products?page=3", *p.Links.Next)
}

func TestNew_Empty(t *testing.T) {
	p := New[int](nil, 0, 1, 12, "/p")

	assert.NotNil(t, p.Data)
	assert.Empty(t, p.Data)
	assert.Nil(t, p.Meta.From)
	assert.Nil(t, p.Meta.To)
	assert.Equal(t, 1, p.Meta.LastPage)
	assert.Nil(t, p.Links.Prev)
	assert.Nil(t, p.Links.Next)
}

func TestNew_PastLastPage(t *testing.T) {
	p := New([]int{}, 5, 4, 12, "/p")

	assert.Nil(t, p.Meta.From)
	assert.Nil(t, p.Links.Next)
	require.NotNil(t, p.Links.Prev)
	assert.Equal(t, "/p?page=1", *p.Links.Prev)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(0, 12))
	assert.Equal(t, 0, Offset(1, 12))
	assert.Equal(t, 24, Offset(3, 12))
	assert.Equal(t, (MaxPage-1)*12, Offset(math.MaxInt, 12))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 1, Normalize(-5))
	assert.Equal(t, 7, Normalize(7))
	assert.Equal(t, MaxPage, Normalize(math.MaxInt))
}

func TestMap(t *testing.T) {
	p := New([]int{1, 2}, 2, 1, 20, "/t")

	out := Map(p, func(i int) string { return string(rune('a' + i - 1)) })

	assert.Equal(t, []string{"a", "b"}, out.Data)
	assert.Equal(t, p.Meta, out.Meta)
	assert.Equal(t, p.Links, out.Links)
}

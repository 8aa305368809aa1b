package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Shelf/pkg/paginate"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashID_RoundTrip(t *testing.T) {
	h, err := NewHashID("shelf-test", 8)
	require.NoError(t, err)

	for _, id := range []uint64{1, 42, 987654321} {
		ref := h.Encode(id)
		assert.GreaterOrEqual(t, len(ref), 8)

		got, err := h.Decode(ref)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestHashID_DecodeRejects(t *testing.T) {
	h, err := NewHashID("shelf-test", 8)
	require.NoError(t, err)
	other, err := NewHashID("another-salt", 8)
	require.NoError(t, err)

	_, err = h.Decode("")
	assert.ErrorIs(t, err, ErrInvalidRef)

	_, err = h.Decode("!!!")
	assert.ErrorIs(t, err, ErrInvalidRef)

	_, err = h.Decode(other.Encode(42))
	assert.ErrorIs(t, err, ErrInvalidRef)
}

func TestQueryPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[string]int{
		"/":                          1,
		"/?page=3":                   3,
		"/?page=0":                   1,
		"/?page=-2":                  1,
		"/?page=abc":                 1,
		"/?page=9223372036854775807": paginate.MaxPage,
	}
	for target, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, target, nil)
		assert.Equal(t, want, QueryPage(c), target)
	}
}

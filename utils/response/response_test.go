package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPageLimit(t *testing.T) {
	t.Run("in-range values pass through", func(t *testing.T) {
		page, limit := ClampPageLimit(3, 20)
		assert.Equal(t, 3, page)
		assert.Equal(t, 20, limit)
	})

	t.Run("zero and negative values are clamped", func(t *testing.T) {
		page, limit := ClampPageLimit(0, 0)
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, limit)

		page, limit = ClampPageLimit(-5, -1)
		assert.Equal(t, 1, page)
		assert.Equal(t, 10, limit)
	})

	t.Run("oversized limit is capped", func(t *testing.T) {
		_, limit := ClampPageLimit(1, 5000)
		assert.Equal(t, 100, limit)
	})
}

func TestCalculatePaginationAgreesWithClamp(t *testing.T) {
	// The metadata and the query clamp must describe the same window
	meta := CalculatePagination(0, 0, 25)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 10, meta.PerPage)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestCalculatePaginationTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculatePagination(1, 10, 0).TotalPages)
	assert.Equal(t, 1, CalculatePagination(1, 10, 10).TotalPages)
	assert.Equal(t, 2, CalculatePagination(1, 10, 11).TotalPages)
}

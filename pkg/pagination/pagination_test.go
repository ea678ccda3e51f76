package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsOutOfRangeValues(t *testing.T) {
	params := &PaginationParams{Page: 0, PerPage: 500}
	params.Validate()

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.PerPage)
}

func TestOffset(t *testing.T) {
	params := &PaginationParams{Page: 3, PerPage: 15}
	assert.Equal(t, 30, params.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 15, 31)

	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestNewPaginationLastPage(t *testing.T) {
	p := NewPagination(3, 15, 31)

	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_Empty(t *testing.T) {
	p := Paginate(0, 1, 10)

	assert.Equal(t, 1, p.TotalPages)
	assert.True(t, p.InRange())
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
	assert.Equal(t, 0, p.Start)
	assert.Equal(t, 10, p.End)
}

func TestPaginate_TwentyFive(t *testing.T) {
	tests := []struct {
		page    int
		start   int
		hasNext bool
		hasPrev bool
	}{
		{page: 1, start: 0, hasNext: true, hasPrev: false},
		{page: 2, start: 10, hasNext: true, hasPrev: true},
		{page: 3, start: 20, hasNext: false, hasPrev: true},
	}

	for _, tt := range tests {
		p := Paginate(25, tt.page, 10)
		assert.Equal(t, 3, p.TotalPages, "page %d", tt.page)
		assert.Equal(t, tt.start, p.Start, "page %d", tt.page)
		assert.Equal(t, tt.start+10, p.End, "page %d", tt.page)
		assert.Equal(t, tt.hasNext, p.HasNext, "page %d", tt.page)
		assert.Equal(t, tt.hasPrev, p.HasPrev, "page %d", tt.page)
	}
}

func TestPaginate_ExactMultiple(t *testing.T) {
	assert.Equal(t, 2, Paginate(20, 1, 10).TotalPages)
	assert.Equal(t, 1, Paginate(10, 1, 10).TotalPages)
	assert.Equal(t, 2, Paginate(11, 1, 10).TotalPages)
}

func TestPaginate_OutOfRange(t *testing.T) {
	p := Paginate(5, 9, 10)

	assert.False(t, p.InRange())
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, p.Start, p.End)
}

func TestPaginate_HugePageDoesNotWrap(t *testing.T) {
	p := Paginate(25, 1844674407370955163, 10)

	assert.False(t, p.InRange())
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 0, p.Start)
	assert.Equal(t, 0, p.End)
}

func TestPaginate_ClampsPage(t *testing.T) {
	p := Paginate(25, 0, 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Start)
	assert.False(t, p.HasPrev)

	assert.Equal(t, DefaultPageSize, Paginate(25, 1, 0).End)
}

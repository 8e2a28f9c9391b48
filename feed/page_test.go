package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageOffset(t *testing.T) {
	for page := 1; page <= 50; page++ {
		assert.Equal(t, (page-1)*10, PageOffset(page, 10))
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		totalItems int
		want       int
	}{
		{0, 0},
		{1, 1},
		{9, 1},
		{10, 1},
		{11, 2},
		{95, 10},
		{100, 10},
		{101, 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PageCount(tt.totalItems, 10), "totalItems=%d", tt.totalItems)
	}
}

func TestPageCountMatchesCeil(t *testing.T) {
	for totalItems := 0; totalItems <= 500; totalItems++ {
		want := totalItems / 10
		if totalItems%10 != 0 {
			want++
		}
		assert.Equal(t, want, PageCount(totalItems, 10), "totalItems=%d", totalItems)
	}
}

package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	tests := []struct {
		name       string
		page       int
		limit      int
		wantFirst  int
		wantLen    int
		wantPage   int
		wantLimit  int
		wantTotalP int
	}{
		{name: "defaults", page: 0, limit: 0, wantFirst: 1, wantLen: 10, wantPage: 1, wantLimit: 10, wantTotalP: 3},
		{name: "second page", page: 2, limit: 10, wantFirst: 11, wantLen: 10, wantPage: 2, wantLimit: 10, wantTotalP: 3},
		{name: "last partial page", page: 3, limit: 10, wantFirst: 21, wantLen: 5, wantPage: 3, wantLimit: 10, wantTotalP: 3},
		{name: "beyond last page", page: 9, limit: 10, wantLen: 0, wantPage: 9, wantLimit: 10, wantTotalP: 3},
		{name: "huge page", page: 144115188075855873, limit: 100, wantLen: 0, wantPage: 144115188075855873, wantLimit: 100, wantTotalP: 1},
		{name: "max int page", page: math.MaxInt, limit: 10, wantLen: 0, wantPage: math.MaxInt, wantLimit: 10, wantTotalP: 3},
		{name: "limit capped", page: 1, limit: 1000, wantFirst: 1, wantLen: 25, wantPage: 1, wantLimit: 100, wantTotalP: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, p := paginate(items, tt.page, tt.limit)

			assert.Len(t, got, tt.wantLen)
			assert.NotNil(t, got)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, got[0])
			}
			assert.Equal(t, 25, p.Total)
			assert.Equal(t, tt.wantTotalP, p.TotalPages)
			assert.Equal(t, tt.wantPage, p.CurrentPage)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	got, p := paginate([]string{}, 1, 10)

	assert.Empty(t, got)
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.TotalPages)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		limit      int
		totalPages int
	}{
		{"empty", 0, 1, 20, 0},
		{"exact fit", 40, 1, 20, 2},
		{"partial last page", 41, 1, 20, 3},
		{"single item", 1, 1, 20, 1},
		{"limit one", 5, 3, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.total, info.Total)
			assert.Equal(t, tt.page, info.Page)
			assert.Equal(t, tt.limit, info.Limit)
			assert.Equal(t, tt.totalPages, info.TotalPages)
		})
	}
}

func TestNewPageInfoCeiling(t *testing.T) {
	for total := 0; total <= 50; total++ {
		for limit := 1; limit <= 7; limit++ {
			info := NewPageInfo(total, 1, limit)
			want := total / limit
			if total%limit != 0 {
				want++
			}
			assert.Equal(t, want, info.TotalPages, "total=%d limit=%d", total, limit)
		}
	}
}

func TestPrayerStatusValid(t *testing.T) {
	assert.True(t, StatusPraying.Valid())
	assert.True(t, StatusPartialAnswer.Valid())
	assert.True(t, StatusAnswered.Valid())
	assert.False(t, PrayerStatus("deleted").Valid())
	assert.False(t, PrayerStatus("").Valid())
}

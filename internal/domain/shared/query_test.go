package shared

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		number     int
		size       int
		want       Page
		wantOffset int
	}{
		{"defaults", 0, 0, Page{Number: 1, Size: DefaultPageSize}, 0},
		{"negative", -3, -1, Page{Number: 1, Size: DefaultPageSize}, 0},
		{"second page", 2, 5, Page{Number: 2, Size: 5}, 5},
		{"size capped", 1, 1000, Page{Number: 1, Size: MaxPageSize}, 0},
		{"number capped", math.MaxInt, MaxPageSize, Page{Number: MaxPageNumber, Size: MaxPageSize}, (MaxPageNumber - 1) * MaxPageSize},
		{"number just over the cap", MaxPageNumber + 1, 10, Page{Number: MaxPageNumber, Size: 10}, (MaxPageNumber - 1) * 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.number, tt.size)
			assert.Equal(t, tt.want, p)
			assert.Equal(t, tt.wantOffset, p.Offset())
			assert.GreaterOrEqual(t, p.Offset(), 0)
		})
	}
}

func TestSort_Clause(t *testing.T) {
	assert.Equal(t, "created_at ASC", Sort{Field: "created_at", Direction: SortAsc}.Clause())
	assert.Equal(t, "balance DESC", Sort{Field: "balance"}.Clause())
}

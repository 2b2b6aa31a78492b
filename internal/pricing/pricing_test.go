package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice int64
		quantity  int
		want      int64
	}{
		{"single ticket", 250000, 1, 250000},
		{"group", 250000, 4, 1000000},
		{"free tour", 0, 3, 0},
		{"zero quantity", 250000, 0, 0},
		{"large group does not overflow int32", 90000000, 1000, 90000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Total(tt.unitPrice, tt.quantity))
		})
	}
}

package components

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 5, 0},
		{2, 4, 0.5},
		{5, 5, 1},
		{7, 5, 1},
		{1, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewProgressBar(tt.done, tt.total, 20).Percent())
	}
}

func TestProgressViewWidth(t *testing.T) {
	v := NewProgressBar(2, 5, 30).View()
	plain := ansi.Strip(v)
	assert.Equal(t, 30, len(plain))
	assert.Contains(t, plain, " 2/5")
}

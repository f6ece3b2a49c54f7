package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundXP(t *testing.T) {
	tests := []struct {
		amount     uint64
		multiplier float32
		expected   uint64
	}{
		{40, 0, 40},
		{49, 0, 49},
		{50, 0, 50},
		{57, 0, 55},
		{999, 0, 995},
		{1013, 0, 1000},
		{1030, 0, 1025},
		{4999, 0, 4975},
		{5049, 0, 5000},
		{5070, 0, 5050},
		{100, 1.5, 150},
		{1000, 2.5, 2500},
		{30, -1, 30},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundXP(tt.amount, tt.multiplier), "amount %d multiplier %v", tt.amount, tt.multiplier)
	}
}

func TestKnowledgeXP(t *testing.T) {
	tables := newTestTables(t)

	assert.Equal(t, uint64(55), KnowledgeXP(tables, 57, 0))
	assert.Equal(t, uint64(2500), KnowledgeXP(tables, 1000, 3))
	assert.Equal(t, uint64(1000), KnowledgeXP(tables, 1013, 9))
}

package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
		mode  TrimMode
		want  []int
	}{
		{"last slot excluded", 540, 1020, LastSlotExcluded, []int{540, 570, 600, 630, 660, 690, 720, 750, 780, 810, 840, 870, 900, 930, 960, 990}},
		{"inclusive through close", 540, 660, InclusiveThroughClose, []int{540, 570, 600, 630, 660}},
		{"off-grid start rounds up", 545, 660, LastSlotExcluded, []int{570, 600, 630}},
		{"off-grid end", 540, 650, LastSlotExcluded, []int{540, 570, 600}},
		{"window shorter than slot", 540, 560, LastSlotExcluded, []int{}},
		{"empty window inclusive", 540, 540, InclusiveThroughClose, []int{540}},
		{"reversed", 600, 540, InclusiveThroughClose, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlots(tt.start, tt.end, tt.mode))
		})
	}
}

func TestGenerateSlots_LastSlotTrimming(t *testing.T) {
	slots := GenerateSlots(540, 1020, LastSlotExcluded)
	assert.Equal(t, 990, slots[len(slots)-1])

	slots = GenerateSlots(540, 1020, InclusiveThroughClose)
	assert.Equal(t, 1020, slots[len(slots)-1])
}

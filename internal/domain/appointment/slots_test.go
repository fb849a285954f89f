package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlots(t *testing.T) {
	slots := GenerateSlots(9*60, 10*60, SlotInterval)

	assert.Equal(t, []int{540, 555, 570, 585, 600}, slots)
}

func TestGenerateSlotsIncludesWindowEnd(t *testing.T) {
	slots := GenerateSlots(9*60, 20*60, SlotInterval)

	assert.Equal(t, 9*60, slots[0])
	assert.Equal(t, 20*60, slots[len(slots)-1])
	assert.Len(t, slots, 45)
}

func TestGenerateSlotsDegenerateInputs(t *testing.T) {
	assert.Nil(t, GenerateSlots(600, 540, SlotInterval))
	assert.Nil(t, GenerateSlots(540, 600, 0))
	assert.Equal(t, []int{540}, GenerateSlots(540, 540, SlotInterval))
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"09:00", 540, true},
		{"09:00:00", 540, true},
		{"20:45:00", 1245, true},
		{"24:00", 0, false},
		{"garbage", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.ok {
			assert.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got, tt.in)
		} else {
			assert.Error(t, err, tt.in)
		}
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00:00", FormatClock(540))
	assert.Equal(t, "17:15:00", FormatClock(17*60+15))
}

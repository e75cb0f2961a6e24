package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"students", ModeStudents},
		{" Student ", ModeStudents},
		{"s", ModeStudents},
		{"cart", ModeCart},
		{"SHOPPING", ModeCart},
		{"tasks", ModeTasks},
		{"t", ModeTasks},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseMode("books")
	assert.EqualError(t, err, "unknown mode: books")
}

func TestModeKeyRoundTrip(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.Key())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, PriorityLow, p)

	p, err = ParsePriority("HIGH")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	p, err = ParsePriority("med")
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, p)

	_, err = ParsePriority("urgent")
	assert.EqualError(t, err, "unknown priority: urgent")
}

func TestCartItemTotal(t *testing.T) {
	item := CartItem{Name: "Apple", Quantity: 3, Price: 2.0}
	assert.InDelta(t, 6.0, item.Total(), 1e-9)
}

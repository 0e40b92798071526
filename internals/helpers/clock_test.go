package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	for input, want := range map[string]int{
		"00:00": 0,
		"06:00": 6,
		"09:30": 9, // minutes are discarded
		"22:00": 22,
		"23:59": 23,
	} {
		got, err := ParseClock(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseClockRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "9", "9:00:00", "24:00", "12:60", "ab:cd", "12-30"} {
		_, err := ParseClock(input)
		assert.Error(t, err, input)
	}
}

func TestHourOf(t *testing.T) {
	assert.Equal(t, 14, HourOf("14:00"))
	assert.Equal(t, 14, HourOf("14:45"))
	assert.Equal(t, 0, HourOf("garbage"))
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "06:00", FormatHour(6))
	assert.Equal(t, "22:00", FormatHour(22))
	assert.Equal(t, "00:00", FormatHour(0))
}

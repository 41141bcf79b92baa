package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesToTimeString(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "12:00am"},
		{30, "12:30am"},
		{480, "8:00am"},
		{540, "9:00am"},
		{605, "10:05am"},
		{720, "12:00pm"},
		{780, "1:00pm"},
		{1020, "5:00pm"},
		{1439, "11:59pm"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, MinutesToTimeString(tt.minutes))
		})
	}
}

func TestTimeStringToMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"9:00am", 540},
		{"9:00 am", 540},
		{"9:00AM", 540},
		{"12:00pm", 720},
		{"12:30am", 30},
		{"12:00am", 0},
		{"1:00pm", 780},
		{"05:30pm", 1050},
		// формат проверяется только регуляркой
		{"13:00pm", 1500},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := TimeStringToMinutes(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringToMinutes_Invalid(t *testing.T) {
	for _, input := range []string{"", "9am", "9:0am", "09:00", "9:00 xm", "abc", "123:00pm", " 9:00am", "9:00am ", "\t9:00am\n"} {
		t.Run(input, func(t *testing.T) {
			_, err := TimeStringToMinutes(input)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestClockRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		got, err := TimeStringToMinutes(MinutesToTimeString(m))
		require.NoError(t, err)
		require.Equal(t, m, got, "round trip for %d", m)
	}
}

func TestParseClockTime(t *testing.T) {
	got, err := ParseClockTime("10:30am")
	require.NoError(t, err)
	assert.Equal(t, 630, got)

	_, err = ParseClockTime("13:00pm")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ParseClockTime("0:15am")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ParseClockTime("9:75am")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ParseClockTime("noon")
	assert.ErrorIs(t, err, ErrParse)

	// пробелы по краям допускаются только на входе API
	got, err = ParseClockTime("  9:00am ")
	require.NoError(t, err)
	assert.Equal(t, 540, got)
}

package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refDay = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC) // a Monday

func TestParseClock(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"8:30 AM", 8, 30},
		{"12:00 AM", 0, 0},  // midnight
		{"12:00 PM", 12, 0}, // noon
		{"12:05 PM", 12, 5},
		{"1:00 PM", 13, 0},
		{"11:59 PM", 23, 59},
	}
	for _, tc := range cases {
		hour, minute, err := ParseClock(tc.in)
		require.NoError(t, err, "input=%s", tc.in)
		assert.Equal(t, tc.hour, hour, "input=%s", tc.in)
		assert.Equal(t, tc.minute, minute, "input=%s", tc.in)
	}
}

func TestParseClock_Malformed(t *testing.T) {
	cases := []string{
		"",
		"8:30",      // missing meridiem
		"8.30 AM",   // wrong separator
		"8:30 am",   // lowercase meridiem
		"8:30AM",    // missing space
		"ab:cd AM",  // non-numeric
		"13:00 PM",  // hour out of 12-hour range
		"0:15 AM",   // hour below range
		"8:60 AM",   // minute out of range
		"noon",
	}
	for _, in := range cases {
		_, _, err := ParseClock(in)
		assert.Error(t, err, "input=%q", in)
	}
}

func TestParseTimeOfDay_AnchorsToReferenceDay(t *testing.T) {
	got := ParseTimeOfDay("8:30 AM", refDay.Add(14*time.Hour)) // ref time of day is irrelevant
	want := time.Date(2025, 6, 16, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, want, got)
}

func TestParseTimeOfDay_ZeroSeconds(t *testing.T) {
	got := ParseTimeOfDay("3:45 PM", refDay)
	assert.Equal(t, 0, got.Second())
	assert.Equal(t, 0, got.Nanosecond())
	assert.Equal(t, 15, got.Hour())
	assert.Equal(t, 45, got.Minute())
}

func TestParseTimeOfDay_MalformedFallsBackToNow(t *testing.T) {
	got := ParseTimeOfDay("garbage", refDay)
	assert.WithinDuration(t, time.Now(), got, 2*time.Second,
		"malformed input should degrade to the current moment, not error")
}

func TestFormatTimeOfDay(t *testing.T) {
	cases := []struct {
		hour, minute int
		want         string
	}{
		{0, 0, "12:00 AM"},
		{0, 5, "12:05 AM"},
		{8, 30, "8:30 AM"},
		{12, 0, "12:00 PM"},
		{13, 5, "1:05 PM"},
		{23, 59, "11:59 PM"},
	}
	for _, tc := range cases {
		in := time.Date(2025, 6, 16, tc.hour, tc.minute, 0, 0, time.UTC)
		assert.Equal(t, tc.want, FormatTimeOfDay(in), "hour=%d minute=%d", tc.hour, tc.minute)
	}
}

func TestTimeOfDay_RoundTrip(t *testing.T) {
	// format(parse(s)) == s for every valid wall-clock string.
	for hour := 1; hour <= 12; hour++ {
		for _, minute := range []int{0, 5, 30, 59} {
			for _, meridiem := range []string{"AM", "PM"} {
				s := fmt.Sprintf("%d:%02d %s", hour, minute, meridiem)
				parsed := ParseTimeOfDay(s, refDay)
				assert.Equal(t, s, FormatTimeOfDay(parsed))
			}
		}
	}
}

package timezone_test

import (
	"pms/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLocation(t *testing.T) {
	original := timezone.GetLocation()
	t.Cleanup(func() { require.NoError(t, timezone.SetLocation(original.String())) })

	require.NoError(t, timezone.SetLocation("Asia/Kolkata"))
	assert.Equal(t, "Asia/Kolkata", timezone.Now().Location().String())

	checkout := time.Date(2024, 6, 5, 5, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-05T11:00:00+05:30", timezone.Format(checkout, time.RFC3339))

	parsed, err := timezone.Parse("2006-01-02 15:04", "2024-06-01 14:00")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)))

	assert.Error(t, timezone.SetLocation("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Kolkata", timezone.GetLocation().String())
}

func TestParse_Invalid(t *testing.T) {
	_, err := timezone.Parse(time.RFC3339, "tomorrow")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	arrival := time.Date(2024, 6, 1, 14, 25, 10, 99, loc)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, loc), timezone.StartOfDay(arrival))
}

func TestCalendarDays(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)

	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{name: "four nights", from: time.Date(2024, 6, 1, 14, 0, 0, 0, loc), to: time.Date(2024, 6, 5, 11, 0, 0, 0, loc), expected: 4},
		{name: "same day", from: time.Date(2024, 6, 1, 9, 0, 0, 0, loc), to: time.Date(2024, 6, 1, 18, 0, 0, 0, loc), expected: 0},
		{name: "across month end", from: time.Date(2024, 2, 28, 12, 0, 0, 0, loc), to: time.Date(2024, 3, 1, 10, 0, 0, 0, loc), expected: 2},
		{
			name:     "departure in another zone is read in arrival zone",
			from:     time.Date(2024, 6, 1, 23, 0, 0, 0, loc),
			to:       time.Date(2024, 6, 2, 20, 0, 0, 0, time.UTC),
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timezone.CalendarDays(tt.from, tt.to))
		})
	}
}

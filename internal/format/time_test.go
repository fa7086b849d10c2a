package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var sample = time.Date(2024, time.January, 23, 15, 4, 5, 0, time.UTC)

func TestLayout(t *testing.T) {
	tests := []struct {
		name          string
		date, clock   string
		dateTime      string
		dateTimeShort string
		full          string
	}{
		{
			name:          "defaults",
			dateTime:      "Jan 23 15:04",
			dateTimeShort: "Jan 23 15:04",
			full:          "Jan 23 15:04:05",
		},
		{
			name:          "dd/mm/yyyy 24h",
			date:          "dd/mm/yyyy",
			clock:         "24h",
			dateTime:      "23/01/2024 15:04",
			dateTimeShort: "23/01 15:04",
			full:          "23/01/2024 15:04:05",
		},
		{
			name:          "mm/dd/yyyy 12h",
			date:          "mm/dd/yyyy",
			clock:         "12h",
			dateTime:      "01/23/2024 3:04 PM",
			dateTimeShort: "01/23 3:04 PM",
			full:          "01/23/2024 3:04:05 PM",
		},
		{
			name:          "iso",
			date:          "yyyy-mm-dd",
			dateTime:      "2024-01-23 15:04",
			dateTimeShort: "01-23 15:04",
			full:          "2024-01-23 15:04:05",
		},
		{
			name:          "custom layout drops year when short",
			date:          "Jan 02 2006",
			dateTime:      "Jan 23 2024 15:04",
			dateTimeShort: "Jan 23 15:04",
			full:          "Jan 23 2024 15:04:05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.date, tt.clock)
			require.Equal(t, tt.dateTime, l.DateTime(sample))
			require.Equal(t, tt.dateTimeShort, l.DateTimeShort(sample))
			require.Equal(t, tt.full, l.Full(sample))
		})
	}
}

func TestStripYear(t *testing.T) {
	require.Equal(t, "02/01", stripYear("02/01/2006"))
	require.Equal(t, "Jan 02", stripYear("2006"))
}

func TestCurrent_UsesConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VERBS_DISPLAY_DATE", "yyyy-mm-dd")
	t.Setenv("VERBS_DISPLAY_TIME", "24h")

	require.Equal(t, "2024-01-23 15:04", Current().DateTime(sample))
	require.Equal(t, "2024-01-23 15:04:05", Current().Full(sample))
}

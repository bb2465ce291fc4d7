package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nextstep/athlete-api/internal/domain"
)

func TestCalculatePaceZones_KnownThreshold(t *testing.T) {
	// 5:00 min/km threshold.
	zones, err := domain.CalculatePaceZones(5 * time.Minute)
	require.NoError(t, err)
	require.Len(t, zones, 5)

	type bounds struct{ min, max string }
	want := []bounds{
		{"6:27", "7:30"}, // Recovery
		{"5:42", "6:27"}, // Aerobic
		{"5:18", "5:39"}, // Tempo: 300s*1.13 must not truncate to 5:38
		{"4:57", "5:15"}, // Threshold
		{"4:15", "4:57"}, // VO2max
	}
	for i, zone := range zones {
		require.Equal(t, i+1, zone.ZoneNumber)
		require.Equal(t, want[i].min, zone.FormatMinPace(), "zone %d min", zone.ZoneNumber)
		require.Equal(t, want[i].max, zone.FormatMaxPace(), "zone %d max", zone.ZoneNumber)
	}
}

func TestCalculatePaceZones_NamesAndOrdering(t *testing.T) {
	zones, err := domain.CalculatePaceZones(4*time.Minute + 30*time.Second)
	require.NoError(t, err)

	wantNames := []string{"Recovery", "Aerobic", "Tempo", "Threshold", "VO2max"}
	for i, zone := range zones {
		require.Equal(t, wantNames[i], zone.Name)
		require.Less(t, zone.MinPerKm, zone.MaxPerKm, "zone %d", zone.ZoneNumber)
	}

	// Higher zone numbers are faster: each zone's slower bound must not be
	// slower than the previous zone's faster bound.
	for i := 1; i < len(zones); i++ {
		require.LessOrEqual(t, zones[i].MaxPerKm, zones[i-1].MinPerKm)
	}
}

func TestCalculatePaceZones_OutOfRange(t *testing.T) {
	for _, ltp := range []time.Duration{0, time.Minute + 59*time.Second, 10*time.Minute + time.Second, time.Hour} {
		_, err := domain.CalculatePaceZones(ltp)
		require.Error(t, err, "ltp=%s", ltp)
		require.True(t, domain.IsValidationError(err))
	}
}

func TestNewPaceZone_Invalid(t *testing.T) {
	cases := []struct {
		name       string
		zoneNumber int
		zoneName   string
		min, max   time.Duration
	}{
		{"zone number too low", 0, "Tempo", 5 * time.Minute, 6 * time.Minute},
		{"zone number too high", 7, "Tempo", 5 * time.Minute, 6 * time.Minute},
		{"empty name", 3, "", 5 * time.Minute, 6 * time.Minute},
		{"min too fast", 3, "Tempo", time.Minute, 6 * time.Minute},
		{"max too slow", 3, "Tempo", 5 * time.Minute, 16 * time.Minute},
		{"min not faster than max", 3, "Tempo", 6 * time.Minute, 6 * time.Minute},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewPaceZone(tc.zoneNumber, tc.zoneName, tc.min, tc.max)
			require.Error(t, err)
			require.True(t, domain.IsValidationError(err))
		})
	}
}

func TestFormatPace(t *testing.T) {
	require.Equal(t, "5:30", domain.FormatPace(5*time.Minute+30*time.Second))
	require.Equal(t, "5:05", domain.FormatPace(5*time.Minute+5*time.Second))
	require.Equal(t, "10:00", domain.FormatPace(10*time.Minute))
	require.Equal(t, "0:45", domain.FormatPace(45*time.Second))
	// Sub-second remainders are truncated, not rounded.
	require.Equal(t, "5:39", domain.FormatPace(5*time.Minute+39*time.Second+400*time.Millisecond))
}

func TestParsePace(t *testing.T) {
	pace, err := domain.ParsePace("5:30")
	require.NoError(t, err)
	require.Equal(t, 5*time.Minute+30*time.Second, pace)

	pace, err = domain.ParsePace("04:05")
	require.NoError(t, err)
	require.Equal(t, 4*time.Minute+5*time.Second, pace)

	for _, bad := range []string{"", "530", "5:3:0", "5:60", "-5:30", "5:-1", "abc", "5:xx"} {
		_, err := domain.ParsePace(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestParsePace_RoundTripsWithFormatPace(t *testing.T) {
	for _, raw := range []string{"2:00", "4:05", "5:30", "9:59"} {
		pace, err := domain.ParsePace(raw)
		require.NoError(t, err)
		// ParsePace accepts zero-padded minutes but FormatPace never pads
		// them, so compare against the canonical form.
		require.Equal(t, raw, domain.FormatPace(pace))
	}
}

package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// PaceZone is a bounded running-pace intensity range. Pace is time per
// kilometre, so the semantics are inverted relative to heart rate: the
// "min" pace is the faster bound (smaller duration) and the "max" pace is
// the slower bound (larger duration).
type PaceZone struct {
	ZoneNumber int
	Name       string
	MinPerKm   time.Duration // faster bound
	MaxPerKm   time.Duration // slower bound
}

// NewPaceZone is the general constructor for manually specified zones,
// mirroring NewHeartRateZone. Each bound must fall within 2:00-15:00
// min/km expressed in seconds [120,900]; min must be strictly faster
// than max.
func NewPaceZone(zoneNumber int, name string, minPerKm, maxPerKm time.Duration) (PaceZone, error) {
	if zoneNumber < 1 || zoneNumber > 6 {
		return PaceZone{}, newValidationError("zone number must be between 1 and 6, got %d", zoneNumber)
	}
	if strings.TrimSpace(name) == "" {
		return PaceZone{}, newValidationError("zone name cannot be empty")
	}
	if minPerKm < 120*time.Second || minPerKm > 900*time.Second {
		return PaceZone{}, newValidationError("min pace must be between 2:00 and 15:00 min/km, got %s", FormatPace(minPerKm))
	}
	if maxPerKm < 120*time.Second || maxPerKm > 900*time.Second {
		return PaceZone{}, newValidationError("max pace must be between 2:00 and 15:00 min/km, got %s", FormatPace(maxPerKm))
	}
	if minPerKm >= maxPerKm {
		return PaceZone{}, newValidationError("min pace (%s) must be faster than max pace (%s)", FormatPace(minPerKm), FormatPace(maxPerKm))
	}

	return PaceZone{
		ZoneNumber: zoneNumber,
		Name:       strings.TrimSpace(name),
		MinPerKm:   minPerKm,
		MaxPerKm:   maxPerKm,
	}, nil
}

// CalculatePaceZones derives the five training zones from a lactate
// threshold pace. Zone bounds are percentages of the threshold pace in
// seconds; a higher percentage means a slower pace.
func CalculatePaceZones(lactateThresholdPace time.Duration) ([]PaceZone, error) {
	if lactateThresholdPace < 2*time.Minute || lactateThresholdPace > 10*time.Minute {
		return nil, newValidationError("lactate threshold pace must be between 2:00 and 10:00 min/km, got %s", FormatPace(lactateThresholdPace))
	}

	ltpSeconds := lactateThresholdPace.Seconds()
	pct := func(factor float64) time.Duration {
		// Round to whole milliseconds so that bounds like 300s x 1.13,
		// which land a hair under an integer in float arithmetic, do not
		// truncate a full second away.
		return time.Duration(math.Round(ltpSeconds*factor*1000)) * time.Millisecond
	}

	return []PaceZone{
		{ZoneNumber: 1, Name: "Recovery", MinPerKm: pct(1.29), MaxPerKm: pct(1.50)},
		{ZoneNumber: 2, Name: "Aerobic", MinPerKm: pct(1.14), MaxPerKm: pct(1.29)},
		{ZoneNumber: 3, Name: "Tempo", MinPerKm: pct(1.06), MaxPerKm: pct(1.13)},
		{ZoneNumber: 4, Name: "Threshold", MinPerKm: pct(0.99), MaxPerKm: pct(1.05)},
		{ZoneNumber: 5, Name: "VO2max", MinPerKm: pct(0.85), MaxPerKm: pct(0.99)},
	}, nil
}

// FormatMinPace renders the faster bound as "m:ss".
func (z PaceZone) FormatMinPace() string { return FormatPace(z.MinPerKm) }

// FormatMaxPace renders the slower bound as "m:ss".
func (z PaceZone) FormatMaxPace() string { return FormatPace(z.MaxPerKm) }

// FormatPace renders a pace as "m:ss": total whole minutes unpadded,
// remainder seconds zero-padded to two digits (330s -> "5:30").
func FormatPace(pace time.Duration) string {
	totalSeconds := int(pace / time.Second)
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// ParsePace parses a "mm:ss" pace string into a duration.
func ParsePace(pace string) (time.Duration, error) {
	parts := strings.Split(pace, ":")
	if len(parts) != 2 {
		return 0, newValidationError("invalid pace format: %q, expected format mm:ss", pace)
	}

	minutes, errMin := strconv.Atoi(parts[0])
	seconds, errSec := strconv.Atoi(parts[1])
	if errMin != nil || errSec != nil || minutes < 0 || seconds < 0 || seconds > 59 {
		return 0, newValidationError("invalid pace format: %q, expected format mm:ss", pace)
	}

	return time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, nil
}

package domain

import "strings"

// HeartRateZone is a bounded heart-rate intensity range with an ordinal
// number and a descriptive name. Bounds are in beats per minute.
type HeartRateZone struct {
	ZoneNumber int
	Name       string
	MinBpm     int
	MaxBpm     int
}

// NewHeartRateZone is the general constructor for manually specified zones
// (the v1 API accepted these directly). It enforces the manual-input sanity
// bounds; zones derived from a lactate threshold bypass it.
func NewHeartRateZone(zoneNumber int, name string, minBpm, maxBpm int) (HeartRateZone, error) {
	if zoneNumber < 1 || zoneNumber > 6 {
		return HeartRateZone{}, newValidationError("zone number must be between 1 and 6, got %d", zoneNumber)
	}
	if strings.TrimSpace(name) == "" {
		return HeartRateZone{}, newValidationError("zone name cannot be empty")
	}
	if minBpm < 50 || minBpm > 250 {
		return HeartRateZone{}, newValidationError("min BPM must be between 50 and 250, got %d", minBpm)
	}
	if maxBpm < 50 || maxBpm > 250 {
		return HeartRateZone{}, newValidationError("max BPM must be between 50 and 250, got %d", maxBpm)
	}
	if minBpm >= maxBpm {
		return HeartRateZone{}, newValidationError("min BPM (%d) must be less than max BPM (%d)", minBpm, maxBpm)
	}

	return HeartRateZone{
		ZoneNumber: zoneNumber,
		Name:       strings.TrimSpace(name),
		MinBpm:     minBpm,
		MaxBpm:     maxBpm,
	}, nil
}

// CalculateHeartRateZones derives the five training zones from a lactate
// threshold heart rate. Bounds are percentages of the threshold, truncated
// to whole bpm, except zone 4's upper bound (the threshold itself) and
// zone 5's lower bound (threshold + 1). The computed values are returned
// as-is and are not re-validated against the manual-input bounds.
func CalculateHeartRateZones(lactateThresholdHR int) ([]HeartRateZone, error) {
	if lactateThresholdHR < 80 || lactateThresholdHR > 220 {
		return nil, newValidationError("lactate threshold must be between 80 and 220 bpm, got %d", lactateThresholdHR)
	}

	pct := func(factor float64) int {
		return int(float64(lactateThresholdHR) * factor)
	}

	return []HeartRateZone{
		{ZoneNumber: 1, Name: "Recovery", MinBpm: pct(0.50), MaxBpm: pct(0.80)},
		{ZoneNumber: 2, Name: "Aerobic", MinBpm: pct(0.81), MaxBpm: pct(0.89)},
		{ZoneNumber: 3, Name: "Tempo", MinBpm: pct(0.90), MaxBpm: pct(0.95)},
		{ZoneNumber: 4, Name: "Threshold", MinBpm: pct(0.96), MaxBpm: lactateThresholdHR},
		{ZoneNumber: 5, Name: "VO2max", MinBpm: lactateThresholdHR + 1, MaxBpm: pct(1.15)},
	}, nil
}

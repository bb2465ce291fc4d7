package domain

import "time"

// PhysiologicalData holds the athlete's measured thresholds. All fields are
// optional; training zones are derived from the lactate-threshold fields on
// every read and are never stored.
type PhysiologicalData struct {
	MaxHeartRate         *int           // bpm, [100,250]
	LactateThresholdHR   *int           // bpm, [80,220]
	LactateThresholdPace *time.Duration // min/km, [2:00,10:00]
}

// NewPhysiologicalData validates each field against its physiological range
// and the cross-field invariant that the lactate threshold cannot exceed the
// max heart rate when both are set.
func NewPhysiologicalData(maxHeartRate, lactateThresholdHR *int, lactateThresholdPace *time.Duration) (PhysiologicalData, error) {
	if maxHeartRate != nil && (*maxHeartRate < 100 || *maxHeartRate > 250) {
		return PhysiologicalData{}, newValidationError("max heart rate must be between 100 and 250 bpm, got %d", *maxHeartRate)
	}
	if lactateThresholdHR != nil && (*lactateThresholdHR < 80 || *lactateThresholdHR > 220) {
		return PhysiologicalData{}, newValidationError("lactate threshold must be between 80 and 220 bpm, got %d", *lactateThresholdHR)
	}
	if lactateThresholdPace != nil && (*lactateThresholdPace < 2*time.Minute || *lactateThresholdPace > 10*time.Minute) {
		return PhysiologicalData{}, newValidationError("lactate threshold pace must be between 2:00 and 10:00 min/km, got %s", FormatPace(*lactateThresholdPace))
	}
	if maxHeartRate != nil && lactateThresholdHR != nil && *lactateThresholdHR > *maxHeartRate {
		return PhysiologicalData{}, newValidationError("lactate threshold (%d) cannot exceed max heart rate (%d)", *lactateThresholdHR, *maxHeartRate)
	}

	return PhysiologicalData{
		MaxHeartRate:         maxHeartRate,
		LactateThresholdHR:   lactateThresholdHR,
		LactateThresholdPace: lactateThresholdPace,
	}, nil
}

// EmptyPhysiologicalData returns the zero value used when an athlete profile
// is first created: no measurements, no derivable zones.
func EmptyPhysiologicalData() PhysiologicalData {
	return PhysiologicalData{}
}

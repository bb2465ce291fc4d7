package domain

// WorkoutType identifies the kind of session planned for a training day.
type WorkoutType string

const (
	WorkoutRest      WorkoutType = "Rest"
	WorkoutCrossHIIT WorkoutType = "CrossHIIT"
	WorkoutRecovery  WorkoutType = "Recovery"
	WorkoutEasyRun   WorkoutType = "EasyRun"
	WorkoutSpeed     WorkoutType = "Speed"
	WorkoutTempoRun  WorkoutType = "TempoRun"
	WorkoutLongRun   WorkoutType = "LongRun"
)

// qualityWorkouts are the high-intensity session types that require a
// recovery day before the next quality session.
var qualityWorkouts = map[WorkoutType]bool{
	WorkoutCrossHIIT: true,
	WorkoutSpeed:     true,
	WorkoutTempoRun:  true,
	WorkoutLongRun:   true,
}

// ParseWorkoutType converts a string (e.g. from an API request or a stored
// document) into a WorkoutType, rejecting unknown values.
func ParseWorkoutType(s string) (WorkoutType, error) {
	switch WorkoutType(s) {
	case WorkoutRest, WorkoutCrossHIIT, WorkoutRecovery, WorkoutEasyRun,
		WorkoutSpeed, WorkoutTempoRun, WorkoutLongRun:
		return WorkoutType(s), nil
	}
	return "", newValidationError("unknown workout type: %q", s)
}

// IsQuality reports whether the workout is a quality (high-intensity) session.
// Classification is a pure function of the value, not stored state.
func (w WorkoutType) IsQuality() bool {
	return qualityWorkouts[w]
}

// IsEasy reports whether the workout allows recovery (anything not quality).
func (w WorkoutType) IsEasy() bool {
	return !w.IsQuality()
}

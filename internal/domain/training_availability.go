package domain

import "time"

// TrainingAvailability is the athlete's weekly workout schedule: one
// WorkoutType per day, Monday through Sunday. It is an immutable value
// object; updates construct a new value via NewTrainingAvailability.
type TrainingAvailability struct {
	Monday    WorkoutType
	Tuesday   WorkoutType
	Wednesday WorkoutType
	Thursday  WorkoutType
	Friday    WorkoutType
	Saturday  WorkoutType
	Sunday    WorkoutType
}

// NewTrainingAvailability validates that no two circularly adjacent days
// (including the Sunday -> Monday wrap) both hold quality workouts.
func NewTrainingAvailability(monday, tuesday, wednesday, thursday, friday, saturday, sunday WorkoutType) (TrainingAvailability, error) {
	availability := TrainingAvailability{
		Monday:    monday,
		Tuesday:   tuesday,
		Wednesday: wednesday,
		Thursday:  thursday,
		Friday:    friday,
		Saturday:  saturday,
		Sunday:    sunday,
	}

	if err := availability.validateNoConsecutiveQualityWorkouts(); err != nil {
		return TrainingAvailability{}, err
	}

	return availability, nil
}

// DefaultTrainingAvailability returns an all-Rest week, which is trivially
// valid and used when an athlete profile is first created.
func DefaultTrainingAvailability() TrainingAvailability {
	return TrainingAvailability{
		Monday:    WorkoutRest,
		Tuesday:   WorkoutRest,
		Wednesday: WorkoutRest,
		Thursday:  WorkoutRest,
		Friday:    WorkoutRest,
		Saturday:  WorkoutRest,
		Sunday:    WorkoutRest,
	}
}

// WorkoutForDay returns the workout planned for the given weekday.
func (a TrainingAvailability) WorkoutForDay(day time.Weekday) WorkoutType {
	switch day {
	case time.Monday:
		return a.Monday
	case time.Tuesday:
		return a.Tuesday
	case time.Wednesday:
		return a.Wednesday
	case time.Thursday:
		return a.Thursday
	case time.Friday:
		return a.Friday
	case time.Saturday:
		return a.Saturday
	default:
		return a.Sunday
	}
}

// validateNoConsecutiveQualityWorkouts scans the week in day order starting
// Monday and reports the first adjacent pair of quality workouts found. The
// scan is circular: Sunday is adjacent to Monday.
func (a TrainingAvailability) validateNoConsecutiveQualityWorkouts() error {
	days := []struct {
		day     time.Weekday
		workout WorkoutType
	}{
		{time.Monday, a.Monday},
		{time.Tuesday, a.Tuesday},
		{time.Wednesday, a.Wednesday},
		{time.Thursday, a.Thursday},
		{time.Friday, a.Friday},
		{time.Saturday, a.Saturday},
		{time.Sunday, a.Sunday},
	}

	for i := range days {
		current := days[i]
		next := days[(i+1)%len(days)] // wraps Sunday -> Monday

		if current.workout.IsQuality() && next.workout.IsQuality() {
			return newValidationError(
				"cannot have quality workouts on consecutive days: %s (%s) and %s (%s)",
				current.day, current.workout, next.day, next.workout)
		}
	}

	return nil
}

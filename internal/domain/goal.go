package domain

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a race the athlete is training toward. Goals are owned exclusively
// by the Athlete aggregate, which enforces the at-most-one-primary invariant
// across the collection; a Goal never changes its own primary flag.
type Goal struct {
	ID         uuid.UUID
	RaceDate   time.Time // date component only
	TargetTime time.Duration
	Distance   GoalDistance
	IsPrimary  bool
}

// newGoal creates a goal with a fresh identifier. Only the aggregate calls
// this; it decides the primary flag based on the state of the collection.
func newGoal(raceDate time.Time, targetTime time.Duration, distance GoalDistance, isPrimary bool) Goal {
	return Goal{
		ID:         uuid.New(),
		RaceDate:   truncateToDay(raceDate),
		TargetTime: targetTime,
		Distance:   distance,
		IsPrimary:  isPrimary,
	}
}

package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Athlete is the aggregate root of the profile. It owns every sub-entity and
// enforces the cross-entity invariants: the at-most-one-primary rule over the
// goal collection and the duplicate-zone-number rule for manually supplied
// zones. Sub-objects are immutable values replaced wholesale on update; state
// is unexported so all mutation flows through aggregate methods.
//
// The system is single-tenant today (one athlete), but the type keeps a real
// identity so nothing here has to change if that ever stops being true.
type Athlete struct {
	id                   primitive.ObjectID
	personalInfo         PersonalInfo
	physiologicalData    PhysiologicalData
	trainingAccess       TrainingAccess
	trainingAvailability TrainingAvailability
	photoObjectKey       string
	goals                []Goal

	// Manually supplied zones, kept for the v1 API. The current model derives
	// zones from physiological data; see HeartRateZones / PaceZones.
	manualHeartRateZones []HeartRateZone
	manualPaceZones      []PaceZone

	createdAt time.Time
	updatedAt time.Time
}

// NewAthlete creates a profile with validated personal info and default
// (empty) sub-objects. "now" feeds the birth-date validation and the
// creation timestamp.
func NewAthlete(name string, birthDate, now time.Time) (*Athlete, error) {
	personalInfo, err := NewPersonalInfo(name, birthDate, now)
	if err != nil {
		return nil, err
	}

	return &Athlete{
		id:                   primitive.NewObjectID(),
		personalInfo:         personalInfo,
		physiologicalData:    EmptyPhysiologicalData(),
		trainingAccess:       DefaultTrainingAccess(),
		trainingAvailability: DefaultTrainingAvailability(),
		createdAt:            now.UTC(),
		updatedAt:            now.UTC(),
	}, nil
}

// AthleteState is a full snapshot of an aggregate, used by the persistence
// layer to store and rehydrate athletes without exposing setters.
type AthleteState struct {
	ID                   primitive.ObjectID
	PersonalInfo         PersonalInfo
	PhysiologicalData    PhysiologicalData
	TrainingAccess       TrainingAccess
	TrainingAvailability TrainingAvailability
	PhotoObjectKey       string
	Goals                []Goal
	ManualHeartRateZones []HeartRateZone
	ManualPaceZones      []PaceZone
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// RehydrateAthlete reconstructs an aggregate from persisted state. The state
// is assumed to have been validated when it was first written, so no
// constructors run here.
func RehydrateAthlete(state AthleteState) *Athlete {
	return &Athlete{
		id:                   state.ID,
		personalInfo:         state.PersonalInfo,
		physiologicalData:    state.PhysiologicalData,
		trainingAccess:       state.TrainingAccess,
		trainingAvailability: state.TrainingAvailability,
		photoObjectKey:       state.PhotoObjectKey,
		goals:                append([]Goal(nil), state.Goals...),
		manualHeartRateZones: append([]HeartRateZone(nil), state.ManualHeartRateZones...),
		manualPaceZones:      append([]PaceZone(nil), state.ManualPaceZones...),
		createdAt:            state.CreatedAt,
		updatedAt:            state.UpdatedAt,
	}
}

// State returns a snapshot for persistence.
func (a *Athlete) State() AthleteState {
	return AthleteState{
		ID:                   a.id,
		PersonalInfo:         a.personalInfo,
		PhysiologicalData:    a.physiologicalData,
		TrainingAccess:       a.trainingAccess,
		TrainingAvailability: a.trainingAvailability,
		PhotoObjectKey:       a.photoObjectKey,
		Goals:                a.Goals(),
		ManualHeartRateZones: a.ManualHeartRateZones(),
		ManualPaceZones:      a.ManualPaceZones(),
		CreatedAt:            a.createdAt,
		UpdatedAt:            a.updatedAt,
	}
}

// --- Read accessors ---

func (a *Athlete) ID() primitive.ObjectID                     { return a.id }
func (a *Athlete) PersonalInfo() PersonalInfo                 { return a.personalInfo }
func (a *Athlete) PhysiologicalData() PhysiologicalData       { return a.physiologicalData }
func (a *Athlete) TrainingAccess() TrainingAccess             { return a.trainingAccess }
func (a *Athlete) TrainingAvailability() TrainingAvailability { return a.trainingAvailability }
func (a *Athlete) PhotoObjectKey() string                     { return a.photoObjectKey }
func (a *Athlete) CreatedAt() time.Time                       { return a.createdAt }
func (a *Athlete) UpdatedAt() time.Time                       { return a.updatedAt }

// Goals returns a copy of the goal collection in insertion order.
func (a *Athlete) Goals() []Goal {
	return append([]Goal(nil), a.goals...)
}

// HeartRateZones returns the five training zones derived from the lactate
// threshold heart rate, recomputed on every call. Empty when the threshold
// is unset. Never persisted.
func (a *Athlete) HeartRateZones() []HeartRateZone {
	if a.physiologicalData.LactateThresholdHR == nil {
		return nil
	}
	// The stored threshold passed range validation, so this cannot fail.
	zones, _ := CalculateHeartRateZones(*a.physiologicalData.LactateThresholdHR)
	return zones
}

// PaceZones returns the five training zones derived from the lactate
// threshold pace, recomputed on every call. Empty when the threshold is
// unset. Never persisted.
func (a *Athlete) PaceZones() []PaceZone {
	if a.physiologicalData.LactateThresholdPace == nil {
		return nil
	}
	zones, _ := CalculatePaceZones(*a.physiologicalData.LactateThresholdPace)
	return zones
}

// ManualHeartRateZones returns a copy of the manually supplied zones (v1
// compatibility surface), sorted by zone number.
func (a *Athlete) ManualHeartRateZones() []HeartRateZone {
	return append([]HeartRateZone(nil), a.manualHeartRateZones...)
}

// ManualPaceZones returns a copy of the manually supplied pace zones.
func (a *Athlete) ManualPaceZones() []PaceZone {
	return append([]PaceZone(nil), a.manualPaceZones...)
}

// --- Mutations ---
// Each mutation validates its input by constructing a fresh value object and
// swaps it in whole. A failed construction leaves the aggregate unchanged.

// UpdatePersonalInfo replaces the athlete's name and birth date.
func (a *Athlete) UpdatePersonalInfo(name string, birthDate, now time.Time) error {
	personalInfo, err := NewPersonalInfo(name, birthDate, now)
	if err != nil {
		return err
	}
	a.personalInfo = personalInfo
	return nil
}

// UpdatePhysiologicalData replaces the measured thresholds. Derived zones
// change implicitly since they are recomputed from this value on read.
func (a *Athlete) UpdatePhysiologicalData(maxHeartRate, lactateThresholdHR *int, lactateThresholdPace *time.Duration) error {
	data, err := NewPhysiologicalData(maxHeartRate, lactateThresholdHR, lactateThresholdPace)
	if err != nil {
		return err
	}
	a.physiologicalData = data
	return nil
}

// UpdateTrainingAccess replaces the facility-access flags.
func (a *Athlete) UpdateTrainingAccess(hasTrackAccess bool) {
	a.trainingAccess = NewTrainingAccess(hasTrackAccess)
}

// UpdateTrainingAvailability replaces the weekly schedule after validating
// the no-consecutive-quality-workouts constraint.
func (a *Athlete) UpdateTrainingAvailability(monday, tuesday, wednesday, thursday, friday, saturday, sunday WorkoutType) error {
	availability, err := NewTrainingAvailability(monday, tuesday, wednesday, thursday, friday, saturday, sunday)
	if err != nil {
		return err
	}
	a.trainingAvailability = availability
	return nil
}

// SetPhotoObjectKey records the storage key of the uploaded profile photo.
// An empty key clears the photo.
func (a *Athlete) SetPhotoObjectKey(objectKey string) {
	a.photoObjectKey = objectKey
}

// AddGoal appends a new goal. The first goal ever added becomes primary
// automatically; later goals are added as non-primary.
func (a *Athlete) AddGoal(raceDate time.Time, targetTime time.Duration, distance GoalDistance) Goal {
	goal := newGoal(raceDate, targetTime, distance, len(a.goals) == 0)
	a.goals = append(a.goals, goal)
	if goal.IsPrimary {
		a.markPrimary(goal.ID)
	}
	return goal
}

// UpdateGoal replaces the race date, target time and distance of an existing
// goal. The primary flag is untouched.
func (a *Athlete) UpdateGoal(goalID uuid.UUID, raceDate time.Time, targetTime time.Duration, distance GoalDistance) error {
	for i := range a.goals {
		if a.goals[i].ID == goalID {
			a.goals[i].RaceDate = truncateToDay(raceDate)
			a.goals[i].TargetTime = targetTime
			a.goals[i].Distance = distance
			return nil
		}
	}
	return ErrGoalNotFound
}

// DeleteGoal removes a goal. Deleting the primary goal is refused while
// other goals remain; the caller must reassign primary first. Deleting the
// sole remaining goal always succeeds.
func (a *Athlete) DeleteGoal(goalID uuid.UUID) error {
	index := -1
	for i := range a.goals {
		if a.goals[i].ID == goalID {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrGoalNotFound
	}

	if a.goals[index].IsPrimary && len(a.goals) > 1 {
		return ErrPrimaryGoalConflict
	}

	a.goals = append(a.goals[:index], a.goals[index+1:]...)
	return nil
}

// SetPrimaryGoal marks the given goal as primary and demotes every other
// goal, leaving exactly one primary.
func (a *Athlete) SetPrimaryGoal(goalID uuid.UUID) error {
	found := false
	for i := range a.goals {
		if a.goals[i].ID == goalID {
			found = true
			break
		}
	}
	if !found {
		return ErrGoalNotFound
	}

	a.markPrimary(goalID)
	return nil
}

// markPrimary is the single place the primary flag is assigned: the goal
// with the given ID becomes primary, all others are demoted.
func (a *Athlete) markPrimary(goalID uuid.UUID) {
	for i := range a.goals {
		a.goals[i].IsPrimary = a.goals[i].ID == goalID
	}
}

// SetHeartRateZones replaces the manually supplied heart-rate zones (v1
// compatibility). Zone numbers must be unique; the zones are stored sorted
// by zone number.
func (a *Athlete) SetHeartRateZones(zones []HeartRateZone) error {
	numbers := make([]int, len(zones))
	for i, z := range zones {
		numbers[i] = z.ZoneNumber
	}
	if err := validateUniqueZoneNumbers(numbers); err != nil {
		return err
	}

	sorted := append([]HeartRateZone(nil), zones...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ZoneNumber < sorted[j].ZoneNumber })
	a.manualHeartRateZones = sorted
	return nil
}

// SetPaceZones replaces the manually supplied pace zones (v1 compatibility).
func (a *Athlete) SetPaceZones(zones []PaceZone) error {
	numbers := make([]int, len(zones))
	for i, z := range zones {
		numbers[i] = z.ZoneNumber
	}
	if err := validateUniqueZoneNumbers(numbers); err != nil {
		return err
	}

	sorted := append([]PaceZone(nil), zones...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ZoneNumber < sorted[j].ZoneNumber })
	a.manualPaceZones = sorted
	return nil
}

// ClearHeartRateZones removes all manually supplied heart-rate zones.
func (a *Athlete) ClearHeartRateZones() {
	a.manualHeartRateZones = nil
}

// ClearPaceZones removes all manually supplied pace zones.
func (a *Athlete) ClearPaceZones() {
	a.manualPaceZones = nil
}

func validateUniqueZoneNumbers(numbers []int) error {
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if seen[n] {
			return newValidationError("duplicate zone number: %d", n)
		}
		seen[n] = true
	}
	return nil
}

package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"nextstep/athlete-api/internal/domain"
)

var testNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func newTestAthlete(t *testing.T) *domain.Athlete {
	t.Helper()
	athlete, err := domain.NewAthlete("Alex Runner", time.Date(1990, time.March, 12, 0, 0, 0, 0, time.UTC), testNow)
	require.NoError(t, err)
	return athlete
}

func intPtr(i int) *int                          { return &i }
func durationPtr(d time.Duration) *time.Duration { return &d }

func mustDistance(t *testing.T, distanceType domain.DistanceType) domain.GoalDistance {
	t.Helper()
	distance, err := domain.NewGoalDistance(distanceType, nil)
	require.NoError(t, err)
	return distance
}

func TestNewAthlete_Defaults(t *testing.T) {
	athlete := newTestAthlete(t)

	require.False(t, athlete.ID().IsZero())
	require.Equal(t, "Alex Runner", athlete.PersonalInfo().Name)
	require.Equal(t, domain.EmptyPhysiologicalData(), athlete.PhysiologicalData())
	require.False(t, athlete.TrainingAccess().HasTrackAccess)
	require.Equal(t, domain.DefaultTrainingAvailability(), athlete.TrainingAvailability())
	require.Empty(t, athlete.Goals())
	require.Nil(t, athlete.HeartRateZones())
	require.Nil(t, athlete.PaceZones())
	require.Equal(t, testNow, athlete.CreatedAt())
}

func TestNewAthlete_InvalidPersonalInfo(t *testing.T) {
	_, err := domain.NewAthlete("  ", time.Date(1990, time.March, 12, 0, 0, 0, 0, time.UTC), testNow)
	require.Error(t, err)
	require.True(t, domain.IsValidationError(err))

	_, err = domain.NewAthlete("Alex", testNow.AddDate(0, 0, 1), testNow)
	require.Error(t, err)
	require.True(t, domain.IsValidationError(err))
}

func TestAthlete_DerivedZonesFollowPhysiologicalData(t *testing.T) {
	athlete := newTestAthlete(t)

	err := athlete.UpdatePhysiologicalData(intPtr(190), intPtr(170), durationPtr(5*time.Minute))
	require.NoError(t, err)

	hrZones := athlete.HeartRateZones()
	require.Len(t, hrZones, 5)
	require.Equal(t, 170, hrZones[3].MaxBpm)

	paceZones := athlete.PaceZones()
	require.Len(t, paceZones, 5)
	require.Equal(t, "5:39", paceZones[2].FormatMaxPace())

	// Change the threshold and the zones follow without any explicit
	// recalculation call.
	err = athlete.UpdatePhysiologicalData(intPtr(190), intPtr(160), durationPtr(5*time.Minute))
	require.NoError(t, err)
	require.Equal(t, 160, athlete.HeartRateZones()[3].MaxBpm)

	// Clear the thresholds and the zones disappear.
	err = athlete.UpdatePhysiologicalData(intPtr(190), nil, nil)
	require.NoError(t, err)
	require.Nil(t, athlete.HeartRateZones())
	require.Nil(t, athlete.PaceZones())
}

func TestAthlete_UpdatePhysiologicalData_RejectsThresholdAboveMax(t *testing.T) {
	athlete := newTestAthlete(t)

	err := athlete.UpdatePhysiologicalData(intPtr(170), intPtr(180), nil)
	require.Error(t, err)
	require.True(t, domain.IsValidationError(err))
	// Failed update leaves the aggregate unchanged.
	require.Equal(t, domain.EmptyPhysiologicalData(), athlete.PhysiologicalData())
}

func TestAthlete_UpdateTrainingAvailability_RejectsInvalidWeek(t *testing.T) {
	athlete := newTestAthlete(t)

	err := athlete.UpdateTrainingAvailability(
		domain.WorkoutSpeed, domain.WorkoutTempoRun, domain.WorkoutRest,
		domain.WorkoutRest, domain.WorkoutRest, domain.WorkoutRest, domain.WorkoutRest)
	require.Error(t, err)
	require.Equal(t, domain.DefaultTrainingAvailability(), athlete.TrainingAvailability())

	err = athlete.UpdateTrainingAvailability(
		domain.WorkoutSpeed, domain.WorkoutRecovery, domain.WorkoutTempoRun,
		domain.WorkoutEasyRun, domain.WorkoutLongRun, domain.WorkoutRecovery, domain.WorkoutRest)
	require.NoError(t, err)
	require.Equal(t, domain.WorkoutSpeed, athlete.TrainingAvailability().Monday)
}

func TestAthlete_FirstGoalBecomesPrimary(t *testing.T) {
	athlete := newTestAthlete(t)
	raceDate := time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC)

	first := athlete.AddGoal(raceDate, 100*time.Minute, mustDistance(t, domain.DistanceHalfMarathon))
	require.True(t, first.IsPrimary)

	second := athlete.AddGoal(raceDate.AddDate(0, 1, 0), 45*time.Minute, mustDistance(t, domain.Distance10K))
	require.False(t, second.IsPrimary)

	goals := athlete.Goals()
	require.Len(t, goals, 2)
	require.True(t, goals[0].IsPrimary)
	require.False(t, goals[1].IsPrimary)
}

func TestAthlete_SetPrimaryGoal_ExactlyOnePrimary(t *testing.T) {
	athlete := newTestAthlete(t)
	raceDate := time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC)

	first := athlete.AddGoal(raceDate, 100*time.Minute, mustDistance(t, domain.DistanceHalfMarathon))
	second := athlete.AddGoal(raceDate, 45*time.Minute, mustDistance(t, domain.Distance10K))
	third := athlete.AddGoal(raceDate, 20*time.Minute, mustDistance(t, domain.Distance5K))
	require.False(t, second.IsPrimary)

	require.NoError(t, athlete.SetPrimaryGoal(third.ID))

	primaryCount := 0
	for _, goal := range athlete.Goals() {
		if goal.IsPrimary {
			primaryCount++
			require.Equal(t, third.ID, goal.ID)
		}
	}
	require.Equal(t, 1, primaryCount)

	// Re-promoting the former primary demotes the current one.
	require.NoError(t, athlete.SetPrimaryGoal(first.ID))
	for _, goal := range athlete.Goals() {
		require.Equal(t, goal.ID == first.ID, goal.IsPrimary)
	}
}

func TestAthlete_SetPrimaryGoal_UnknownID(t *testing.T) {
	athlete := newTestAthlete(t)
	err := athlete.SetPrimaryGoal(uuid.New())
	require.ErrorIs(t, err, domain.ErrGoalNotFound)
}

func TestAthlete_UpdateGoal(t *testing.T) {
	athlete := newTestAthlete(t)
	raceDate := time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC)
	goal := athlete.AddGoal(raceDate, 100*time.Minute, mustDistance(t, domain.DistanceHalfMarathon))

	newDate := time.Date(2025, time.November, 2, 14, 0, 0, 0, time.UTC)
	err := athlete.UpdateGoal(goal.ID, newDate, 95*time.Minute, mustDistance(t, domain.DistanceMarathon))
	require.NoError(t, err)

	updated := athlete.Goals()[0]
	// Race date keeps only the calendar date.
	require.Equal(t, time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC), updated.RaceDate)
	require.Equal(t, 95*time.Minute, updated.TargetTime)
	require.Equal(t, domain.DistanceMarathon, updated.Distance.Type)
	// The primary flag survives the update.
	require.True(t, updated.IsPrimary)

	err = athlete.UpdateGoal(uuid.New(), newDate, 95*time.Minute, mustDistance(t, domain.DistanceMarathon))
	require.ErrorIs(t, err, domain.ErrGoalNotFound)
}

func TestAthlete_DeleteGoal(t *testing.T) {
	athlete := newTestAthlete(t)
	raceDate := time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC)

	first := athlete.AddGoal(raceDate, 100*time.Minute, mustDistance(t, domain.DistanceHalfMarathon))
	second := athlete.AddGoal(raceDate, 45*time.Minute, mustDistance(t, domain.Distance10K))

	// Primary goal cannot be deleted while another goal exists.
	err := athlete.DeleteGoal(first.ID)
	require.ErrorIs(t, err, domain.ErrPrimaryGoalConflict)
	require.Len(t, athlete.Goals(), 2)

	// Reassign primary, then the old primary goes away cleanly.
	require.NoError(t, athlete.SetPrimaryGoal(second.ID))
	require.NoError(t, athlete.DeleteGoal(first.ID))
	require.Len(t, athlete.Goals(), 1)
	require.True(t, athlete.Goals()[0].IsPrimary)

	// The sole remaining goal is deletable even though it is primary.
	require.NoError(t, athlete.DeleteGoal(second.ID))
	require.Empty(t, athlete.Goals())

	err = athlete.DeleteGoal(second.ID)
	require.ErrorIs(t, err, domain.ErrGoalNotFound)
}

func TestAthlete_GoalAddedAfterDeletingAllBecomesPrimary(t *testing.T) {
	athlete := newTestAthlete(t)
	raceDate := time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC)

	goal := athlete.AddGoal(raceDate, 45*time.Minute, mustDistance(t, domain.Distance10K))
	require.NoError(t, athlete.DeleteGoal(goal.ID))

	next := athlete.AddGoal(raceDate, 20*time.Minute, mustDistance(t, domain.Distance5K))
	require.True(t, next.IsPrimary)
}

func TestAthlete_ManualZones(t *testing.T) {
	athlete := newTestAthlete(t)

	z2, err := domain.NewHeartRateZone(2, "Aerobic", 120, 140)
	require.NoError(t, err)
	z1, err := domain.NewHeartRateZone(1, "Recovery", 90, 119)
	require.NoError(t, err)

	require.NoError(t, athlete.SetHeartRateZones([]domain.HeartRateZone{z2, z1}))

	// Stored sorted by zone number regardless of input order.
	zones := athlete.ManualHeartRateZones()
	require.Len(t, zones, 2)
	require.Equal(t, 1, zones[0].ZoneNumber)
	require.Equal(t, 2, zones[1].ZoneNumber)

	// Duplicate numbers are rejected and the previous set is kept.
	dup, err := domain.NewHeartRateZone(1, "Other", 95, 118)
	require.NoError(t, err)
	err = athlete.SetHeartRateZones([]domain.HeartRateZone{z1, dup})
	require.Error(t, err)
	require.True(t, domain.IsValidationError(err))
	require.Len(t, athlete.ManualHeartRateZones(), 2)

	athlete.ClearHeartRateZones()
	require.Empty(t, athlete.ManualHeartRateZones())
}

func TestAthlete_StateRoundTrip(t *testing.T) {
	athlete := newTestAthlete(t)
	require.NoError(t, athlete.UpdatePhysiologicalData(intPtr(190), intPtr(170), durationPtr(5*time.Minute)))
	require.NoError(t, athlete.UpdateTrainingAvailability(
		domain.WorkoutSpeed, domain.WorkoutRecovery, domain.WorkoutTempoRun,
		domain.WorkoutEasyRun, domain.WorkoutLongRun, domain.WorkoutRecovery, domain.WorkoutRest))
	athlete.UpdateTrainingAccess(true)
	athlete.SetPhotoObjectKey("athletes/abc/photo-1.jpg")
	goal := athlete.AddGoal(time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC), 45*time.Minute, mustDistance(t, domain.Distance10K))

	rehydrated := domain.RehydrateAthlete(athlete.State())

	require.Equal(t, athlete.ID(), rehydrated.ID())
	require.Equal(t, athlete.PersonalInfo(), rehydrated.PersonalInfo())
	require.Equal(t, athlete.PhysiologicalData(), rehydrated.PhysiologicalData())
	require.Equal(t, athlete.TrainingAvailability(), rehydrated.TrainingAvailability())
	require.Equal(t, athlete.TrainingAccess(), rehydrated.TrainingAccess())
	require.Equal(t, athlete.PhotoObjectKey(), rehydrated.PhotoObjectKey())
	require.Equal(t, athlete.Goals(), rehydrated.Goals())

	// Derived zones come back because the thresholds came back.
	require.Len(t, rehydrated.HeartRateZones(), 5)

	// The rehydrated aggregate enforces invariants like the original.
	err := rehydrated.DeleteGoal(goal.ID)
	require.NoError(t, err)
}

func TestAthlete_GoalsReturnsCopy(t *testing.T) {
	athlete := newTestAthlete(t)
	athlete.AddGoal(time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC), 45*time.Minute, mustDistance(t, domain.Distance10K))

	goals := athlete.Goals()
	goals[0].IsPrimary = false

	require.True(t, athlete.Goals()[0].IsPrimary)
}

package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nextstep/athlete-api/internal/domain"
)

func intPtr(i int) *int                          { return &i }
func durationPtr(d time.Duration) *time.Duration { return &d }

func buildAthlete(t *testing.T) *domain.Athlete {
	t.Helper()
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

	athlete, err := domain.NewAthlete("Alex Runner", time.Date(1990, time.March, 12, 0, 0, 0, 0, time.UTC), now)
	require.NoError(t, err)

	require.NoError(t, athlete.UpdatePhysiologicalData(intPtr(190), intPtr(170), durationPtr(5*time.Minute)))
	require.NoError(t, athlete.UpdateTrainingAvailability(
		domain.WorkoutSpeed, domain.WorkoutRecovery, domain.WorkoutTempoRun,
		domain.WorkoutEasyRun, domain.WorkoutLongRun, domain.WorkoutRecovery, domain.WorkoutRest))
	athlete.UpdateTrainingAccess(true)
	athlete.SetPhotoObjectKey("athletes/" + athlete.ID().Hex() + "/photo-1.jpg")

	distance, err := domain.NewGoalDistance(domain.DistanceHalfMarathon, nil)
	require.NoError(t, err)
	athlete.AddGoal(time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC), time.Hour+39*time.Minute+30*time.Second, distance)

	km := 15.5
	custom, err := domain.NewGoalDistance(domain.DistanceCustom, &km)
	require.NoError(t, err)
	athlete.AddGoal(time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC), 45*time.Minute, custom)

	hrZone, err := domain.NewHeartRateZone(1, "Recovery", 90, 119)
	require.NoError(t, err)
	require.NoError(t, athlete.SetHeartRateZones([]domain.HeartRateZone{hrZone}))

	paceZone, err := domain.NewPaceZone(3, "Tempo", 5*time.Minute+18*time.Second, 5*time.Minute+39*time.Second)
	require.NoError(t, err)
	require.NoError(t, athlete.SetPaceZones([]domain.PaceZone{paceZone}))

	return athlete
}

func TestDocumentMappingRoundTrip(t *testing.T) {
	athlete := buildAthlete(t)

	doc := toDocument(athlete)
	restored, err := toDomain(doc)
	require.NoError(t, err)

	require.Equal(t, athlete.State(), restored.State())

	// Durations travel as whole seconds.
	require.Equal(t, int64(300), *doc.PhysiologicalData.LactateThresholdPaceSecs)
	require.Equal(t, int64(5970), doc.Goals[0].TargetTimeSeconds)
	require.Equal(t, int64(318), doc.ManualPaceZones[0].MinPaceSeconds)

	// Goal IDs travel as uuid strings.
	require.Equal(t, athlete.Goals()[0].ID.String(), doc.Goals[0].ID)

	// Derived zones are not part of the document but come back on the
	// rehydrated aggregate because the thresholds do.
	require.Len(t, restored.HeartRateZones(), 5)
}

func TestDocumentMapping_EmptyProfile(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	athlete, err := domain.NewAthlete("Alex Runner", time.Date(1990, time.March, 12, 0, 0, 0, 0, time.UTC), now)
	require.NoError(t, err)

	doc := toDocument(athlete)
	require.Nil(t, doc.PhysiologicalData.MaxHeartRate)
	require.Nil(t, doc.PhysiologicalData.LactateThresholdPaceSecs)
	require.Empty(t, doc.Goals)
	require.Empty(t, doc.PhotoObjectKey)

	restored, err := toDomain(doc)
	require.NoError(t, err)
	require.Equal(t, athlete.State(), restored.State())
	require.Nil(t, restored.HeartRateZones())
}

func TestToDomain_RejectsMalformedGoalID(t *testing.T) {
	athlete := buildAthlete(t)
	doc := toDocument(athlete)
	doc.Goals[0].ID = "not-a-uuid"

	_, err := toDomain(doc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid goal id")
}

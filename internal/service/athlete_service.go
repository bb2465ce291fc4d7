package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nextstep/athlete-api/internal/domain"
	"nextstep/athlete-api/internal/repository"
	"nextstep/athlete-api/internal/storage"
)

// --- Error Definitions ---
var (
	ErrAthleteNotFound          = errors.New("athlete profile not found")
	ErrProfileAlreadyExists     = errors.New("athlete profile already exists")
	ErrUnsupportedPhotoType     = errors.New("unsupported photo content type; allowed: image/jpeg, image/png, image/webp")
	ErrPhotoKeyOutsideNamespace = errors.New("photo object key does not belong to this athlete")
)

// allowed content types for the profile photo upload
var allowedPhotoTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// HeartRateZoneInput is a manually specified zone as received from the
// legacy v1 endpoint.
type HeartRateZoneInput struct {
	ZoneNumber int
	Name       string
	MinBpm     int
	MaxBpm     int
}

// PaceZoneInput mirrors HeartRateZoneInput for pace zones. Paces arrive as
// "mm:ss" strings.
type PaceZoneInput struct {
	ZoneNumber int
	Name       string
	MinPace    string
	MaxPace    string
}

// Profile bundles the aggregate with the presigned photo URL for reads.
type Profile struct {
	Athlete  *domain.Athlete
	PhotoURL string // empty when no photo is set
}

// PhotoUpload is the result of requesting a photo upload slot.
type PhotoUpload struct {
	URL       string // presigned PUT URL
	ObjectKey string // key to confirm once the upload finished
}

// AthleteService exposes one method per user-facing operation. Every
// mutation is a load-mutate-save cycle over the single athlete aggregate;
// all business rules live in the domain layer.
type AthleteService interface {
	GetProfile(ctx context.Context) (*Profile, error)
	CreateProfile(ctx context.Context, name string, birthDate time.Time) (primitive.ObjectID, error)
	UpdatePersonalInfo(ctx context.Context, name string, birthDate time.Time) error
	UpdatePhysiologicalData(ctx context.Context, maxHeartRate, lactateThresholdHR *int, lactateThresholdPace *time.Duration) error
	UpdateTrainingAccess(ctx context.Context, hasTrackAccess bool) error
	UpdateTrainingAvailability(ctx context.Context, monday, tuesday, wednesday, thursday, friday, saturday, sunday domain.WorkoutType) error

	AddGoal(ctx context.Context, raceDate time.Time, targetTime time.Duration, distanceType domain.DistanceType, customKm *float64) (uuid.UUID, error)
	UpdateGoal(ctx context.Context, goalID uuid.UUID, raceDate time.Time, targetTime time.Duration, distanceType domain.DistanceType, customKm *float64) error
	DeleteGoal(ctx context.Context, goalID uuid.UUID) error
	SetPrimaryGoal(ctx context.Context, goalID uuid.UUID) error

	SetHeartRateZones(ctx context.Context, zones []HeartRateZoneInput) error
	SetPaceZones(ctx context.Context, zones []PaceZoneInput) error

	GeneratePhotoUploadURL(ctx context.Context, contentType string) (*PhotoUpload, error)
	ConfirmPhotoUpload(ctx context.Context, objectKey string) error
}

// --- Service Implementation ---

type athleteService struct {
	athleteRepo repository.AthleteRepository
	fileStorage storage.FileStorage
	now         func() time.Time
}

// NewAthleteService creates a new instance of athleteService. The clock is
// injected so tests can pin "today" for age and birth-date validation.
func NewAthleteService(athleteRepo repository.AthleteRepository, fileStorage storage.FileStorage, now func() time.Time) AthleteService {
	if now == nil {
		now = time.Now
	}
	return &athleteService{
		athleteRepo: athleteRepo,
		fileStorage: fileStorage,
		now:         now,
	}
}

// loadAthlete fetches the single profile, mapping the repository sentinel
// to the service-level not-found error.
func (s *athleteService) loadAthlete(ctx context.Context) (*domain.Athlete, error) {
	athlete, err := s.athleteRepo.GetSingle(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, err
	}
	return athlete, nil
}

// mutate runs fn against the loaded aggregate and persists the result.
// A failing fn leaves storage untouched.
func (s *athleteService) mutate(ctx context.Context, fn func(*domain.Athlete) error) error {
	athlete, err := s.loadAthlete(ctx)
	if err != nil {
		return err
	}
	if err := fn(athlete); err != nil {
		return err
	}
	return s.athleteRepo.Update(ctx, athlete)
}

// GetProfile returns the full profile. The derived zones are computed by the
// aggregate on access; the photo URL is presigned per request.
func (s *athleteService) GetProfile(ctx context.Context) (*Profile, error) {
	athlete, err := s.loadAthlete(ctx)
	if err != nil {
		return nil, err
	}

	profile := &Profile{Athlete: athlete}
	if key := athlete.PhotoObjectKey(); key != "" {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, key, storage.DefaultPresignedURLExpiry)
		if err != nil {
			// The profile is still useful without the photo link.
			log.Printf("WARN: could not presign photo download for key %q: %v", key, err)
		} else {
			profile.PhotoURL = url
		}
	}
	return profile, nil
}

// CreateProfile creates the single athlete profile. A second create is a
// conflict: the system is single-tenant.
func (s *athleteService) CreateProfile(ctx context.Context, name string, birthDate time.Time) (primitive.ObjectID, error) {
	_, err := s.athleteRepo.GetSingle(ctx)
	if err == nil {
		return primitive.NilObjectID, ErrProfileAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return primitive.NilObjectID, err
	}

	athlete, err := domain.NewAthlete(name, birthDate, s.now())
	if err != nil {
		return primitive.NilObjectID, err
	}

	return s.athleteRepo.Create(ctx, athlete)
}

func (s *athleteService) UpdatePersonalInfo(ctx context.Context, name string, birthDate time.Time) error {
	return s.mutate(ctx, func(a *domain.Athlete) error {
		return a.UpdatePersonalInfo(name, birthDate, s.now())
	})
}

func (s *athleteService) UpdatePhysiologicalData(ctx context.Context, maxHeartRate, lactateThresholdHR *int, lactateThresholdPace *time.Duration) error {
	return s.mutate(ctx, func(a *domain.Athlete) error {
		return a.UpdatePhysiologicalData(maxHeartRate, lactateThresholdHR, lactateThresholdPace)
	})
}

func (s *athleteService) UpdateTrainingAccess(ctx context.Context, hasTrackAccess bool) error {
	return s.mutate(ctx, func(a *domain.Athlete) error {
		a.UpdateTrainingAccess(hasTrackAccess)
		return nil
	})
}

func (s *athleteService) UpdateTrainingAvailability(ctx context.Context, monday, tuesday, wednesday, thursday, friday, saturday, sunday domain.WorkoutType) error {
	return s.mutate(ctx, func(a *domain.Athlete) error {
		return a.UpdateTrainingAvailability(monday, tuesday, wednesday, thursday, friday, saturday, sunday)
	})
}

// AddGoal validates the distance, appends the goal and returns its ID.
func (s *athleteService) AddGoal(ctx context.Context, raceDate time.Time, targetTime time.Duration, distanceType domain.DistanceType, customKm *float64) (uuid.UUID, error) {
	var goalID uuid.UUID
	err := s.mutate(ctx, func(a *domain.Athlete) error {
		distance, err := domain.NewGoalDistance(distanceType, customKm)
		if err != nil {
			return err
		}
		goal := a.AddGoal(raceDate, targetTime, distance)
		goalID = goal.ID
		return nil
	})
	return goalID, err
}

func (s *athleteService) UpdateGoal(ctx context.Context, goalID uuid.UUID, raceDate time.Time, targetTime time.Duration, distanceType domain.DistanceType, customKm *float64) error {
	return s.mutate(ctx, func(a *domain.Athlete) error {
		distance, err := domain.NewGoalDistance(distanceType, customKm)
		if err != nil {
			return err
		}
		return a.UpdateGoal(goalID, raceDate, targetTime, distance)
	})
}

func (s *athleteService) DeleteGoal(ctx context.Context, goalID uuid.UUID) error {
	return s.mutate(ctx, func(a *domain.Athlete) error {
		return a.DeleteGoal(goalID)
	})
}

func (s *athleteService) SetPrimaryGoal(ctx context.Context, goalID uuid.UUID) error {
	return s.mutate(ctx, func(a *domain.Athlete) error {
		return a.SetPrimaryGoal(goalID)
	})
}

// SetHeartRateZones validates and stores manually supplied zones (legacy v1
// input path).
func (s *athleteService) SetHeartRateZones(ctx context.Context, inputs []HeartRateZoneInput) error {
	return s.mutate(ctx, func(a *domain.Athlete) error {
		zones := make([]domain.HeartRateZone, 0, len(inputs))
		for _, in := range inputs {
			zone, err := domain.NewHeartRateZone(in.ZoneNumber, in.Name, in.MinBpm, in.MaxBpm)
			if err != nil {
				return err
			}
			zones = append(zones, zone)
		}
		return a.SetHeartRateZones(zones)
	})
}

// SetPaceZones validates and stores manually supplied pace zones (legacy v1
// input path). Bounds arrive as "mm:ss" strings.
func (s *athleteService) SetPaceZones(ctx context.Context, inputs []PaceZoneInput) error {
	return s.mutate(ctx, func(a *domain.Athlete) error {
		zones := make([]domain.PaceZone, 0, len(inputs))
		for _, in := range inputs {
			minPace, err := domain.ParsePace(in.MinPace)
			if err != nil {
				return err
			}
			maxPace, err := domain.ParsePace(in.MaxPace)
			if err != nil {
				return err
			}
			zone, err := domain.NewPaceZone(in.ZoneNumber, in.Name, minPace, maxPace)
			if err != nil {
				return err
			}
			zones = append(zones, zone)
		}
		return a.SetPaceZones(zones)
	})
}

// GeneratePhotoUploadURL hands out a presigned PUT URL for the profile
// photo. The key is namespaced under the athlete's ID; the upload is only
// linked to the profile once ConfirmPhotoUpload is called with the key.
func (s *athleteService) GeneratePhotoUploadURL(ctx context.Context, contentType string) (*PhotoUpload, error) {
	ext, ok := allowedPhotoTypes[contentType]
	if !ok {
		return nil, ErrUnsupportedPhotoType
	}

	athlete, err := s.loadAthlete(ctx)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("athletes/%s/photo-%s.%s", athlete.ID().Hex(), uuid.New().String(), ext)
	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}

	return &PhotoUpload{URL: url, ObjectKey: objectKey}, nil
}

// ConfirmPhotoUpload records the uploaded object as the profile photo and
// deletes the previous one, if any. The key must sit in the athlete's own
// namespace so a client cannot point the profile at arbitrary objects.
func (s *athleteService) ConfirmPhotoUpload(ctx context.Context, objectKey string) error {
	athlete, err := s.loadAthlete(ctx)
	if err != nil {
		return err
	}

	prefix := fmt.Sprintf("athletes/%s/", athlete.ID().Hex())
	if len(objectKey) <= len(prefix) || objectKey[:len(prefix)] != prefix {
		return ErrPhotoKeyOutsideNamespace
	}

	previous := athlete.PhotoObjectKey()
	athlete.SetPhotoObjectKey(objectKey)
	if err := s.athleteRepo.Update(ctx, athlete); err != nil {
		return err
	}

	if previous != "" && previous != objectKey {
		// Best effort: a stale photo object is not worth failing the request.
		if err := s.fileStorage.DeleteObject(ctx, previous); err != nil {
			log.Printf("WARN: could not delete previous photo object %q: %v", previous, err)
		}
	}
	return nil
}

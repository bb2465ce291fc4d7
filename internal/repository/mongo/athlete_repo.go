package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"nextstep/athlete-api/internal/domain"
	"nextstep/athlete-api/internal/repository"
)

const athleteCollectionName = "athletes"

// mongoAthleteRepository implements repository.AthleteRepository using MongoDB.
// The whole aggregate is stored as a single document: sub-objects as embedded
// documents, goals as an embedded array. Derived zones are never stored.
type mongoAthleteRepository struct {
	collection *mongo.Collection
}

// NewMongoAthleteRepository creates a new instance of mongoAthleteRepository.
// It expects a connected *mongo.Database instance.
func NewMongoAthleteRepository(db *mongo.Database) repository.AthleteRepository {
	return &mongoAthleteRepository{
		collection: db.Collection(athleteCollectionName),
	}
}

// --- Document model ---
// Durations (pace, target time) are stored as integer seconds so documents
// stay readable and independent of Go's nanosecond representation. Goal IDs
// are uuid strings.

type athleteDocument struct {
	ID                   primitive.ObjectID        `bson:"_id"`
	PersonalInfo         personalInfoDocument      `bson:"personalInfo"`
	PhysiologicalData    physiologicalDataDocument `bson:"physiologicalData"`
	TrainingAccess       trainingAccessDocument    `bson:"trainingAccess"`
	TrainingAvailability availabilityDocument      `bson:"trainingAvailability"`
	PhotoObjectKey       string                    `bson:"photoObjectKey,omitempty"`
	Goals                []goalDocument            `bson:"goals"`
	ManualHeartRateZones []heartRateZoneDocument   `bson:"manualHeartRateZones,omitempty"`
	ManualPaceZones      []paceZoneDocument        `bson:"manualPaceZones,omitempty"`
	CreatedAt            time.Time                 `bson:"createdAt"`
	UpdatedAt            time.Time                 `bson:"updatedAt"`
}

type personalInfoDocument struct {
	Name      string    `bson:"name"`
	BirthDate time.Time `bson:"birthDate"`
}

type physiologicalDataDocument struct {
	MaxHeartRate             *int   `bson:"maxHeartRate,omitempty"`
	LactateThresholdHR       *int   `bson:"lactateThresholdHeartRate,omitempty"`
	LactateThresholdPaceSecs *int64 `bson:"lactateThresholdPaceSeconds,omitempty"`
}

type trainingAccessDocument struct {
	HasTrackAccess bool `bson:"hasTrackAccess"`
}

type availabilityDocument struct {
	Monday    string `bson:"monday"`
	Tuesday   string `bson:"tuesday"`
	Wednesday string `bson:"wednesday"`
	Thursday  string `bson:"thursday"`
	Friday    string `bson:"friday"`
	Saturday  string `bson:"saturday"`
	Sunday    string `bson:"sunday"`
}

type goalDocument struct {
	ID                string    `bson:"id"`
	RaceDate          time.Time `bson:"raceDate"`
	TargetTimeSeconds int64     `bson:"targetTimeSeconds"`
	DistanceType      string    `bson:"distanceType"`
	CustomDistanceKm  *float64  `bson:"customDistanceKm,omitempty"`
	IsPrimary         bool      `bson:"isPrimary"`
}

type heartRateZoneDocument struct {
	ZoneNumber int    `bson:"zoneNumber"`
	Name       string `bson:"name"`
	MinBpm     int    `bson:"minBpm"`
	MaxBpm     int    `bson:"maxBpm"`
}

type paceZoneDocument struct {
	ZoneNumber     int    `bson:"zoneNumber"`
	Name           string `bson:"name"`
	MinPaceSeconds int64  `bson:"minPaceSeconds"`
	MaxPaceSeconds int64  `bson:"maxPaceSeconds"`
}

// --- Mapping ---

func toDocument(athlete *domain.Athlete) athleteDocument {
	state := athlete.State()

	doc := athleteDocument{
		ID: state.ID,
		PersonalInfo: personalInfoDocument{
			Name:      state.PersonalInfo.Name,
			BirthDate: state.PersonalInfo.BirthDate,
		},
		TrainingAccess: trainingAccessDocument{
			HasTrackAccess: state.TrainingAccess.HasTrackAccess,
		},
		TrainingAvailability: availabilityDocument{
			Monday:    string(state.TrainingAvailability.Monday),
			Tuesday:   string(state.TrainingAvailability.Tuesday),
			Wednesday: string(state.TrainingAvailability.Wednesday),
			Thursday:  string(state.TrainingAvailability.Thursday),
			Friday:    string(state.TrainingAvailability.Friday),
			Saturday:  string(state.TrainingAvailability.Saturday),
			Sunday:    string(state.TrainingAvailability.Sunday),
		},
		PhotoObjectKey: state.PhotoObjectKey,
		Goals:          make([]goalDocument, 0, len(state.Goals)),
		CreatedAt:      state.CreatedAt,
		UpdatedAt:      state.UpdatedAt,
	}

	doc.PhysiologicalData.MaxHeartRate = state.PhysiologicalData.MaxHeartRate
	doc.PhysiologicalData.LactateThresholdHR = state.PhysiologicalData.LactateThresholdHR
	if state.PhysiologicalData.LactateThresholdPace != nil {
		secs := int64(*state.PhysiologicalData.LactateThresholdPace / time.Second)
		doc.PhysiologicalData.LactateThresholdPaceSecs = &secs
	}

	for _, goal := range state.Goals {
		doc.Goals = append(doc.Goals, goalDocument{
			ID:                goal.ID.String(),
			RaceDate:          goal.RaceDate,
			TargetTimeSeconds: int64(goal.TargetTime / time.Second),
			DistanceType:      string(goal.Distance.Type),
			CustomDistanceKm:  goal.Distance.CustomKm,
			IsPrimary:         goal.IsPrimary,
		})
	}

	for _, zone := range state.ManualHeartRateZones {
		doc.ManualHeartRateZones = append(doc.ManualHeartRateZones, heartRateZoneDocument(zone))
	}
	for _, zone := range state.ManualPaceZones {
		doc.ManualPaceZones = append(doc.ManualPaceZones, paceZoneDocument{
			ZoneNumber:     zone.ZoneNumber,
			Name:           zone.Name,
			MinPaceSeconds: int64(zone.MinPerKm / time.Second),
			MaxPaceSeconds: int64(zone.MaxPerKm / time.Second),
		})
	}

	return doc
}

func toDomain(doc athleteDocument) (*domain.Athlete, error) {
	state := domain.AthleteState{
		ID: doc.ID,
		PersonalInfo: domain.PersonalInfo{
			Name:      doc.PersonalInfo.Name,
			BirthDate: doc.PersonalInfo.BirthDate.UTC(),
		},
		TrainingAccess: domain.TrainingAccess{
			HasTrackAccess: doc.TrainingAccess.HasTrackAccess,
		},
		TrainingAvailability: domain.TrainingAvailability{
			Monday:    domain.WorkoutType(doc.TrainingAvailability.Monday),
			Tuesday:   domain.WorkoutType(doc.TrainingAvailability.Tuesday),
			Wednesday: domain.WorkoutType(doc.TrainingAvailability.Wednesday),
			Thursday:  domain.WorkoutType(doc.TrainingAvailability.Thursday),
			Friday:    domain.WorkoutType(doc.TrainingAvailability.Friday),
			Saturday:  domain.WorkoutType(doc.TrainingAvailability.Saturday),
			Sunday:    domain.WorkoutType(doc.TrainingAvailability.Sunday),
		},
		PhotoObjectKey: doc.PhotoObjectKey,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}

	state.PhysiologicalData.MaxHeartRate = doc.PhysiologicalData.MaxHeartRate
	state.PhysiologicalData.LactateThresholdHR = doc.PhysiologicalData.LactateThresholdHR
	if doc.PhysiologicalData.LactateThresholdPaceSecs != nil {
		pace := time.Duration(*doc.PhysiologicalData.LactateThresholdPaceSecs) * time.Second
		state.PhysiologicalData.LactateThresholdPace = &pace
	}

	for _, goalDoc := range doc.Goals {
		goalID, err := uuid.Parse(goalDoc.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid goal id %q in athlete document: %w", goalDoc.ID, err)
		}
		state.Goals = append(state.Goals, domain.Goal{
			ID:         goalID,
			RaceDate:   goalDoc.RaceDate.UTC(),
			TargetTime: time.Duration(goalDoc.TargetTimeSeconds) * time.Second,
			Distance: domain.GoalDistance{
				Type:     domain.DistanceType(goalDoc.DistanceType),
				CustomKm: goalDoc.CustomDistanceKm,
			},
			IsPrimary: goalDoc.IsPrimary,
		})
	}

	for _, zoneDoc := range doc.ManualHeartRateZones {
		state.ManualHeartRateZones = append(state.ManualHeartRateZones, domain.HeartRateZone(zoneDoc))
	}
	for _, zoneDoc := range doc.ManualPaceZones {
		state.ManualPaceZones = append(state.ManualPaceZones, domain.PaceZone{
			ZoneNumber: zoneDoc.ZoneNumber,
			Name:       zoneDoc.Name,
			MinPerKm:   time.Duration(zoneDoc.MinPaceSeconds) * time.Second,
			MaxPerKm:   time.Duration(zoneDoc.MaxPaceSeconds) * time.Second,
		})
	}

	return domain.RehydrateAthlete(state), nil
}

// --- Repository methods ---

// Create inserts the athlete document. The aggregate already carries its
// identity; duplicate inserts surface as ErrAlreadyExists.
func (r *mongoAthleteRepository) Create(ctx context.Context, athlete *domain.Athlete) (primitive.ObjectID, error) {
	doc := toDocument(athlete)

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrAlreadyExists
		}
		return primitive.NilObjectID, err
	}

	return doc.ID, nil
}

// GetByID retrieves an athlete by its ObjectID.
func (r *mongoAthleteRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
	var doc athleteDocument
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return toDomain(doc)
}

// GetSingle retrieves the single athlete profile (single-tenant lookup).
func (r *mongoAthleteRepository) GetSingle(ctx context.Context) (*domain.Athlete, error) {
	var doc athleteDocument

	err := r.collection.FindOne(ctx, bson.M{}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return toDomain(doc)
}

// Update replaces the whole athlete document and bumps updatedAt.
func (r *mongoAthleteRepository) Update(ctx context.Context, athlete *domain.Athlete) error {
	doc := toDocument(athlete)
	doc.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

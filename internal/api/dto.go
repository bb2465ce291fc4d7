package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nextstep/athlete-api/internal/domain"
	"nextstep/athlete-api/internal/service"
)

// Dates cross the wire as plain calendar dates.
const dateLayout = "2006-01-02"

// --- Request Structs ---

type CreateAthleteRequest struct {
	Name      string `json:"name" binding:"required"`
	BirthDate string `json:"birthDate" binding:"required"` // "2006-01-02"
}

type UpdatePersonalInfoRequest struct {
	Name      string `json:"name" binding:"required"`
	BirthDate string `json:"birthDate" binding:"required"`
}

type UpdatePhysiologicalDataRequest struct {
	MaxHeartRate              *int    `json:"maxHeartRate"`
	LactateThresholdHeartRate *int    `json:"lactateThresholdHeartRate"`
	LactateThresholdPace      *string `json:"lactateThresholdPace"` // "mm:ss" min/km
}

type UpdateTrainingAccessRequest struct {
	HasTrackAccess *bool `json:"hasTrackAccess" binding:"required"`
}

type UpdateTrainingAvailabilityRequest struct {
	Monday    string `json:"monday" binding:"required"`
	Tuesday   string `json:"tuesday" binding:"required"`
	Wednesday string `json:"wednesday" binding:"required"`
	Thursday  string `json:"thursday" binding:"required"`
	Friday    string `json:"friday" binding:"required"`
	Saturday  string `json:"saturday" binding:"required"`
	Sunday    string `json:"sunday" binding:"required"`
}

type GoalRequest struct {
	RaceDate         string   `json:"raceDate" binding:"required"`
	TargetTime       string   `json:"targetTime" binding:"required"` // "h:mm:ss" or "mm:ss"
	DistanceType     string   `json:"distanceType" binding:"required"`
	CustomDistanceKm *float64 `json:"customDistanceKm"`
}

type UpdateHeartRateZonesRequest struct {
	Zones []HeartRateZoneRequest `json:"zones" binding:"required"`
}

type HeartRateZoneRequest struct {
	ZoneNumber int    `json:"zoneNumber"`
	Name       string `json:"name"`
	MinBpm     int    `json:"minBpm"`
	MaxBpm     int    `json:"maxBpm"`
}

type UpdatePaceZonesRequest struct {
	Zones []PaceZoneRequest `json:"zones" binding:"required"`
}

type PaceZoneRequest struct {
	ZoneNumber int    `json:"zoneNumber"`
	Name       string `json:"name"`
	MinPace    string `json:"minPace"` // "mm:ss"
	MaxPace    string `json:"maxPace"`
}

type PhotoUploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmPhotoRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
}

// --- Response Structs ---

type AthleteResponse struct {
	ID                   string                       `json:"id"`
	PersonalInfo         PersonalInfoResponse         `json:"personalInfo"`
	PhysiologicalData    PhysiologicalDataResponse    `json:"physiologicalData"`
	TrainingAccess       TrainingAccessResponse       `json:"trainingAccess"`
	TrainingAvailability TrainingAvailabilityResponse `json:"trainingAvailability"`
	HeartRateZones       []HeartRateZoneResponse      `json:"heartRateZones"`
	PaceZones            []PaceZoneResponse           `json:"paceZones"`
	Goals                []GoalResponse               `json:"goals"`
	PhotoURL             string                       `json:"photoUrl,omitempty"`
}

type PersonalInfoResponse struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Age       int    `json:"age"`
}

type PhysiologicalDataResponse struct {
	MaxHeartRate              *int    `json:"maxHeartRate"`
	LactateThresholdHeartRate *int    `json:"lactateThresholdHeartRate"`
	LactateThresholdPace      *string `json:"lactateThresholdPace"`
}

type TrainingAccessResponse struct {
	HasTrackAccess bool `json:"hasTrackAccess"`
}

type TrainingAvailabilityResponse struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

type HeartRateZoneResponse struct {
	ZoneNumber int    `json:"zoneNumber"`
	Name       string `json:"name"`
	MinBpm     int    `json:"minBpm"`
	MaxBpm     int    `json:"maxBpm"`
}

type PaceZoneResponse struct {
	ZoneNumber int    `json:"zoneNumber"`
	Name       string `json:"name"`
	MinPace    string `json:"minPace"`
	MaxPace    string `json:"maxPace"`
}

type GoalResponse struct {
	ID                  string   `json:"id"`
	RaceDate            string   `json:"raceDate"`
	TargetTime          string   `json:"targetTime"`
	DistanceType        string   `json:"distanceType"`
	CustomDistanceKm    *float64 `json:"customDistanceKm,omitempty"`
	DistanceDisplayName string   `json:"distanceDisplayName"`
	IsPrimary           bool     `json:"isPrimary"`
}

type PhotoUploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// --- Mapping ---

// MapProfileToResponse renders the aggregate for the web client. Derived
// zones are pulled through the aggregate accessors, so they always reflect
// the current physiological data.
func MapProfileToResponse(profile *service.Profile, now time.Time) AthleteResponse {
	athlete := profile.Athlete
	personal := athlete.PersonalInfo()
	physiological := athlete.PhysiologicalData()
	availability := athlete.TrainingAvailability()

	resp := AthleteResponse{
		ID: athlete.ID().Hex(),
		PersonalInfo: PersonalInfoResponse{
			Name:      personal.Name,
			BirthDate: personal.BirthDate.Format(dateLayout),
			Age:       personal.Age(now),
		},
		PhysiologicalData: PhysiologicalDataResponse{
			MaxHeartRate:              physiological.MaxHeartRate,
			LactateThresholdHeartRate: physiological.LactateThresholdHR,
		},
		TrainingAccess: TrainingAccessResponse{
			HasTrackAccess: athlete.TrainingAccess().HasTrackAccess,
		},
		TrainingAvailability: TrainingAvailabilityResponse{
			Monday:    string(availability.Monday),
			Tuesday:   string(availability.Tuesday),
			Wednesday: string(availability.Wednesday),
			Thursday:  string(availability.Thursday),
			Friday:    string(availability.Friday),
			Saturday:  string(availability.Saturday),
			Sunday:    string(availability.Sunday),
		},
		HeartRateZones: make([]HeartRateZoneResponse, 0, 5),
		PaceZones:      make([]PaceZoneResponse, 0, 5),
		Goals:          make([]GoalResponse, 0),
		PhotoURL:       profile.PhotoURL,
	}

	if physiological.LactateThresholdPace != nil {
		pace := domain.FormatPace(*physiological.LactateThresholdPace)
		resp.PhysiologicalData.LactateThresholdPace = &pace
	}

	for _, zone := range athlete.HeartRateZones() {
		resp.HeartRateZones = append(resp.HeartRateZones, HeartRateZoneResponse(zone))
	}
	for _, zone := range athlete.PaceZones() {
		resp.PaceZones = append(resp.PaceZones, PaceZoneResponse{
			ZoneNumber: zone.ZoneNumber,
			Name:       zone.Name,
			MinPace:    zone.FormatMinPace(),
			MaxPace:    zone.FormatMaxPace(),
		})
	}

	for _, goal := range athlete.Goals() {
		resp.Goals = append(resp.Goals, GoalResponse{
			ID:                  goal.ID.String(),
			RaceDate:            goal.RaceDate.Format(dateLayout),
			TargetTime:          formatTargetTime(goal.TargetTime),
			DistanceType:        string(goal.Distance.Type),
			CustomDistanceKm:    goal.Distance.CustomKm,
			DistanceDisplayName: goal.Distance.DisplayName(),
			IsPrimary:           goal.IsPrimary,
		})
	}

	return resp
}

// parseDate parses a "2006-01-02" wire date.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected format %s", value, dateLayout)
	}
	return t, nil
}

// parseTargetTime accepts "h:mm:ss" for goals of an hour or more and
// "mm:ss" for shorter ones.
func parseTargetTime(value string) (time.Duration, error) {
	parts := strings.Split(value, ":")

	var hours, minutes, seconds int
	var err error
	switch len(parts) {
	case 2:
		minutes, err = strconv.Atoi(parts[0])
		if err == nil {
			seconds, err = strconv.Atoi(parts[1])
		}
	case 3:
		hours, err = strconv.Atoi(parts[0])
		if err == nil {
			minutes, err = strconv.Atoi(parts[1])
		}
		if err == nil {
			seconds, err = strconv.Atoi(parts[2])
		}
	default:
		err = fmt.Errorf("wrong number of segments")
	}
	if err != nil || hours < 0 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("invalid target time %q, expected h:mm:ss or mm:ss", value)
	}

	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, nil
}

// formatTargetTime renders a goal time as "h:mm:ss" when it reaches an hour,
// otherwise "m:ss".
func formatTargetTime(d time.Duration) string {
	totalSeconds := int(d / time.Second)
	if totalSeconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", totalSeconds/3600, (totalSeconds%3600)/60, totalSeconds%60)
	}
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

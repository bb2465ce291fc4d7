package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nextstep/athlete-api/internal/domain"
	"nextstep/athlete-api/internal/service"
)

// AthleteHandler exposes the athlete profile REST surface. Every endpoint is
// a thin adapter: validate the request shape, call one service method, map
// the error to a status code.
type AthleteHandler struct {
	athleteService service.AthleteService
}

// NewAthleteHandler creates a new AthleteHandler.
func NewAthleteHandler(athleteService service.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

// handleServiceError maps domain and service errors onto HTTP status codes:
// validation failures to 400, missing resources to 404, structural
// conflicts to 409, anything unexpected to 500.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case domain.IsValidationError(err):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnsupportedPhotoType),
		errors.Is(err, service.ErrPhotoKeyOutsideNamespace):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAthleteNotFound),
		errors.Is(err, domain.ErrGoalNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrProfileAlreadyExists),
		errors.Is(err, domain.ErrPrimaryGoalConflict):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// GetProfile godoc
// @Summary Get the athlete profile
// @Tags Athlete
// @Produce json
// @Success 200 {object} AthleteResponse
// @Failure 404 {object} gin.H "No profile exists yet"
// @Security BearerAuth
// @Router /athlete [get]
func (h *AthleteHandler) GetProfile(c *gin.Context) {
	profile, err := h.athleteService.GetProfile(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProfileToResponse(profile, time.Now()))
}

// CreateProfile godoc
// @Summary Create the athlete profile
// @Tags Athlete
// @Accept json
// @Produce json
// @Param profile body CreateAthleteRequest true "Profile details"
// @Success 201 {object} gin.H "id of the created profile"
// @Failure 400 {object} gin.H
// @Failure 409 {object} gin.H "Profile already exists"
// @Security BearerAuth
// @Router /athlete [post]
func (h *AthleteHandler) CreateProfile(c *gin.Context) {
	var req CreateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.athleteService.CreateProfile(c.Request.Context(), req.Name, birthDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

// UpdatePersonalInfo godoc
// @Summary Update name and birth date
// @Tags Athlete
// @Accept json
// @Param info body UpdatePersonalInfoRequest true "Personal info"
// @Success 204
// @Security BearerAuth
// @Router /athlete/personal-info [put]
func (h *AthleteHandler) UpdatePersonalInfo(c *gin.Context) {
	var req UpdatePersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.athleteService.UpdatePersonalInfo(c.Request.Context(), req.Name, birthDate); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdatePhysiologicalData godoc
// @Summary Update measured thresholds
// @Description Setting or clearing the lactate-threshold fields implicitly
// @Description changes the derived training zones returned on reads.
// @Tags Athlete
// @Accept json
// @Param data body UpdatePhysiologicalDataRequest true "Thresholds (pace as mm:ss, null to clear)"
// @Success 204
// @Security BearerAuth
// @Router /athlete/physiological-data [put]
func (h *AthleteHandler) UpdatePhysiologicalData(c *gin.Context) {
	var req UpdatePhysiologicalDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var pace *time.Duration
	if req.LactateThresholdPace != nil {
		parsed, err := domain.ParsePace(*req.LactateThresholdPace)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		pace = &parsed
	}

	err := h.athleteService.UpdatePhysiologicalData(c.Request.Context(), req.MaxHeartRate, req.LactateThresholdHeartRate, pace)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateTrainingAccess godoc
// @Summary Update facility access
// @Tags Athlete
// @Accept json
// @Param access body UpdateTrainingAccessRequest true "Access flags"
// @Success 204
// @Security BearerAuth
// @Router /athlete/training-access [put]
func (h *AthleteHandler) UpdateTrainingAccess(c *gin.Context) {
	var req UpdateTrainingAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.athleteService.UpdateTrainingAccess(c.Request.Context(), *req.HasTrackAccess); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateTrainingAvailability godoc
// @Summary Update the weekly schedule
// @Description Rejects schedules with quality workouts on adjacent days,
// @Description including the Sunday-to-Monday wrap.
// @Tags Athlete
// @Accept json
// @Param schedule body UpdateTrainingAvailabilityRequest true "Workout type per day"
// @Success 204
// @Failure 400 {object} gin.H "Consecutive quality workouts or unknown type"
// @Security BearerAuth
// @Router /athlete/training-availability [put]
func (h *AthleteHandler) UpdateTrainingAvailability(c *gin.Context) {
	var req UpdateTrainingAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	days := make([]domain.WorkoutType, 0, 7)
	for _, raw := range []string{req.Monday, req.Tuesday, req.Wednesday, req.Thursday, req.Friday, req.Saturday, req.Sunday} {
		workout, err := domain.ParseWorkoutType(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		days = append(days, workout)
	}

	err := h.athleteService.UpdateTrainingAvailability(c.Request.Context(),
		days[0], days[1], days[2], days[3], days[4], days[5], days[6])
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddGoal godoc
// @Summary Add a race goal
// @Description The first goal ever added becomes the primary goal.
// @Tags Goals
// @Accept json
// @Produce json
// @Param goal body GoalRequest true "Goal details"
// @Success 201 {object} gin.H "id of the created goal"
// @Security BearerAuth
// @Router /athlete/goals [post]
func (h *AthleteHandler) AddGoal(c *gin.Context) {
	req, parsed, ok := h.bindGoalRequest(c)
	if !ok {
		return
	}

	goalID, err := h.athleteService.AddGoal(c.Request.Context(), parsed.raceDate, parsed.targetTime, parsed.distanceType, req.CustomDistanceKm)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": goalID.String()})
}

// UpdateGoal godoc
// @Summary Update a race goal
// @Tags Goals
// @Accept json
// @Param goalId path string true "Goal ID"
// @Param goal body GoalRequest true "New goal details"
// @Success 204
// @Failure 404 {object} gin.H "Goal not found"
// @Security BearerAuth
// @Router /athlete/goals/{goalId} [put]
func (h *AthleteHandler) UpdateGoal(c *gin.Context) {
	goalID, ok := h.parseGoalID(c)
	if !ok {
		return
	}
	req, parsed, ok := h.bindGoalRequest(c)
	if !ok {
		return
	}

	err := h.athleteService.UpdateGoal(c.Request.Context(), goalID, parsed.raceDate, parsed.targetTime, parsed.distanceType, req.CustomDistanceKm)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteGoal godoc
// @Summary Delete a race goal
// @Description Deleting the primary goal is refused with 409 while other
// @Description goals remain; reassign primary first.
// @Tags Goals
// @Param goalId path string true "Goal ID"
// @Success 204
// @Failure 404 {object} gin.H "Goal not found"
// @Failure 409 {object} gin.H "Goal is primary and siblings remain"
// @Security BearerAuth
// @Router /athlete/goals/{goalId} [delete]
func (h *AthleteHandler) DeleteGoal(c *gin.Context) {
	goalID, ok := h.parseGoalID(c)
	if !ok {
		return
	}

	if err := h.athleteService.DeleteGoal(c.Request.Context(), goalID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetPrimaryGoal godoc
// @Summary Mark a goal as the primary goal
// @Tags Goals
// @Param goalId path string true "Goal ID"
// @Success 204
// @Failure 404 {object} gin.H "Goal not found"
// @Security BearerAuth
// @Router /athlete/goals/{goalId}/primary [put]
func (h *AthleteHandler) SetPrimaryGoal(c *gin.Context) {
	goalID, ok := h.parseGoalID(c)
	if !ok {
		return
	}

	if err := h.athleteService.SetPrimaryGoal(c.Request.Context(), goalID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateHeartRateZones godoc
// @Summary Replace manually specified heart-rate zones (legacy)
// @Description Compatibility endpoint from before zones were derived from
// @Description the lactate threshold. Zone numbers must be unique.
// @Tags Zones
// @Accept json
// @Param zones body UpdateHeartRateZonesRequest true "Zones"
// @Success 204
// @Security BearerAuth
// @Router /athlete/heart-rate-zones [put]
func (h *AthleteHandler) UpdateHeartRateZones(c *gin.Context) {
	var req UpdateHeartRateZonesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	inputs := make([]service.HeartRateZoneInput, 0, len(req.Zones))
	for _, zone := range req.Zones {
		inputs = append(inputs, service.HeartRateZoneInput(zone))
	}

	if err := h.athleteService.SetHeartRateZones(c.Request.Context(), inputs); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdatePaceZones godoc
// @Summary Replace manually specified pace zones (legacy)
// @Tags Zones
// @Accept json
// @Param zones body UpdatePaceZonesRequest true "Zones, paces as mm:ss"
// @Success 204
// @Security BearerAuth
// @Router /athlete/pace-zones [put]
func (h *AthleteHandler) UpdatePaceZones(c *gin.Context) {
	var req UpdatePaceZonesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	inputs := make([]service.PaceZoneInput, 0, len(req.Zones))
	for _, zone := range req.Zones {
		inputs = append(inputs, service.PaceZoneInput(zone))
	}

	if err := h.athleteService.SetPaceZones(c.Request.Context(), inputs); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RequestPhotoUploadURL godoc
// @Summary Get a presigned URL for uploading the profile photo
// @Tags Photo
// @Accept json
// @Produce json
// @Param request body PhotoUploadURLRequest true "Content type of the upload"
// @Success 200 {object} PhotoUploadURLResponse
// @Security BearerAuth
// @Router /athlete/photo/upload-url [post]
func (h *AthleteHandler) RequestPhotoUploadURL(c *gin.Context) {
	var req PhotoUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	upload, err := h.athleteService.GeneratePhotoUploadURL(c.Request.Context(), req.ContentType)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, PhotoUploadURLResponse{UploadURL: upload.URL, ObjectKey: upload.ObjectKey})
}

// ConfirmPhoto godoc
// @Summary Link an uploaded object as the profile photo
// @Tags Photo
// @Accept json
// @Param request body ConfirmPhotoRequest true "Object key returned by upload-url"
// @Success 204
// @Security BearerAuth
// @Router /athlete/photo [put]
func (h *AthleteHandler) ConfirmPhoto(c *gin.Context) {
	var req ConfirmPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.athleteService.ConfirmPhotoUpload(c.Request.Context(), req.ObjectKey); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Helpers ---

type parsedGoal struct {
	raceDate     time.Time
	targetTime   time.Duration
	distanceType domain.DistanceType
}

// bindGoalRequest binds and parses the shared goal payload, writing the
// error response itself on failure.
func (h *AthleteHandler) bindGoalRequest(c *gin.Context) (GoalRequest, parsedGoal, bool) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return req, parsedGoal{}, false
	}

	raceDate, err := parseDate(req.RaceDate)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return req, parsedGoal{}, false
	}
	targetTime, err := parseTargetTime(req.TargetTime)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return req, parsedGoal{}, false
	}
	distanceType, err := domain.ParseDistanceType(req.DistanceType)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return req, parsedGoal{}, false
	}

	return req, parsedGoal{raceDate: raceDate, targetTime: targetTime, distanceType: distanceType}, true
}

// parseGoalID extracts and validates the goalId path parameter.
func (h *AthleteHandler) parseGoalID(c *gin.Context) (uuid.UUID, bool) {
	goalID, err := uuid.Parse(c.Param("goalId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid goal ID format")
		return uuid.Nil, false
	}
	return goalID, true
}

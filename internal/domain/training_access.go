package domain

// TrainingAccess records which training facilities the athlete can use.
type TrainingAccess struct {
	HasTrackAccess bool
}

// NewTrainingAccess constructs the value; no validation is required.
func NewTrainingAccess(hasTrackAccess bool) TrainingAccess {
	return TrainingAccess{HasTrackAccess: hasTrackAccess}
}

// DefaultTrainingAccess is the state of a freshly created profile: no track.
func DefaultTrainingAccess() TrainingAccess {
	return TrainingAccess{HasTrackAccess: false}
}

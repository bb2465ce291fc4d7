package domain

import (
	"strconv"
	"strings"
)

// DistanceType enumerates the supported race distances.
type DistanceType string

const (
	Distance1600m        DistanceType = "Distance1600m"
	Distance5K           DistanceType = "Distance5K"
	Distance10K          DistanceType = "Distance10K"
	Distance16K          DistanceType = "Distance16K"
	DistanceHalfMarathon DistanceType = "HalfMarathon"
	DistanceMarathon     DistanceType = "Marathon"
	DistanceCustom       DistanceType = "Custom"
)

// ParseDistanceType converts a string into a DistanceType, rejecting
// unknown values.
func ParseDistanceType(s string) (DistanceType, error) {
	switch DistanceType(s) {
	case Distance1600m, Distance5K, Distance10K, Distance16K,
		DistanceHalfMarathon, DistanceMarathon, DistanceCustom:
		return DistanceType(s), nil
	}
	return "", newValidationError("unknown distance type: %q", s)
}

// GoalDistance is the distance of a race goal: either one of the fixed
// distances, or a custom distance with an explicit kilometre value.
type GoalDistance struct {
	Type     DistanceType
	CustomKm *float64 // set only when Type is DistanceCustom
}

// NewGoalDistance validates that a custom distance carries a strictly
// positive kilometre value. The custom value is ignored for fixed distances.
func NewGoalDistance(distanceType DistanceType, customKm *float64) (GoalDistance, error) {
	if distanceType == DistanceCustom {
		if customKm == nil || *customKm <= 0 {
			return GoalDistance{}, newValidationError("custom distance must be greater than 0 km")
		}
		return GoalDistance{Type: DistanceCustom, CustomKm: customKm}, nil
	}
	return GoalDistance{Type: distanceType}, nil
}

// DistanceInKm returns the distance in kilometres.
func (d GoalDistance) DistanceInKm() float64 {
	switch d.Type {
	case Distance1600m:
		return 1.6
	case Distance5K:
		return 5
	case Distance10K:
		return 10
	case Distance16K:
		return 16
	case DistanceHalfMarathon:
		return 21.0975
	case DistanceMarathon:
		return 42.195
	default: // DistanceCustom, validated at construction
		if d.CustomKm == nil {
			return 0
		}
		return *d.CustomKm
	}
}

// DisplayName returns the human-readable label used by the web client.
func (d GoalDistance) DisplayName() string {
	switch d.Type {
	case Distance1600m:
		return "1600m"
	case Distance5K:
		return "5K"
	case Distance10K:
		return "10K"
	case Distance16K:
		return "16K"
	case DistanceHalfMarathon:
		return "Half Marathon"
	case DistanceMarathon:
		return "Marathon"
	default:
		return formatKm(d.DistanceInKm()) + " km"
	}
}

// formatKm renders a kilometre value with up to two decimal places,
// trimming trailing zeros (15.50 -> "15.5", 10.00 -> "10").
func formatKm(km float64) string {
	s := strconv.FormatFloat(km, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

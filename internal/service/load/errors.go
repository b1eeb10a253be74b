package load

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidMaterialType   = errors.New("invalid material type")
	ErrInvalidVehicleType    = errors.New("invalid vehicle type")
	ErrInvalidBodyType       = errors.New("invalid vehicle body type")
	ErrInvalidAmount         = errors.New("offered amount must be positive")
	ErrInvalidCoordinates    = errors.New("coordinates out of range")
	ErrInvalidUrgency        = errors.New("invalid urgency type")
	ErrScheduleInPast        = errors.New("schedule date must be in the future")

	ErrLoadNotFound = errors.New("load not found")
	ErrNotLoadOwner = errors.New("only the load post owner may perform this action")
)

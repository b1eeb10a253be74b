package truck

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidVehicleType    = errors.New("invalid truck type")
	ErrInvalidBodyType       = errors.New("invalid truck body type")
	ErrInvalidCoordinates    = errors.New("invalid location coordinates")
	ErrInvalidCapacity       = errors.New("capacity must be positive")
	ErrInvalidRCStatus       = errors.New("invalid rc verification status")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrTruckNotFound         = errors.New("truck not found")
	ErrNotTruckOwner         = errors.New("user is not the truck owner")
	ErrOwnTruckRating        = errors.New("owner cannot rate own truck")
	ErrDuplicateTruckNumber  = errors.New("truck number already registered")
)

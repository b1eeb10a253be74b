package geosearch

import "errors"

var (
	ErrMissingCoordinates    = errors.New("latitude and longitude are required")
	ErrCoordinatesOutOfRange = errors.New("coordinates out of range")
	ErrInvalidRadius         = errors.New("radius must be positive")
)

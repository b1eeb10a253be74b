package truck

import (
	"strings"

	"bharatloads/internal/entities"
	"bharatloads/pkg/geodist"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidVehicleType(truckType entities.VehicleType) bool {
	switch truckType {
	case entities.VehicleTrailer, entities.VehicleTruck, entities.VehicleHyva:
		return true
	default:
		return false
	}
}

func isValidBodyType(bodyType entities.TruckBodyType) bool {
	switch bodyType {
	case entities.OpenFullBody, entities.OpenHalfBody, entities.FullClosedBody:
		return true
	default:
		return false
	}
}

func isValidRCStatus(status entities.RCVerificationStatus) bool {
	switch status {
	case entities.RCApproved, entities.RCRejected:
		return true
	default:
		return false
	}
}

func isValidPoint(point entities.GeoPoint) bool {
	if strings.TrimSpace(point.PlaceName) == "" {
		return false
	}
	return geodist.ValidLatitude(point.Latitude) && geodist.ValidLongitude(point.Longitude)
}

func isValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

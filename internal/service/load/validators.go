package load

import (
	"strings"

	"bharatloads/internal/entities"
	"bharatloads/pkg/geodist"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidMaterial(material entities.MaterialType) bool {
	for _, m := range entities.MaterialTypes {
		if material == m {
			return true
		}
	}
	return false
}

func isValidVehicleType(vehicleType entities.VehicleType) bool {
	switch vehicleType {
	case entities.VehicleTrailer, entities.VehicleTruck, entities.VehicleHyva:
		return true
	default:
		return false
	}
}

func isValidBodyType(bodyType entities.VehicleBodyType) bool {
	switch bodyType {
	case entities.OpenBody, entities.ClosedBody:
		return true
	default:
		return false
	}
}

func isValidUrgency(urgency entities.UrgencyType) bool {
	switch urgency {
	case entities.UrgencyImmediate, entities.UrgencyScheduled:
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

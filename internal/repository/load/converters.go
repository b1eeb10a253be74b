package load

import "bharatloads/internal/entities"

func ToDomain(l *LoadDB) *entities.Load {
	if l == nil {
		return nil
	}
	return &entities.Load{
		ID:            l.ID,
		TransporterID: l.TransporterID,
		MaterialType:  entities.MaterialType(l.MaterialType),
		Weight:        l.Weight,
		Source: entities.GeoPoint{
			PlaceName: l.SourceName,
			Latitude:  l.SourceLat,
			Longitude: l.SourceLon,
		},
		Destination: entities.GeoPoint{
			PlaceName: l.DestName,
			Latitude:  l.DestLat,
			Longitude: l.DestLon,
		},
		VehicleBodyType: entities.VehicleBodyType(l.VehicleBodyType),
		VehicleType:     entities.VehicleType(l.VehicleType),
		NumberOfWheels:  l.NumWheels,
		OfferedAmount: entities.OfferedAmount{
			Total:             l.OfferedTotal,
			AdvancePercentage: l.AdvancePercentage,
			DieselLiters:      l.DieselLiters,
		},
		WhenNeeded:   entities.UrgencyType(l.WhenNeeded),
		ScheduledAt:  l.ScheduledAt,
		IsActive:     l.IsActive,
		CurrentBidID: l.CurrentBidID,
		ExpiresAt:    l.ExpiresAt,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func FromDomain(l *entities.Load) *LoadDB {
	if l == nil {
		return nil
	}
	return &LoadDB{
		ID:                l.ID,
		TransporterID:     l.TransporterID,
		MaterialType:      l.MaterialType.String(),
		Weight:            l.Weight,
		SourceName:        l.Source.PlaceName,
		SourceLat:         l.Source.Latitude,
		SourceLon:         l.Source.Longitude,
		DestName:          l.Destination.PlaceName,
		DestLat:           l.Destination.Latitude,
		DestLon:           l.Destination.Longitude,
		VehicleBodyType:   l.VehicleBodyType.String(),
		VehicleType:       l.VehicleType.String(),
		NumWheels:         l.NumberOfWheels,
		OfferedTotal:      l.OfferedAmount.Total,
		AdvancePercentage: l.OfferedAmount.AdvancePercentage,
		DieselLiters:      l.OfferedAmount.DieselLiters,
		WhenNeeded:        l.WhenNeeded.String(),
		ScheduledAt:       l.ScheduledAt,
		IsActive:          l.IsActive,
		CurrentBidID:      l.CurrentBidID,
		ExpiresAt:         l.ExpiresAt,
	}
}

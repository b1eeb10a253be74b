package truck

import "bharatloads/internal/entities"

func ToDomain(t *TruckDB) *entities.Truck {
	if t == nil {
		return nil
	}
	return &entities.Truck{
		ID:          t.ID,
		OwnerID:     t.OwnerID,
		TruckPermit: t.TruckPermit,
		TruckNumber: t.TruckNumber,
		Location: entities.GeoPoint{
			PlaceName: t.PlaceName,
			Latitude:  t.Lat,
			Longitude: t.Lon,
		},
		Capacity:        t.Capacity,
		VehicleBodyType: entities.VehicleBodyType(t.VehicleBodyType),
		TruckType:       entities.VehicleType(t.TruckType),
		TruckBodyType:   entities.TruckBodyType(t.TruckBodyType),
		Tyres:           t.Tyres,
		RCImage:         t.RCImage,
		RCStatus:        entities.RCVerificationStatus(t.RCStatus),
		IsRCVerified:    t.IsRCVerified,
		TotalBids:       t.TotalBids,
		CurrentBidID:    t.CurrentBidID,
		ExpiresAt:       t.ExpiresAt,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func FromDomain(t *entities.Truck) *TruckDB {
	if t == nil {
		return nil
	}
	return &TruckDB{
		ID:              t.ID,
		OwnerID:         t.OwnerID,
		TruckPermit:     t.TruckPermit,
		TruckNumber:     t.TruckNumber,
		PlaceName:       t.Location.PlaceName,
		Lat:             t.Location.Latitude,
		Lon:             t.Location.Longitude,
		Capacity:        t.Capacity,
		VehicleBodyType: t.VehicleBodyType.String(),
		TruckType:       t.TruckType.String(),
		TruckBodyType:   t.TruckBodyType.String(),
		Tyres:           t.Tyres,
		RCImage:         t.RCImage,
		RCStatus:        t.RCStatus.String(),
		IsRCVerified:    t.IsRCVerified,
		TotalBids:       t.TotalBids,
		CurrentBidID:    t.CurrentBidID,
		ExpiresAt:       t.ExpiresAt,
	}
}

func ToRatingDomain(r *TruckRatingDB) *entities.TruckRating {
	if r == nil {
		return nil
	}
	return &entities.TruckRating{
		ID:      r.ID,
		TruckID: r.TruckID,
		Rating:  r.Rating,
		Comment: r.Comment,
		RatedBy: r.RatedBy,
	}
}

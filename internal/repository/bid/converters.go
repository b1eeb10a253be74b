package bid

import "bharatloads/internal/entities"

func ToDomain(b *BidDB) *entities.Bid {
	if b == nil {
		return nil
	}
	return &entities.Bid{
		ID:        b.ID,
		BidType:   entities.BidType(b.BidType),
		LoadID:    b.LoadID,
		TruckID:   b.TruckID,
		BidBy:     b.BidBy,
		OfferedTo: b.OfferedTo,
		BiddedAmount: entities.OfferedAmount{
			Total:             b.OfferedTotal,
			AdvancePercentage: b.AdvancePercentage,
			DieselLiters:      b.DieselLiters,
		},
		MaterialType: entities.MaterialType(b.MaterialType),
		Weight:       b.Weight,
		Source: entities.GeoPoint{
			PlaceName: b.SourceName,
			Latitude:  b.SourceLat,
			Longitude: b.SourceLon,
		},
		Destination: entities.GeoPoint{
			PlaceName: b.DestName,
			Latitude:  b.DestLat,
			Longitude: b.DestLon,
		},
		LoadOfferedAmount: entities.OfferedAmount{
			Total:             b.LoadOfferedTotal,
			AdvancePercentage: b.LoadAdvancePercentage,
			DieselLiters:      b.LoadDieselLiters,
		},
		Status:          entities.BidStatus(b.Status),
		RejectionReason: b.RejectionReason,
		RejectionNote:   b.RejectionNote,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromDomain(b *entities.Bid) *BidDB {
	if b == nil {
		return nil
	}
	return &BidDB{
		ID:                    b.ID,
		BidType:               b.BidType.String(),
		LoadID:                b.LoadID,
		TruckID:               b.TruckID,
		BidBy:                 b.BidBy,
		OfferedTo:             b.OfferedTo,
		OfferedTotal:          b.BiddedAmount.Total,
		AdvancePercentage:     b.BiddedAmount.AdvancePercentage,
		DieselLiters:          b.BiddedAmount.DieselLiters,
		Status:                b.Status.String(),
		RejectionReason:       b.RejectionReason,
		RejectionNote:         b.RejectionNote,
		MaterialType:          b.MaterialType.String(),
		Weight:                b.Weight,
		SourceName:            b.Source.PlaceName,
		SourceLat:             b.Source.Latitude,
		SourceLon:             b.Source.Longitude,
		DestName:              b.Destination.PlaceName,
		DestLat:               b.Destination.Latitude,
		DestLon:               b.Destination.Longitude,
		LoadOfferedTotal:      b.LoadOfferedAmount.Total,
		LoadAdvancePercentage: b.LoadOfferedAmount.AdvancePercentage,
		LoadDieselLiters:      b.LoadOfferedAmount.DieselLiters,
	}
}

func ToStatDomain(s *BidStatDB) entities.BidStat {
	return entities.BidStat{
		Status:        entities.BidStatus(s.Status),
		BidType:       entities.BidType(s.BidType),
		TotalBids:     s.TotalBids,
		TotalAmount:   s.TotalAmount,
		AverageAmount: s.AverageAmount,
	}
}

package dto

import (
	"bharatloads/internal/entities"
)

func GeoPointFromDomain(p entities.GeoPoint) GeoPoint {
	return GeoPoint{
		PlaceName: p.PlaceName,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

func (p GeoPoint) ToDomain() entities.GeoPoint {
	return entities.GeoPoint{
		PlaceName: p.PlaceName,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

func AmountFromDomain(a entities.OfferedAmount) OfferedAmount {
	return OfferedAmount{
		Total:             a.Total,
		AdvancePercentage: a.AdvancePercentage,
		DieselLiters:      a.DieselLiters,
	}
}

func (a OfferedAmount) ToDomain() entities.OfferedAmount {
	return entities.OfferedAmount{
		Total:             a.Total,
		AdvancePercentage: a.AdvancePercentage,
		DieselLiters:      a.DieselLiters,
	}
}

func LoadFromDomain(l entities.Load) Load {
	return Load{
		ID:              l.ID,
		TransporterID:   l.TransporterID,
		MaterialType:    l.MaterialType.String(),
		Weight:          l.Weight,
		Source:          GeoPointFromDomain(l.Source),
		Destination:     GeoPointFromDomain(l.Destination),
		VehicleBodyType: l.VehicleBodyType.String(),
		VehicleType:     l.VehicleType.String(),
		NumberOfWheels:  l.NumberOfWheels,
		OfferedAmount:   AmountFromDomain(l.OfferedAmount),
		WhenNeeded:      l.WhenNeeded.String(),
		ScheduledAt:     l.ScheduledAt,
		IsActive:        l.IsActive,
		CurrentBidID:    l.CurrentBidID,
		ExpiresAt:       l.ExpiresAt,
		CreatedAt:       l.CreatedAt,
	}
}

func LoadsFromDomain(loads []entities.Load) []Load {
	out := make([]Load, 0, len(loads))
	for _, l := range loads {
		out = append(out, LoadFromDomain(l))
	}
	return out
}

func TruckFromDomain(t entities.Truck) Truck {
	return Truck{
		ID:              t.ID,
		OwnerID:         t.OwnerID,
		TruckPermit:     t.TruckPermit,
		TruckNumber:     t.TruckNumber,
		Location:        GeoPointFromDomain(t.Location),
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
		CreatedAt:       t.CreatedAt,
	}
}

func TrucksFromDomain(trucks []entities.Truck) []Truck {
	out := make([]Truck, 0, len(trucks))
	for _, t := range trucks {
		out = append(out, TruckFromDomain(t))
	}
	return out
}

func TruckRatingFromDomain(r entities.TruckRating) TruckRating {
	return TruckRating{
		ID:      r.ID,
		TruckID: r.TruckID,
		Rating:  r.Rating,
		Comment: r.Comment,
		RatedBy: r.RatedBy,
	}
}

func TruckRatingsFromDomain(ratings []entities.TruckRating) []TruckRating {
	out := make([]TruckRating, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, TruckRatingFromDomain(r))
	}
	return out
}

func BidFromDomain(b entities.Bid) Bid {
	return Bid{
		ID:                b.ID,
		BidType:           b.BidType.String(),
		LoadID:            b.LoadID,
		TruckID:           b.TruckID,
		BidBy:             b.BidBy,
		OfferedTo:         b.OfferedTo,
		BiddedAmount:      AmountFromDomain(b.BiddedAmount),
		MaterialType:      b.MaterialType.String(),
		Weight:            b.Weight,
		Source:            GeoPointFromDomain(b.Source),
		Destination:       GeoPointFromDomain(b.Destination),
		LoadOfferedAmount: AmountFromDomain(b.LoadOfferedAmount),
		Status:            b.Status.String(),
		RejectionReason:   b.RejectionReason,
		RejectionNote:     b.RejectionNote,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func BidsFromDomain(bids []entities.Bid) []Bid {
	out := make([]Bid, 0, len(bids))
	for _, b := range bids {
		out = append(out, BidFromDomain(b))
	}
	return out
}

func BidStatsFromDomain(stats []entities.BidStat) []BidStat {
	out := make([]BidStat, 0, len(stats))
	for _, s := range stats {
		out = append(out, BidStat{
			Status:        s.Status.String(),
			BidType:       s.BidType.String(),
			TotalBids:     s.TotalBids,
			TotalAmount:   s.TotalAmount,
			AverageAmount: s.AverageAmount,
		})
	}
	return out
}

func NearbyTrucksFromDomain(trucks []entities.NearbyTruck) []NearbyTruck {
	out := make([]NearbyTruck, 0, len(trucks))
	for _, t := range trucks {
		out = append(out, NearbyTruck{
			Truck:      TruckFromDomain(t.Truck),
			DistanceKm: t.DistanceKm,
		})
	}
	return out
}

func NearbyLoadsFromDomain(loads []entities.NearbyLoad) []NearbyLoad {
	out := make([]NearbyLoad, 0, len(loads))
	for _, l := range loads {
		out = append(out, NearbyLoad{
			Load:                  LoadFromDomain(l.Load),
			MatchSide:             l.MatchSide.String(),
			SourceDistanceKm:      l.SourceDistanceKm,
			DestinationDistanceKm: l.DestinationDistanceKm,
		})
	}
	return out
}

func PageInfoFromDomain(p entities.PageInfo) PageInfo {
	return PageInfo{
		Total: p.Total,
		Page:  p.Page,
		Pages: p.Pages,
		Limit: p.Limit,
	}
}

func ChatFromDomain(c entities.Chat) Chat {
	return Chat{
		ID:            c.ID,
		ParticipantA:  c.ParticipantA,
		ParticipantB:  c.ParticipantB,
		LastMessageID: c.LastMessageID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func ChatsFromDomain(chats []entities.Chat) []Chat {
	out := make([]Chat, 0, len(chats))
	for _, c := range chats {
		out = append(out, ChatFromDomain(c))
	}
	return out
}

func ChatMessageFromDomain(m entities.ChatMessage) ChatMessage {
	return ChatMessage{
		ID:          m.ID,
		ChatID:      m.ChatID,
		SenderID:    m.SenderID,
		Content:     m.Content,
		MessageType: m.MessageType.String(),
		BidID:       m.BidID,
		CreatedAt:   m.CreatedAt,
	}
}

func CoinTransactionsFromDomain(txs []entities.CoinTransaction) []CoinTransaction {
	out := make([]CoinTransaction, 0, len(txs))
	for _, t := range txs {
		out = append(out, CoinTransaction{
			ID:        t.ID,
			UserID:    t.UserID,
			Amount:    t.Amount,
			Reason:    t.Reason.String(),
			BidID:     t.BidID,
			CreatedAt: t.CreatedAt,
		})
	}
	return out
}

func ChatMessagesFromDomain(messages []entities.ChatMessage) []ChatMessage {
	out := make([]ChatMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, ChatMessageFromDomain(m))
	}
	return out
}

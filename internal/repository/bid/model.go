package bid

import "time"

type BidDB struct {
	ID        string
	BidType   string
	LoadID    string
	TruckID   string
	BidBy     string
	OfferedTo string

	OfferedTotal      float64
	AdvancePercentage float64
	DieselLiters      float64

	Status          string
	RejectionReason *string
	RejectionNote   *string

	MaterialType          string
	Weight                float64
	SourceName            string
	SourceLat             float64
	SourceLon             float64
	DestName              string
	DestLat               float64
	DestLon               float64
	LoadOfferedTotal      float64
	LoadAdvancePercentage float64
	LoadDieselLiters      float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type BidStatDB struct {
	Status        string
	BidType       string
	TotalBids     int64
	TotalAmount   float64
	AverageAmount float64
}

package truck

import "time"

type TruckDB struct {
	ID          string
	OwnerID     string
	TruckPermit string
	TruckNumber string

	PlaceName string
	Lat       float64
	Lon       float64

	Capacity        float64
	VehicleBodyType string
	TruckType       string
	TruckBodyType   string
	Tyres           int

	RCImage      string
	RCStatus     string
	IsRCVerified bool

	TotalBids    int
	CurrentBidID *string
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type TruckRatingDB struct {
	ID      string
	TruckID string
	Rating  int
	Comment string
	RatedBy string
}

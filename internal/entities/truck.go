package entities

import "time"

type Truck struct {
	ID              string
	OwnerID         string
	TruckPermit     string
	TruckNumber     string
	Location        GeoPoint
	Capacity        float64
	VehicleBodyType VehicleBodyType
	TruckType       VehicleType
	TruckBodyType   TruckBodyType
	Tyres           int
	RCImage         string
	RCStatus        RCVerificationStatus
	IsRCVerified    bool
	TotalBids       int
	CurrentBidID    *string
	ExpiresAt       time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type TruckModify struct {
	ID              *string
	OwnerID         *string
	TruckPermit     *string
	TruckNumber     *string
	Location        *GeoPoint
	Capacity        *float64
	VehicleBodyType *VehicleBodyType
	TruckType       *VehicleType
	TruckBodyType   *TruckBodyType
	Tyres           *int
	RCImage         *string
	ExpiresAt       *time.Time
}

type TruckBodyType string

const (
	OpenFullBody   TruckBodyType = "OPEN_FULL_BODY"
	OpenHalfBody   TruckBodyType = "OPEN_HALF_BODY"
	FullClosedBody TruckBodyType = "FULL_CLOSED_BODY"
)

func (t TruckBodyType) String() string {
	return string(t)
}

type RCVerificationStatus string

const (
	RCPending  RCVerificationStatus = "PENDING"
	RCApproved RCVerificationStatus = "APPROVED"
	RCRejected RCVerificationStatus = "REJECTED"
)

func (t RCVerificationStatus) String() string {
	return string(t)
}

type TruckRating struct {
	ID      string
	TruckID string
	Rating  int
	Comment string
	RatedBy string
}

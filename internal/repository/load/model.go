package load

import "time"

type LoadDB struct {
	ID            string
	TransporterID string
	MaterialType  string
	Weight        float64

	SourceName string
	SourceLat  float64
	SourceLon  float64
	DestName   string
	DestLat    float64
	DestLon    float64

	VehicleBodyType string
	VehicleType     string
	NumWheels       int

	OfferedTotal      float64
	AdvancePercentage float64
	DieselLiters      float64

	WhenNeeded   string
	ScheduledAt  *time.Time
	IsActive     bool
	CurrentBidID *string
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

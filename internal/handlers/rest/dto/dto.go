// Package dto JSON-модели внешнего API. Пишутся руками: OpenAPI
// контракта у сервиса нет.
package dto

import "time"

type GeoPoint struct {
	PlaceName string  `json:"place_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type OfferedAmount struct {
	Total             float64 `json:"total"`
	AdvancePercentage float64 `json:"advance_percentage"`
	DieselLiters      float64 `json:"diesel_liters"`
}

type Load struct {
	ID              string        `json:"id"`
	TransporterID   string        `json:"transporter_id"`
	MaterialType    string        `json:"material_type"`
	Weight          float64       `json:"weight"`
	Source          GeoPoint      `json:"source"`
	Destination     GeoPoint      `json:"destination"`
	VehicleBodyType string        `json:"vehicle_body_type"`
	VehicleType     string        `json:"vehicle_type"`
	NumberOfWheels  int           `json:"number_of_wheels"`
	OfferedAmount   OfferedAmount `json:"offered_amount"`
	WhenNeeded      string        `json:"when_needed"`
	ScheduledAt     *time.Time    `json:"scheduled_at,omitempty"`
	IsActive        bool          `json:"is_active"`
	CurrentBidID    *string       `json:"current_bid_id,omitempty"`
	ExpiresAt       time.Time     `json:"expires_at"`
	CreatedAt       time.Time     `json:"created_at"`
}

type LoadCreate struct {
	MaterialType    string        `json:"material_type"`
	Weight          float64       `json:"weight"`
	Source          GeoPoint      `json:"source"`
	Destination     GeoPoint      `json:"destination"`
	VehicleBodyType string        `json:"vehicle_body_type"`
	VehicleType     string        `json:"vehicle_type"`
	NumberOfWheels  int           `json:"number_of_wheels"`
	OfferedAmount   OfferedAmount `json:"offered_amount"`
	WhenNeeded      string        `json:"when_needed"`
	ScheduledAt     *time.Time    `json:"scheduled_at,omitempty"`
}

type LoadUpdate struct {
	MaterialType    *string        `json:"material_type,omitempty"`
	Weight          *float64       `json:"weight,omitempty"`
	Source          *GeoPoint      `json:"source,omitempty"`
	Destination     *GeoPoint      `json:"destination,omitempty"`
	VehicleBodyType *string        `json:"vehicle_body_type,omitempty"`
	VehicleType     *string        `json:"vehicle_type,omitempty"`
	NumberOfWheels  *int           `json:"number_of_wheels,omitempty"`
	OfferedAmount   *OfferedAmount `json:"offered_amount,omitempty"`
}

type Truck struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	TruckPermit     string    `json:"truck_permit"`
	TruckNumber     string    `json:"truck_number"`
	Location        GeoPoint  `json:"location"`
	Capacity        float64   `json:"capacity"`
	VehicleBodyType string    `json:"vehicle_body_type"`
	TruckType       string    `json:"truck_type"`
	TruckBodyType   string    `json:"truck_body_type"`
	Tyres           int       `json:"tyres"`
	RCImage         string    `json:"rc_image,omitempty"`
	RCStatus        string    `json:"rc_status"`
	IsRCVerified    bool      `json:"is_rc_verified"`
	TotalBids       int       `json:"total_bids"`
	CurrentBidID    *string   `json:"current_bid_id,omitempty"`
	ExpiresAt       time.Time `json:"expires_at"`
	CreatedAt       time.Time `json:"created_at"`
}

type TruckCreate struct {
	TruckPermit     string   `json:"truck_permit"`
	TruckNumber     string   `json:"truck_number"`
	Location        GeoPoint `json:"location"`
	Capacity        float64  `json:"capacity"`
	VehicleBodyType string   `json:"vehicle_body_type"`
	TruckType       string   `json:"truck_type"`
	TruckBodyType   string   `json:"truck_body_type"`
	Tyres           int      `json:"tyres"`
	RCImage         string   `json:"rc_image"`
}

type TruckUpdate struct {
	TruckPermit     *string   `json:"truck_permit,omitempty"`
	TruckNumber     *string   `json:"truck_number,omitempty"`
	Location        *GeoPoint `json:"location,omitempty"`
	Capacity        *float64  `json:"capacity,omitempty"`
	VehicleBodyType *string   `json:"vehicle_body_type,omitempty"`
	TruckType       *string   `json:"truck_type,omitempty"`
	TruckBodyType   *string   `json:"truck_body_type,omitempty"`
	Tyres           *int      `json:"tyres,omitempty"`
	RCImage         *string   `json:"rc_image,omitempty"`
}

type TruckVerify struct {
	Status string `json:"status"`
}

type TruckRate struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type TruckRating struct {
	ID      string `json:"id"`
	TruckID string `json:"truck_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
	RatedBy string `json:"rated_by"`
}

type Bid struct {
	ID                string        `json:"id"`
	BidType           string        `json:"bid_type"`
	LoadID            string        `json:"load_id"`
	TruckID           string        `json:"truck_id"`
	BidBy             string        `json:"bid_by"`
	OfferedTo         string        `json:"offered_to"`
	BiddedAmount      OfferedAmount `json:"bidded_amount"`
	MaterialType      string        `json:"material_type"`
	Weight            float64       `json:"weight"`
	Source            GeoPoint      `json:"source"`
	Destination       GeoPoint      `json:"destination"`
	LoadOfferedAmount OfferedAmount `json:"load_offered_amount"`
	Status            string        `json:"status"`
	RejectionReason   *string       `json:"rejection_reason,omitempty"`
	RejectionNote     *string       `json:"rejection_note,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type BidCreate struct {
	BidType      string        `json:"bid_type"`
	LoadID       string        `json:"load_id"`
	TruckID      string        `json:"truck_id"`
	BiddedAmount OfferedAmount `json:"bidded_amount"`
}

type BidUpdate struct {
	BiddedAmount OfferedAmount `json:"bidded_amount"`
}

type BidStatusUpdate struct {
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	RejectionNote   *string `json:"rejection_note,omitempty"`
}

type BidStat struct {
	Status        string  `json:"status"`
	BidType       string  `json:"bid_type"`
	TotalBids     int64   `json:"total_bids"`
	TotalAmount   float64 `json:"total_amount"`
	AverageAmount float64 `json:"average_amount"`
}

type NearbyTruck struct {
	Truck      Truck   `json:"truck"`
	DistanceKm float64 `json:"distance_km"`
}

type NearbyLoad struct {
	Load                  Load     `json:"load"`
	MatchSide             string   `json:"match_side"`
	SourceDistanceKm      *float64 `json:"source_distance_km,omitempty"`
	DestinationDistanceKm *float64 `json:"destination_distance_km,omitempty"`
}

type PageInfo struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Limit int `json:"limit"`
}

type Chat struct {
	ID            string    `json:"id"`
	ParticipantA  string    `json:"participant_a"`
	ParticipantB  string    `json:"participant_b"`
	LastMessageID *string   `json:"last_message_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ChatMessage struct {
	ID          string    `json:"id"`
	ChatID      string    `json:"chat_id"`
	SenderID    string    `json:"sender_id"`
	Content     string    `json:"content"`
	MessageType string    `json:"message_type"`
	BidID       *string   `json:"bid_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChatMessageCreate struct {
	Content string `json:"content"`
}

type CoinTransaction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Amount    int64     `json:"amount"`
	Reason    string    `json:"reason"`
	BidID     string    `json:"bid_id"`
	CreatedAt time.Time `json:"created_at"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

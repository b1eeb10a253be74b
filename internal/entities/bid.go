package entities

import "time"

type Bid struct {
	ID        string
	BidType   BidType
	LoadID    string
	TruckID   string
	BidBy     string
	OfferedTo string

	// Условия, предложенные инициатором.
	BiddedAmount OfferedAmount

	// Снимок груза на момент ставки: груз может измениться или
	// исчезнуть, ставка должна остаться читаемой.
	MaterialType      MaterialType
	Weight            float64
	Source            GeoPoint
	Destination       GeoPoint
	LoadOfferedAmount OfferedAmount

	Status          BidStatus
	RejectionReason *string
	RejectionNote   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type BidType string

const (
	// BidTypeLoadBid ставка дальнобойщика на опубликованный груз.
	BidTypeLoadBid BidType = "LOAD_BID"
	// BidTypeTruckRequest запрос грузовладельца на опубликованный грузовик.
	BidTypeTruckRequest BidType = "TRUCK_REQUEST"
)

func (t BidType) String() string {
	return string(t)
}

type BidStatus string

const (
	BidPending  BidStatus = "PENDING"
	BidAccepted BidStatus = "ACCEPTED"
	BidRejected BidStatus = "REJECTED"
)

func (s BidStatus) String() string {
	return string(s)
}

// Terminal статус финальный, из него нет переходов.
func (s BidStatus) Terminal() bool {
	return s == BidAccepted || s == BidRejected
}

// BidCreate параметры создания ставки; направление задает BidType.
type BidCreate struct {
	BidderID     string
	BidType      BidType
	LoadID       string
	TruckID      string
	BiddedAmount OfferedAmount
}

// BidModify правка условий инициатором, допустима только для PENDING.
type BidModify struct {
	ID           *string
	BiddedAmount *OfferedAmount
}

// BidFilter опциональные фильтры поиска по ставкам пользователя.
type BidFilter struct {
	BidderID     string
	Status       *BidStatus
	BidType      *BidType
	MinAmount    *float64
	MaxAmount    *float64
	MaterialType *MaterialType
	Source       *string
	Destination  *string
}

// BidStat агрегат по паре (статус, тип).
type BidStat struct {
	Status        BidStatus
	BidType       BidType
	TotalBids     int64
	TotalAmount   float64
	AverageAmount float64
}

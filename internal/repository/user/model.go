package user

import "time"

type UserDB struct {
	ID          string
	Name        string
	Phone       string
	UserType    string
	BlCoins     int64
	DeviceToken string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CoinTransactionDB struct {
	ID        string
	UserID    string
	Amount    int64
	Reason    string
	BidID     string
	CreatedAt time.Time
}

package entities

import "time"

type User struct {
	ID          string
	Name        string
	Phone       string
	UserType    UserType
	BlCoins     int64
	DeviceToken string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type UserType string

const (
	UserTransporter UserType = "TRANSPORTER"
	UserTrucker     UserType = "TRUCKER"
)

func (t UserType) String() string {
	return string(t)
}

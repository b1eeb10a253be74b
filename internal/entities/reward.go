package entities

import "time"

// BidRewardCoins фиксированное вознаграждение BlCoins за исход ставки:
// начисляется инициатору при акцепте, списывается при отклонении.
const BidRewardCoins int64 = 100

type CoinTransaction struct {
	ID        string
	UserID    string
	Amount    int64
	Reason    CoinTxReason
	BidID     string
	CreatedAt time.Time
}

type CoinTxReason string

const (
	CoinTxBidAccepted CoinTxReason = "BID_ACCEPTED"
	CoinTxBidRejected CoinTxReason = "BID_REJECTED"
)

func (r CoinTxReason) String() string {
	return string(r)
}

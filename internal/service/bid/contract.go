//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_test
package bid

import (
	"context"

	"bharatloads/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, bid entities.Bid) (*entities.Bid, error)
	GetByID(ctx context.Context, id string) (*entities.Bid, error)
	// UpdatePending правит условия только пока ставка PENDING.
	UpdatePending(ctx context.Context, modify entities.BidModify) (*entities.Bid, error)
	Delete(ctx context.Context, id string) error

	// AcceptPending условный переход PENDING -> ACCEPTED одной записью;
	// вернувший true победил в гонке за ресурс.
	AcceptPending(ctx context.Context, id string) (bool, error)
	// RejectPending условный переход PENDING -> REJECTED с причиной.
	RejectPending(ctx context.Context, id string, reason, note *string) (bool, error)
	// RejectCompetingByTruck отклоняет все прочие PENDING ставки на грузовик.
	RejectCompetingByTruck(ctx context.Context, truckID, exceptBidID string) (int64, error)
	// RejectCompetingByLoad отклоняет все прочие PENDING ставки на груз.
	RejectCompetingByLoad(ctx context.Context, loadID, exceptBidID string) (int64, error)

	ListByBidder(ctx context.Context, bidderID string) ([]entities.Bid, error)
	ListByLoad(ctx context.Context, loadID string) ([]entities.Bid, error)
	ListIncoming(ctx context.Context, offeredTo string) ([]entities.Bid, error)
	Search(ctx context.Context, filter entities.BidFilter) ([]entities.Bid, error)
	Stats(ctx context.Context, bidderID string) ([]entities.BidStat, error)
}

type LoadStore interface {
	GetByID(ctx context.Context, id string) (*entities.Load, error)
	SetCurrentBid(ctx context.Context, loadID, bidID string) error
}

type TruckStore interface {
	GetByID(ctx context.Context, id string) (*entities.Truck, error)
	SetCurrentBid(ctx context.Context, truckID, bidID string) error
	IncrementTotalBids(ctx context.Context, truckID string) error
}

type RewardLedger interface {
	Credit(ctx context.Context, userID string, amount int64, reason entities.CoinTxReason, bidID string) error
	Debit(ctx context.Context, userID string, amount int64, reason entities.CoinTxReason, bidID string) error
}

type ChatBootstrap interface {
	PostBidAccepted(ctx context.Context, acceptedBid *entities.Bid) error
}

type Outbox interface {
	Append(ctx context.Context, event entities.BidEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

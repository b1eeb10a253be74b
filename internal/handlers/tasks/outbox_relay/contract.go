//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_relay_test
package outbox_relay

import (
	"context"

	"bharatloads/internal/entities"
)

type Outbox interface {
	FetchUnpublished(ctx context.Context, limit int) ([]entities.BidEvent, error)
	MarkPublished(ctx context.Context, ids []int64) error
}

type Publisher interface {
	Publish(ctx context.Context, event entities.BidEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

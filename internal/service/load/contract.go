//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_test
package load

import (
	"context"
	"time"

	"bharatloads/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, load entities.Load) (*entities.Load, error)
	GetByID(ctx context.Context, id string) (*entities.Load, error)
	Update(ctx context.Context, modify entities.LoadModify) (*entities.Load, error)
	Delete(ctx context.Context, id string) error

	ListByTransporter(ctx context.Context, transporterID string) ([]entities.Load, error)
	ListActive(ctx context.Context, now time.Time) ([]entities.Load, error)

	// ActivateScheduled включает отложенные грузы, у которых наступил
	// scheduled_at; возвращает число активированных записей.
	ActivateScheduled(ctx context.Context, now time.Time) (int64, error)
}

type BidPruner interface {
	DeleteNonAcceptedByLoad(ctx context.Context, loadID string) (int64, error)
}

// GeoIndex необязательный Redis GEO индекс кандидатов; отказ индекса
// не роняет операцию, SQL предикат остаётся источником истины.
type GeoIndex interface {
	UpsertLoad(ctx context.Context, load *entities.Load) error
	RemoveLoad(ctx context.Context, loadID string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

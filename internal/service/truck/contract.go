//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=truck_test
package truck

import (
	"context"
	"time"

	"bharatloads/internal/entities"
)

type Repository interface {
	// Create полагается на уникальный индекс truck_number: нарушение
	// транслируется в ErrDuplicateTruckNumber.
	Create(ctx context.Context, truck entities.Truck) (*entities.Truck, error)
	GetByID(ctx context.Context, id string) (*entities.Truck, error)
	Update(ctx context.Context, modify entities.TruckModify) (*entities.Truck, error)
	Delete(ctx context.Context, id string) error

	ListByOwner(ctx context.Context, ownerID string) ([]entities.Truck, error)

	SetRCStatus(ctx context.Context, id string, status entities.RCVerificationStatus, verified bool) error
	ResetTotalBids(ctx context.Context, id string) error
	Repost(ctx context.Context, id string, expiresAt time.Time) error

	AddRating(ctx context.Context, rating entities.TruckRating) (*entities.TruckRating, error)
	ListRatings(ctx context.Context, truckID string) ([]entities.TruckRating, error)
}

type BidPruner interface {
	DeleteNonAcceptedByTruck(ctx context.Context, truckID string) (int64, error)
}

// GeoIndex необязательный Redis GEO индекс кандидатов; отказ индекса
// не роняет операцию, SQL предикат остаётся источником истины.
type GeoIndex interface {
	UpsertTruck(ctx context.Context, truck *entities.Truck) error
	RemoveTruck(ctx context.Context, truckID string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=truck_ratings_get_test
package truck_ratings_get

import (
	"context"

	"bharatloads/internal/entities"
	"bharatloads/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	TruckRatings(ctx context.Context, truckID string) ([]entities.TruckRating, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trucks_nearby_get_test
package trucks_nearby_get

import (
	"context"

	"bharatloads/internal/entities"
	"bharatloads/internal/service/geosearch"
	"bharatloads/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	NearbyTrucks(ctx context.Context, q geosearch.TrucksQuery) ([]entities.NearbyTruck, entities.PageInfo, error)
}

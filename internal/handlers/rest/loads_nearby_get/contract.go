//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=loads_nearby_get_test
package loads_nearby_get

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
	NearbyLoads(ctx context.Context, q geosearch.LoadsQuery) ([]entities.NearbyLoad, entities.PageInfo, error)
}

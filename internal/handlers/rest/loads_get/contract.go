//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=loads_get_test
package loads_get

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
	ListUserLoads(ctx context.Context, transporterID string) ([]entities.Load, error)
}

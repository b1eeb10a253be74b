//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offers_get_test
package offers_get

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
	ListIncomingOffers(ctx context.Context, userID string) ([]entities.Bid, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=coin_transactions_get_test
package coin_transactions_get

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
	Transactions(ctx context.Context, userID string) ([]entities.CoinTransaction, error)
}

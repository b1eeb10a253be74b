//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_get_test
package bid_get

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
	GetBid(ctx context.Context, bidID, requesterID string) (*entities.Bid, error)
}

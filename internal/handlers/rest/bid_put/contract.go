//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_put_test
package bid_put

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
	UpdateBid(ctx context.Context, bidID, requesterID string, amount entities.OfferedAmount) (*entities.Bid, error)
}

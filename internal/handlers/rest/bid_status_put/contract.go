//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_status_put_test
package bid_status_put

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
	UpdateBidStatus(ctx context.Context, bidID, callerID string, status entities.BidStatus, reason, note *string) (*entities.Bid, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_delete_test
package bid_delete

import (
	"context"

	"bharatloads/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteBid(ctx context.Context, bidID, requesterID string) error
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_stats_get_test
package bid_stats_get

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
	BidStatistics(ctx context.Context, userID string) ([]entities.BidStat, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bids_search_get_test
package bids_search_get

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
	SearchBids(ctx context.Context, filter entities.BidFilter) ([]entities.Bid, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_bids_get_test
package load_bids_get

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
	ListLoadBids(ctx context.Context, loadID, requesterID string) ([]entities.Bid, error)
}

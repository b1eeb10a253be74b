//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_put_test
package load_put

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
	UpdateLoad(ctx context.Context, actorID string, modify entities.LoadModify) (*entities.Load, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=load_repost_post_test
package load_repost_post

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
	RepostLoad(ctx context.Context, actorID, id string) (*entities.Load, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chats_get_test
package chats_get

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
	ListUserChats(ctx context.Context, userID string) ([]entities.Chat, error)
}

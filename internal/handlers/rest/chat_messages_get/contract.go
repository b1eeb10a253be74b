//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_messages_get_test
package chat_messages_get

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
	ListMessages(ctx context.Context, actorID, chatID string, limit, offset int) ([]entities.ChatMessage, error)
}

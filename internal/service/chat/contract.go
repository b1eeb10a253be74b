//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_test
package chat

import (
	"context"

	"bharatloads/internal/entities"
)

type Repository interface {
	// Create полагается на уникальный индекс нормализованной пары
	// участников; нарушение транслируется в repository-конфликт,
	// после которого пара перечитывается.
	Create(ctx context.Context, chat entities.Chat) (*entities.Chat, error)
	GetByID(ctx context.Context, id string) (*entities.Chat, error)
	GetByParticipants(ctx context.Context, participantA, participantB string) (*entities.Chat, error)
	ListByParticipant(ctx context.Context, userID string) ([]entities.Chat, error)
	SetLastMessage(ctx context.Context, chatID, messageID string) error

	AddMessage(ctx context.Context, message entities.ChatMessage) (*entities.ChatMessage, error)
	ListMessages(ctx context.Context, chatID string, limit, offset int) ([]entities.ChatMessage, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

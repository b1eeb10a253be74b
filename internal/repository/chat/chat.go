package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bharatloads/internal/entities"
	"bharatloads/internal/service/chat"
)

const chatColumns = `id, participant_a, participant_b, last_message_id, created_at, updated_at`

const messageColumns = `id, chat_id, sender_id, content, message_type, bid_id, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет чат пары. Проигрыш гонки создания отдаёт
// ErrChatAlreadyExists без ошибки сервера: ON CONFLICT DO NOTHING
// не абортирует объемлющую транзакцию, и вызывающий может сразу
// перечитать победителя.
func (r *Repository) Create(ctx context.Context, chatEntity entities.Chat) (*entities.Chat, error) {
	query := `
		INSERT INTO chats (id, participant_a, participant_b)
		VALUES ($1, $2, $3)
		ON CONFLICT (participant_a, participant_b) DO NOTHING
		RETURNING ` + chatColumns

	chatModel, err := scanChat(r.querier.QueryRow(
		ctx,
		query,
		chatEntity.ID,
		chatEntity.ParticipantA,
		chatEntity.ParticipantB,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chat.ErrChatAlreadyExists
		}
		return nil, fmt.Errorf("unexpected chat repository create error: %w", err)
	}

	return ToDomain(chatModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Chat, error) {
	query := `SELECT ` + chatColumns + ` FROM chats WHERE id = $1`

	chatModel, err := scanChat(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chat.ErrChatNotFound
		}
		return nil, fmt.Errorf("unexpected chat repository get error: %w", err)
	}

	return ToDomain(chatModel), nil
}

func (r *Repository) GetByParticipants(ctx context.Context, participantA, participantB string) (*entities.Chat, error) {
	query := `SELECT ` + chatColumns + `
		FROM chats
		WHERE participant_a = $1 AND participant_b = $2`

	chatModel, err := scanChat(r.querier.QueryRow(ctx, query, participantA, participantB))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chat.ErrChatNotFound
		}
		return nil, fmt.Errorf("unexpected chat repository get by participants error: %w", err)
	}

	return ToDomain(chatModel), nil
}

func (r *Repository) ListByParticipant(ctx context.Context, userID string) ([]entities.Chat, error) {
	query := `SELECT ` + chatColumns + `
		FROM chats
		WHERE participant_a = $1 OR participant_b = $1
		ORDER BY updated_at DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected chat repository list error: %w", err)
	}
	defer rows.Close()

	var chats []entities.Chat
	for rows.Next() {
		chatModel, err := scanChat(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected chat repository scan error: %w", err)
		}
		chats = append(chats, *ToDomain(chatModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected chat repository rows error: %w", err)
	}

	return chats, nil
}

func (r *Repository) SetLastMessage(ctx context.Context, chatID, messageID string) error {
	query := `
		UPDATE chats
		SET last_message_id = $2,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, chatID, messageID)
	if err != nil {
		return fmt.Errorf("unexpected chat repository set last message error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return chat.ErrChatNotFound
	}

	return nil
}

func (r *Repository) AddMessage(ctx context.Context, message entities.ChatMessage) (*entities.ChatMessage, error) {
	query := `
		INSERT INTO chat_messages (id, chat_id, sender_id, content, message_type, bid_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + messageColumns

	messageModel, err := scanMessage(r.querier.QueryRow(
		ctx,
		query,
		message.ID,
		message.ChatID,
		message.SenderID,
		message.Content,
		message.MessageType.String(),
		message.BidID,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected chat repository add message error: %w", err)
	}

	return ToMessageDomain(messageModel), nil
}

func (r *Repository) ListMessages(ctx context.Context, chatID string, limit, offset int) ([]entities.ChatMessage, error) {
	query := `SELECT ` + messageColumns + `
		FROM chat_messages
		WHERE chat_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.querier.Query(ctx, query, chatID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("unexpected chat repository list messages error: %w", err)
	}
	defer rows.Close()

	var messages []entities.ChatMessage
	for rows.Next() {
		messageModel, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected chat repository message scan error: %w", err)
		}
		messages = append(messages, *ToMessageDomain(messageModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected chat repository message rows error: %w", err)
	}

	return messages, nil
}

func scanChat(row pgx.Row) (*ChatDB, error) {
	var chatModel ChatDB
	err := row.Scan(
		&chatModel.ID,
		&chatModel.ParticipantA,
		&chatModel.ParticipantB,
		&chatModel.LastMessageID,
		&chatModel.CreatedAt,
		&chatModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &chatModel, nil
}

func scanMessage(row pgx.Row) (*MessageDB, error) {
	var messageModel MessageDB
	err := row.Scan(
		&messageModel.ID,
		&messageModel.ChatID,
		&messageModel.SenderID,
		&messageModel.Content,
		&messageModel.MessageType,
		&messageModel.BidID,
		&messageModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &messageModel, nil
}

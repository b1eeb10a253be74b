package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"bharatloads/internal/entities"
)

const (
	defaultMessageLimit = 50
	maxMessageLimit     = 200
)

type Chat struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Chat {
	return &Chat{
		repository: repository,
		txManager:  txManager,
	}
}

// FindOrCreateChat возвращает переписку пары пользователей, создавая её
// при первом обращении. Пара нормализована, гонка создания разрешается
// уникальным индексом и повторным чтением.
func (s *Chat) FindOrCreateChat(ctx context.Context, userA, userB string) (*entities.Chat, error) {
	if !isValidID(userA) || !isValidID(userB) {
		return nil, ErrMissingRequiredFields
	}
	if userA == userB {
		return nil, ErrSelfChat
	}

	first, second := normalizePair(userA, userB)

	existing, err := s.repository.GetByParticipants(ctx, first, second)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrChatNotFound) {
		return nil, fmt.Errorf("find chat: %w", err)
	}

	created, err := s.repository.Create(ctx, entities.Chat{
		ID:           uuid.NewString(),
		ParticipantA: first,
		ParticipantB: second,
	})
	if err == nil {
		return created, nil
	}
	if errors.Is(err, ErrChatAlreadyExists) {
		// проигравший гонку читает запись победителя
		return s.repository.GetByParticipants(ctx, first, second)
	}
	return nil, fmt.Errorf("create chat: %w", err)
}

// PostBidAccepted публикует системное сообщение об акцепте в переписку
// сторон ставки, создавая переписку при необходимости.
func (s *Chat) PostBidAccepted(ctx context.Context, acceptedBid *entities.Bid) error {
	if acceptedBid == nil {
		return ErrMissingRequiredFields
	}

	conversation, err := s.FindOrCreateChat(ctx, acceptedBid.BidBy, acceptedBid.OfferedTo)
	if err != nil {
		return err
	}

	content := fmt.Sprintf("Bid accepted: %s, %s to %s, amount %.2f",
		acceptedBid.MaterialType,
		acceptedBid.Source.PlaceName,
		acceptedBid.Destination.PlaceName,
		acceptedBid.BiddedAmount.Total,
	)

	message := entities.ChatMessage{
		ID:          uuid.NewString(),
		ChatID:      conversation.ID,
		SenderID:    acceptedBid.OfferedTo,
		Content:     content,
		MessageType: entities.MessageBidAccepted,
		BidID:       &acceptedBid.ID,
	}

	saved, err := s.repository.AddMessage(ctx, message)
	if err != nil {
		return fmt.Errorf("add system message: %w", err)
	}
	if err := s.repository.SetLastMessage(ctx, conversation.ID, saved.ID); err != nil {
		return fmt.Errorf("update last message: %w", err)
	}
	return nil
}

func (s *Chat) ListUserChats(ctx context.Context, userID string) ([]entities.Chat, error) {
	if !isValidID(userID) {
		return nil, ErrMissingRequiredFields
	}
	return s.repository.ListByParticipant(ctx, userID)
}

func (s *Chat) ListMessages(ctx context.Context, actorID, chatID string, limit, offset int) ([]entities.ChatMessage, error) {
	if !isValidID(actorID) || !isValidID(chatID) {
		return nil, ErrMissingRequiredFields
	}
	if limit < 1 {
		limit = defaultMessageLimit
	}
	if limit > maxMessageLimit {
		limit = maxMessageLimit
	}
	if offset < 0 {
		offset = 0
	}

	conversation, err := s.repository.GetByID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("resolve chat: %w", err)
	}
	if !conversation.HasParticipant(actorID) {
		return nil, ErrNotParticipant
	}

	return s.repository.ListMessages(ctx, chatID, limit, offset)
}

func (s *Chat) SendMessage(ctx context.Context, actorID, chatID, content string) (*entities.ChatMessage, error) {
	if !isValidID(actorID) || !isValidID(chatID) {
		return nil, ErrMissingRequiredFields
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}

	var saved *entities.ChatMessage
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		conversation, err := s.repository.GetByID(ctx, chatID)
		if err != nil {
			return fmt.Errorf("resolve chat: %w", err)
		}
		if !conversation.HasParticipant(actorID) {
			return ErrNotParticipant
		}

		saved, err = s.repository.AddMessage(ctx, entities.ChatMessage{
			ID:          uuid.NewString(),
			ChatID:      chatID,
			SenderID:    actorID,
			Content:     content,
			MessageType: entities.MessageText,
		})
		if err != nil {
			return fmt.Errorf("add message: %w", err)
		}
		if err := s.repository.SetLastMessage(ctx, chatID, saved.ID); err != nil {
			return fmt.Errorf("update last message: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func normalizePair(userA, userB string) (string, string) {
	if userB < userA {
		return userB, userA
	}
	return userA, userB
}

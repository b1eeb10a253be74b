package bid_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"bharatloads/internal/entities"
	"bharatloads/internal/service/reward"
	"bharatloads/pkg/logger"
)

// envelope формат сообщения в топике событий ставок.
type envelope struct {
	EventID     int64                    `json:"event_id"`
	EventType   string                   `json:"event_type"`
	BidID       string                   `json:"bid_id"`
	RecipientID string                   `json:"recipient_id"`
	Payload     entities.BidEventPayload `json:"payload"`
	CreatedAt   time.Time                `json:"created_at"`
}

type Handler struct {
	users                    UserStore
	pusher                   PushGateway
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, users UserStore, pusher PushGateway, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		users:                    users,
		pusher:                   pusher,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("bid.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("bid.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event envelope
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("bid.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_id", event.EventID),
		logger.NewField("event_type", event.EventType),
		logger.NewField("bid", event.BidID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("bid.events processing")

	recipient, err := h.users.GetByID(ctx, event.RecipientID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("bid.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, reward.ErrUserNotFound):
			msgLog.Warn("bid.events handler recipient not found, dropping")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("bid.events handler failed to resolve recipient")
		}
		sess.MarkMessage(message, "")
		return false
	}

	if recipient.DeviceToken == "" {
		msgLog.Info("bid.events recipient has no device token, dropping")
		sess.MarkMessage(message, "")
		return false
	}

	domainEvent := entities.BidEvent{
		ID:          event.EventID,
		EventType:   entities.BidEventType(event.EventType),
		BidID:       event.BidID,
		RecipientID: event.RecipientID,
		Payload:     event.Payload,
		CreatedAt:   event.CreatedAt,
	}

	if err := h.pusher.SendBidNotification(ctx, recipient.DeviceToken, domainEvent); err != nil {
		// доставка best-effort: пуш не критичен, событие не перечитываем
		msgLog.With(
			logger.NewField("error", err),
		).Warn("bid.events handler failed to deliver push")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("bid.events: delivered")

	sess.MarkMessage(message, "")
	return false
}

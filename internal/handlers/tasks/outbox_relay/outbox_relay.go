package outbox_relay

import (
	"context"
	"time"

	"bharatloads/pkg/logger"
)

const batchSize = 100

// OutboxRelay переносит события ставок из таблицы bid_events в Kafka.
// Публикация at-least-once: событие помечается опубликованным только
// после подтверждения брокера, дубликаты разрешены.
type OutboxRelay struct {
	log       logger.Logger
	outbox    Outbox
	publisher Publisher
	txManager TxManager
	interval  time.Duration
}

func NewOutboxRelay(log logger.Logger, outbox Outbox, publisher Publisher, txManager TxManager, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{
		log:       log,
		outbox:    outbox,
		publisher: publisher,
		txManager: txManager,
		interval:  interval,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

// Do обрабатывает пачку в одной транзакции: FOR UPDATE SKIP LOCKED
// держит блокировки до коммита, конкурирующие релеи не забирают одну
// пачку дважды.
func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	return o.txManager.Do(ctxWithTimeout, func(ctx context.Context) error {
		events, err := o.outbox.FetchUnpublished(ctx, batchSize)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}

		published := make([]int64, 0, len(events))
		for _, event := range events {
			if err := o.publisher.Publish(ctx, event); err != nil {
				// остаток пачки поедет в следующем цикле
				o.log.With(
					logger.NewField("event_id", event.ID),
					logger.NewField("event_type", event.EventType.String()),
					logger.NewField("error", err),
				).Warn("outbox relay publish failed")
				break
			}
			published = append(published, event.ID)
		}

		if len(published) == 0 {
			return nil
		}
		if err := o.outbox.MarkPublished(ctx, published); err != nil {
			return err
		}

		o.log.With(
			logger.NewField("published_events", len(published)),
		).Info("outbox relay")

		return nil
	})
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}

package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"bharatloads/internal/pkg/config"
	"bharatloads/pkg/logger"
)

type Producer struct {
	log    logger.Logger
	client sarama.SyncProducer
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (*Producer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}
	saramaConfig.Version = version

	// подтверждение всех реплик: producer для outbox, потеря недопустима
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	producerLog := log.With(
		logger.NewField("brokers", brokers),
	)

	if err := pingKafka(ctx, producerLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return &Producer{
		log:    producerLog,
		client: client,
	}, nil
}

func (p *Producer) Send(topic, key string, value []byte) error {
	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.client.SendMessage(message)
	if err != nil {
		return fmt.Errorf("send message to %q: %w", topic, err)
	}

	p.log.With(
		logger.NewField("topic", topic),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Debug("message sent")

	return nil
}

func (p *Producer) Close() error {
	return p.client.Close()
}

package bid_event

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

type UserStore interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
}

type PushGateway interface {
	SendBidNotification(ctx context.Context, deviceToken string, event entities.BidEvent) error
}

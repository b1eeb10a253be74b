package load_activation

import (
	"context"
	"time"

	"bharatloads/pkg/logger"
)

type Service interface {
	ActivateScheduled(ctx context.Context) (int64, error)
}

// LoadActivation периодически включает отложенные грузы, у которых
// наступил расчётный час. Переживает рестарт процесса: состояние
// хранится в базе, а не во внутреннем таймере.
type LoadActivation struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewLoadActivation(log logger.Logger, service Service, interval time.Duration) *LoadActivation {
	return &LoadActivation{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (l *LoadActivation) TTL() time.Duration {
	return l.interval
}

func (l *LoadActivation) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.interval)
	defer cancel()

	rowsAffected, err := l.service.ActivateScheduled(ctxWithTimeout)

	if rowsAffected > 0 {
		l.log.With(
			logger.NewField("activated_loads", rowsAffected),
		).Info("load activation")
	}

	return err
}

func (l *LoadActivation) Info() string {
	return "load activation"
}

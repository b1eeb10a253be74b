package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"bharatloads/internal/entities"
	retrierconfig "bharatloads/pkg/retrier"
	"bharatloads/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "push-provider"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// retryableError временный отказ провайдера, имеет смысл повторить.
type retryableError struct {
	statusCode int
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("push provider temporary failure: %d", e.statusCode)
}

type notification struct {
	DeviceToken string                   `json:"device_token"`
	Title       string                   `json:"title"`
	Body        string                   `json:"body"`
	Data        entities.BidEventPayload `json:"data"`
}

// Gateway доставка пушей во внешний провайдер. Fire-and-forget:
// вызывающий логирует ошибку и не ретраит поверх встроенного ретраера.
type Gateway struct {
	client  httpClient
	baseURL string
	retrier retrier
}

func New(client httpClient, baseURL string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:  client,
		baseURL: baseURL,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) SendBidNotification(ctx context.Context, deviceToken string, event entities.BidEvent) error {
	payload := notification{
		DeviceToken: deviceToken,
		Title:       titleFor(event.EventType),
		Body:        bodyFor(event),
		Data:        event.Payload,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("gateway push, marshal notification: %w", err)
	}

	err = g.executeWithMetrics(ctx, "SendNotification", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/notifications", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return &retryableError{statusCode: resp.StatusCode}
		}
		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("push provider rejected notification: %d", resp.StatusCode)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("gateway push, send notification: %w", err)
	}

	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var tmpErr *retryableError
	if errors.As(err, &tmpErr) {
		return true
	}

	// сетевые ошибки и таймауты транспорта
	var netErr net.Error
	return errors.As(err, &netErr)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	statusCode := statusCodeOf(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, statusCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, statusCode).Inc()
	}

	return err
}

func statusCodeOf(err error) string {
	if err == nil {
		return "200"
	}

	var tmpErr *retryableError
	if errors.As(err, &tmpErr) {
		return strconv.Itoa(tmpErr.statusCode)
	}
	return "unknown"
}

func titleFor(eventType entities.BidEventType) string {
	switch eventType {
	case entities.EventBidPlaced:
		return "New bid received"
	case entities.EventBidAccepted:
		return "Your bid was accepted"
	case entities.EventBidRejected:
		return "Your bid was rejected"
	default:
		return "Bid update"
	}
}

func bodyFor(event entities.BidEvent) string {
	return fmt.Sprintf("%s, %s to %s",
		event.Payload.MaterialType,
		event.Payload.Source,
		event.Payload.Destination,
	)
}

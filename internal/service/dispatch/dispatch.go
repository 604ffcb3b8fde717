package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"courier-ledger/internal/entities"
	"courier-ledger/pkg/logger"

	"github.com/cenkalti/backoff/v4"
)

type Config struct {
	BatchSize      int
	MaxAttempts    int
	Lease          time.Duration
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = 100
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 8
	}
	if c.Lease <= 0 {
		c.Lease = 30 * time.Second
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = 2 * time.Second
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = 10 * time.Minute
	}
	return c
}

// Stats - итог одного прогона релея.
type Stats struct {
	Claimed    int
	Dispatched int
	Retried    int
	Failed     int
}

// Dispatcher разбирает outbox: трансляция статусов уходит в Kafka, уведомления - в notification-service,
// уведомления администраторам - в Telegram, если он настроен.
type Dispatcher struct {
	repository  Repository
	broadcaster Broadcaster
	notifier    Notifier
	alerter     AdminAlerter
	log         serviceLogger
	cfg         Config
}

// New принимает alerter == nil, тогда уведомления администраторам идут через notifier.
func New(
	repository Repository,
	broadcaster Broadcaster,
	notifier Notifier,
	alerter AdminAlerter,
	log serviceLogger,
	cfg Config,
) *Dispatcher {
	return &Dispatcher{
		repository:  repository,
		broadcaster: broadcaster,
		notifier:    notifier,
		alerter:     alerter,
		log:         log,
		cfg:         cfg.withDefaults(),
	}
}

// RelayBatch забирает пачку созревших событий под аренду и пытается доставить каждое.
// Ошибка доставки не прерывает пачку: событие откладывается с экспоненциальной задержкой,
// после MaxAttempts помечается как проваленное.
func (d *Dispatcher) RelayBatch(ctx context.Context) (Stats, error) {
	events, err := d.repository.Claim(ctx, d.cfg.BatchSize, d.cfg.Lease)
	if err != nil {
		return Stats{}, fmt.Errorf("claim outbox events: %w", err)
	}
	outboxClaimedBatch.Observe(float64(len(events)))

	stats := Stats{Claimed: len(events)}
	for _, event := range events {
		if ctx.Err() != nil {
			// незавершенные события вернутся после истечения аренды
			return stats, ctx.Err()
		}

		result, err := d.process(ctx, event)
		if err != nil {
			return stats, err
		}
		outboxEventsTotal.WithLabelValues(event.Kind.String(), result).Inc()

		switch result {
		case resultDispatched:
			stats.Dispatched++
		case resultRetried:
			stats.Retried++
		case resultFailed:
			stats.Failed++
		}
	}
	return stats, nil
}

func (d *Dispatcher) process(ctx context.Context, event entities.OutboxEvent) (string, error) {
	sendErr := d.send(ctx, event)
	if sendErr == nil {
		if err := d.repository.MarkDispatched(ctx, event.ID); err != nil {
			return "", fmt.Errorf("mark outbox event %s dispatched: %w", event.ID, err)
		}
		return resultDispatched, nil
	}

	attempts := event.Attempts + 1
	fields := []logger.Field{
		logger.NewField("event_id", event.ID.String()),
		logger.NewField("kind", event.Kind.String()),
		logger.NewField("routing_key", event.RoutingKey),
		logger.NewField("attempts", attempts),
		logger.NewField("error", sendErr),
	}

	permanent := errors.Is(sendErr, ErrUnknownKind) || errors.Is(sendErr, ErrInvalidPayload)
	if permanent || attempts >= d.cfg.MaxAttempts {
		if err := d.repository.MarkFailed(ctx, event.ID, attempts, sendErr.Error()); err != nil {
			return "", fmt.Errorf("mark outbox event %s failed: %w", event.ID, err)
		}
		d.log.Error("outbox event dropped", fields...)
		return resultFailed, nil
	}

	next := time.Now().UTC().Add(d.retryDelay(attempts))
	if err := d.repository.MarkRetry(ctx, event.ID, attempts, next, sendErr.Error()); err != nil {
		return "", fmt.Errorf("mark outbox event %s for retry: %w", event.ID, err)
	}
	d.log.Warn("outbox event dispatch failed, will retry", append(fields, logger.NewField("next_attempt_at", next))...)
	return resultRetried, nil
}

func (d *Dispatcher) send(ctx context.Context, event entities.OutboxEvent) error {
	switch event.Kind {
	case entities.OutboxStatusChanged:
		return d.broadcaster.Broadcast(ctx, event.RoutingKey, event.Payload)

	case entities.OutboxNotification:
		var notification entities.Notification
		if err := json.Unmarshal(event.Payload, &notification); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		if notification.Audience == entities.AudienceAdmins && d.alerter != nil {
			return d.alerter.Alert(ctx, notification)
		}
		return d.notifier.Notify(ctx, notification)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, event.Kind)
	}
}

// retryDelay - InitialBackoff * 2^(attempts-1), не больше MaxBackoff.
func (d *Dispatcher) retryDelay(attempts int) time.Duration {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.cfg.InitialBackoff
	b.MaxInterval = d.cfg.MaxBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()

	delay := b.NextBackOff()
	for i := 1; i < attempts; i++ {
		delay = b.NextBackOff()
	}
	return delay
}

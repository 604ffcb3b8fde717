//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"courier-ledger/internal/entities"
	"courier-ledger/pkg/logger"

	"github.com/google/uuid"
)

type Repository interface {
	Claim(ctx context.Context, limit int, lease time.Duration) ([]entities.OutboxEvent, error)
	MarkDispatched(ctx context.Context, id uuid.UUID) error
	MarkRetry(ctx context.Context, id uuid.UUID, attempts int, nextAttemptAt time.Time, lastError string) error
	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string) error
}

// Broadcaster публикует событие смены статуса, ключ - order id.
type Broadcaster interface {
	Broadcast(ctx context.Context, key string, payload []byte) error
}

type Notifier interface {
	Notify(ctx context.Context, notification entities.Notification) error
}

type AdminAlerter interface {
	Alert(ctx context.Context, notification entities.Notification) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

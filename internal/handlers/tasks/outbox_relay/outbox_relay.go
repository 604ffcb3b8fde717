package outbox_relay

import (
	"context"
	"errors"
	"time"

	"courier-ledger/internal/service/dispatch"
	"courier-ledger/pkg/logger"
)

type Service interface {
	RelayBatch(ctx context.Context) (dispatch.Stats, error)
}

// OutboxRelay на каждом тике выбирает созревшие события пачками, пока очередь не опустеет
// или не кончится интервал.
type OutboxRelay struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOutboxRelay(log logger.Logger, service Service, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	var total dispatch.Stats
	defer func() {
		if total.Claimed > 0 {
			o.log.Info("outbox relay",
				logger.NewField("claimed", total.Claimed),
				logger.NewField("dispatched", total.Dispatched),
				logger.NewField("retried", total.Retried),
				logger.NewField("failed", total.Failed),
			)
		}
	}()

	for {
		stats, err := o.service.RelayBatch(ctxWithTimeout)
		total.Claimed += stats.Claimed
		total.Dispatched += stats.Dispatched
		total.Retried += stats.Retried
		total.Failed += stats.Failed

		if err != nil {
			// остаток пачки вернется после истечения аренды
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				return nil
			}
			return err
		}
		if stats.Claimed == 0 {
			return nil
		}
	}
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}

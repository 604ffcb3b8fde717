package outbox

import (
	"context"
	"fmt"
	"time"

	"courier-ledger/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const eventColumns = `id, kind, routing_key, payload, attempts, next_attempt_at, last_error, created_at`

// Repository - транзакционный outbox. Enqueue вызывается внутри транзакции изменения состояния,
// остальные методы использует фоновый relay.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Enqueue(ctx context.Context, events []entities.OutboxEvent) error {
	if len(events) == 0 {
		return nil
	}

	query := `
		INSERT INTO outbox_events (id, kind, routing_key, payload)
		VALUES ($1, $2, $3, $4)`

	batch := &pgx.Batch{}
	for _, event := range events {
		id := event.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		batch.Queue(query, id, event.Kind.String(), event.RoutingKey, string(event.Payload))
	}

	results := r.querier.SendBatch(ctx, batch)
	for range events {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("unexpected outbox repository enqueue error: %w", err)
		}
	}

	if err := results.Close(); err != nil {
		return fmt.Errorf("unexpected outbox repository enqueue error: %w", err)
	}
	return nil
}

// Claim забирает до limit готовых событий и сдвигает их next_attempt_at на lease вперед,
// чтобы параллельный relay их не взял. SKIP LOCKED пропускает строки, уже занятые другим relay.
func (r *Repository) Claim(ctx context.Context, limit int, lease time.Duration) ([]entities.OutboxEvent, error) {
	due := qb.
		Select("id").
		From("outbox_events").
		Where("dispatched_at IS NULL AND failed_at IS NULL AND next_attempt_at <= now()").
		OrderBy("next_attempt_at", "created_at").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED")

	query, args, err := qb.
		Update("outbox_events").
		Set("next_attempt_at", sq.Expr("now() + make_interval(secs => ?)", lease.Seconds())).
		Where(sq.Expr("id IN (?)", due)).
		Suffix("RETURNING " + eventColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository claim error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository claim error: %w", err)
	}
	defer rows.Close()

	events := make([]OutboxEventDB, 0, limit)
	for rows.Next() {
		var e OutboxEventDB
		if err := rows.Scan(
			&e.ID,
			&e.Kind,
			&e.RoutingKey,
			&e.Payload,
			&e.Attempts,
			&e.NextAttemptAt,
			&e.LastError,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("unexpected outbox repository claim error: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository claim error: %w", err)
	}

	return ToDomainList(events), nil
}

func (r *Repository) MarkDispatched(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE outbox_events SET dispatched_at = now(), last_error = '' WHERE id = $1`

	if _, err := r.querier.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("unexpected outbox repository markdispatched error: %w", err)
	}
	return nil
}

func (r *Repository) MarkRetry(
	ctx context.Context,
	id uuid.UUID,
	attempts int,
	nextAttemptAt time.Time,
	lastError string,
) error {
	query := `
		UPDATE outbox_events
		SET attempts = $2, next_attempt_at = $3, last_error = $4
		WHERE id = $1`

	if _, err := r.querier.Exec(ctx, query, id, attempts, nextAttemptAt, lastError); err != nil {
		return fmt.Errorf("unexpected outbox repository markretry error: %w", err)
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string) error {
	query := `
		UPDATE outbox_events
		SET attempts = $2, failed_at = now(), last_error = $3
		WHERE id = $1`

	if _, err := r.querier.Exec(ctx, query, id, attempts, lastError); err != nil {
		return fmt.Errorf("unexpected outbox repository markfailed error: %w", err)
	}
	return nil
}

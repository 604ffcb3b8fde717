package audit

import (
	"context"
	"fmt"

	"courier-ledger/internal/entities"
)

// Repository пишет журнал аудита в текущей транзакции вызывающего.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Record(ctx context.Context, entry entities.AuditEntry) error {
	payload := entry.Payload
	if len(payload) == 0 {
		payload = []byte(`{}`)
	}

	query := `
		INSERT INTO audit_log (actor_id, action, entity, entity_id, payload)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(
		ctx,
		query,
		entry.ActorID,
		string(entry.Action),
		entry.Entity,
		entry.EntityID,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("unexpected audit repository record error: %w", err)
	}
	return nil
}

package outbox

import (
	"encoding/json"

	"courier-ledger/internal/entities"
)

func ToDomain(e *OutboxEventDB) *entities.OutboxEvent {
	if e == nil {
		return nil
	}
	return &entities.OutboxEvent{
		ID:            e.ID,
		Kind:          entities.OutboxKind(e.Kind),
		RoutingKey:    e.RoutingKey,
		Payload:       json.RawMessage(e.Payload),
		Attempts:      e.Attempts,
		NextAttemptAt: e.NextAttemptAt,
		LastError:     e.LastError,
		CreatedAt:     e.CreatedAt,
	}
}

func ToDomainList(events []OutboxEventDB) []entities.OutboxEvent {
	result := make([]entities.OutboxEvent, 0, len(events))
	for i := range events {
		result = append(result, *ToDomain(&events[i]))
	}
	return result
}

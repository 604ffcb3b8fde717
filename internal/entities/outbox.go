package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OutboxKind string

const (
	OutboxStatusChanged OutboxKind = "delivery.status_changed"
	OutboxNotification  OutboxKind = "notification"
)

func (k OutboxKind) String() string {
	return string(k)
}

// OutboxEvent - намерение отправить сообщение, записанное в той же транзакции, что и изменение состояния.
type OutboxEvent struct {
	ID            uuid.UUID
	Kind          OutboxKind
	RoutingKey    string
	Payload       json.RawMessage
	Attempts      int
	NextAttemptAt time.Time
	LastError     string
	CreatedAt     time.Time
}

// StatusChangedEvent уходит в Kafka с ключом order id, поэтому подписчик получает только события своего заказа.
type StatusChangedEvent struct {
	EventID    uuid.UUID      `json:"event_id"`
	DeliveryID int64          `json:"delivery_id"`
	OrderID    string         `json:"order_id"`
	CourierID  *int64         `json:"courier_id,omitempty"`
	Status     DeliveryStatus `json:"status"`
	Previous   DeliveryStatus `json:"previous_status"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type Audience string

const (
	AudienceClient     Audience = "client"
	AudienceRestaurant Audience = "restaurant"
	AudienceCourier    Audience = "courier"
	AudienceAdmins     Audience = "admins"
)

func (a Audience) String() string {
	return string(a)
}

type Notification struct {
	Audience    Audience          `json:"audience"`
	RecipientID string            `json:"recipient_id,omitempty"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
}

func NewStatusChangedOutbox(t DeliveryTransition) (OutboxEvent, error) {
	eventID := uuid.New()
	payload, err := json.Marshal(StatusChangedEvent{
		EventID:    eventID,
		DeliveryID: t.Delivery.ID,
		OrderID:    t.Delivery.OrderID,
		CourierID:  t.Delivery.CourierID,
		Status:     t.Delivery.Status,
		Previous:   t.Previous,
		OccurredAt: t.OccurredAt.UTC(),
	})
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("marshal status changed event: %w", err)
	}
	return OutboxEvent{
		ID:         eventID,
		Kind:       OutboxStatusChanged,
		RoutingKey: t.Delivery.OrderID,
		Payload:    payload,
	}, nil
}

func NewNotificationOutbox(n Notification) (OutboxEvent, error) {
	payload, err := json.Marshal(n)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("marshal notification: %w", err)
	}
	routingKey := n.RecipientID
	if routingKey == "" {
		routingKey = n.Audience.String()
	}
	return OutboxEvent{
		ID:         uuid.New(),
		Kind:       OutboxNotification,
		RoutingKey: routingKey,
		Payload:    payload,
	}, nil
}
